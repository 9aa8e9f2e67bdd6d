package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"promptweave/internal/log"
)

const (
	DefaultExpiration      = 5 * time.Minute
	DefaultCleanupInterval = 15 * time.Minute
)

// InMemoryCache is a go-cache backed CacheManager.
type InMemoryCache[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

// NewInMemoryCache initializes an in-memory cache. useCase names the cache
// in log output.
func NewInMemoryCache[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCache[K, V] {
	return &InMemoryCache[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key.
func (c *InMemoryCache[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zero V

	value, found := c.cache.Get(string(key))
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase)
		return zero, false
	}

	return v, true
}

// Set stores a value with a TTL.
func (c *InMemoryCache[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	c.cache.Set(string(key), value, ttl)
}

// Delete removes values by key.
func (c *InMemoryCache[K, V]) Delete(ctx context.Context, keys ...K) {
	for _, key := range keys {
		c.cache.Delete(string(key))
	}
}

// Flush drops every cached value.
func (c *InMemoryCache[K, V]) Flush(ctx context.Context) {
	c.cache.Flush()
}
