package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache wraps a CacheManager with a compute function that fills
// misses.
type ReadThroughCache[K comparable, V any] struct {
	cache CacheManager[K, V]
	fn    func(ctx context.Context, key K) V
}

// NewReadThroughCache creates a read-through cache over fn. fn must be a
// pure function of the key; the engine's Parse qualifies.
func NewReadThroughCache[K comparable, V any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, key K) V,
) *ReadThroughCache[K, V] {
	return &ReadThroughCache[K, V]{cache: cache, fn: fn}
}

// Get returns the cached value for key, computing and storing it on a miss.
func (r *ReadThroughCache[K, V]) Get(ctx context.Context, key K, ttl time.Duration) V {
	if value, ok := r.cache.Get(ctx, key); ok {
		return value
	}

	value := r.fn(ctx, key)
	r.cache.Set(ctx, key, value, ttl)
	return value
}

// Invalidate drops the cached value for key.
func (r *ReadThroughCache[K, V]) Invalidate(ctx context.Context, key K) {
	r.cache.Delete(ctx, key)
}
