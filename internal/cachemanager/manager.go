// Package cachemanager provides a small generic caching layer. The editor
// uses it as a read-through cache for parse results so tag-pane redraws
// keyed by unchanged text never re-parse.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is the minimal cache surface the editor needs.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K)
	Flush(ctx context.Context)
}
