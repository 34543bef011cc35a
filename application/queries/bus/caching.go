package bus

import (
	"context"
	"fmt"
)

// Cache interface for caching
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttl int) error
}

// CacheObserver is told about every lookup
type CacheObserver interface {
	RecordCacheHit()
	RecordCacheMiss()
}

// uncacheable is implemented by queries that must always reach storage
type uncacheable interface {
	NoCache() bool
}

// CachingMiddleware adds caching to query handlers
type CachingMiddleware struct {
	cache    Cache
	ttl      int // TTL in seconds
	observer CacheObserver
}

// NewCachingMiddleware creates a new caching middleware. observer may be nil.
func NewCachingMiddleware(cache Cache, ttl int, observer CacheObserver) *CachingMiddleware {
	return &CachingMiddleware{
		cache:    cache,
		ttl:      ttl,
		observer: observer,
	}
}

// Wrap wraps a query handler with caching. Errors are never cached.
func (m *CachingMiddleware) Wrap(next QueryHandler) QueryHandler {
	return QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		if q, ok := query.(uncacheable); ok && q.NoCache() {
			return next.Handle(ctx, query)
		}

		cacheKey := m.generateCacheKey(query)
		if cached, found := m.cache.Get(ctx, cacheKey); found {
			if m.observer != nil {
				m.observer.RecordCacheHit()
			}
			return cached, nil
		}
		if m.observer != nil {
			m.observer.RecordCacheMiss()
		}

		result, err := next.Handle(ctx, query)
		if err != nil {
			return nil, err
		}

		_ = m.cache.Set(ctx, cacheKey, result, m.ttl)
		return result, nil
	})
}

func (m *CachingMiddleware) generateCacheKey(query Query) string {
	return fmt.Sprintf("%T:%+v", query, query)
}
