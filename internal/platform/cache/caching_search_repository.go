// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/feature/quotes/usecase"
)

// CachingSearchRepository decorates a SearchRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only successful results are stored.
type CachingSearchRepository struct {
	inner     usecase.SearchRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SearchRepository = (*CachingSearchRepository)(nil)

// NewCachingSearchRepository decorates a SearchRepository with Redis caching.
// If ttl is 0, it defaults to DefaultTTL. If namespace is empty, it uses "search".
func NewCachingSearchRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SearchRepository, namespace string) *CachingSearchRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "search"
	}
	return &CachingSearchRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search checks the cache first and falls back to the inner repository.
func (c *CachingSearchRepository) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, query)
	}

	key := c.cacheKey(query)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.SearchResult
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Ask the remote service
	out, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for an exact query string.
func (c *CachingSearchRepository) cacheKey(query string) string {
	return c.namespace + ":" + safe(query)
}

// safe escapes characters that are problematic for Redis keys.
// Escaping is injective, so distinct queries never share a key.
func safe(s string) string {
	return url.QueryEscape(s)
}
