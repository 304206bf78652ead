package cache

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/feature/quotes/usecase"
)

const (
	// DefaultTTL is how long a cached search result stays valid.
	DefaultTTL = 10 * time.Minute
	// DefaultSize is the number of distinct queries kept in memory.
	DefaultSize = 128
)

// MemorySearchRepository decorates a SearchRepository with a bounded
// in-process cache. The least recently used query is evicted once size is
// reached and entries expire after ttl.
type MemorySearchRepository struct {
	inner usecase.SearchRepository
	lru   *expirable.LRU[string, []entity.SearchResult]
}

var _ usecase.SearchRepository = (*MemorySearchRepository)(nil)

// NewMemorySearchRepository wraps inner with an LRU of the given size and ttl.
// Non-positive values select DefaultSize and DefaultTTL.
func NewMemorySearchRepository(inner usecase.SearchRepository, size int, ttl time.Duration) *MemorySearchRepository {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemorySearchRepository{
		inner: inner,
		lru:   expirable.NewLRU[string, []entity.SearchResult](size, nil, ttl),
	}
}

// Search returns a cached copy for query or asks the inner repository.
func (m *MemorySearchRepository) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if cached, ok := m.lru.Get(query); ok {
		return slices.Clone(cached), nil
	}

	out, err := m.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	m.lru.Add(query, slices.Clone(out))
	return out, nil
}

// Len reports the number of cached queries.
func (m *MemorySearchRepository) Len() int {
	return m.lru.Len()
}
