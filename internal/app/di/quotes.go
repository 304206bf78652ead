package di

import (
	"github.com/redis/go-redis/v9"

	"stock_watchlist/internal/app/config"
	"stock_watchlist/internal/feature/quotes/adapters/stocktable"
	"stock_watchlist/internal/feature/quotes/adapters/synthetic"
	"stock_watchlist/internal/feature/quotes/usecase"
	"stock_watchlist/internal/platform/cache"
	"stock_watchlist/internal/shared/ratelimiter"
)

// NewSearchCache wraps inner with the configured search cache.
// A redis cache with a nil client degrades to no caching.
func NewSearchCache(cfg *config.Config, rdb *redis.Client, inner usecase.SearchRepository) usecase.SearchRepository {
	switch cfg.SearchCache.Type {
	case config.CacheRedis:
		return cache.NewCachingSearchRepository(rdb, cfg.SearchCache.TTL, inner, "search")
	case config.CacheNone:
		return inner
	default:
		return cache.NewMemorySearchRepository(inner, cfg.SearchCache.Size, cfg.SearchCache.TTL)
	}
}

// NewQuotesUsecase wires the remote client behind the cache and the
// synthetic fallbacks:
//
//	quotes:  fallback(finnhub)
//	search:  fallback(cache(finnhub))
//	history: synthetic
func NewQuotesUsecase(cfg *config.Config, rdb *redis.Client, remote Remote) *usecase.QuotesUsecase {
	gen := synthetic.NewGenerator()
	local := synthetic.NewLocalSearch(stocktable.MustDefault())

	quotes := usecase.NewFallbackQuoteRepository(remote, gen)
	search := usecase.NewFallbackSearchRepository(NewSearchCache(cfg, rdb, remote), local)

	return usecase.NewQuotesUsecase(quotes, search, gen, ratelimiter.NewPacer(cfg.Watchlist.BatchDelay))
}

// Remote is the quote service client: quotes and symbol search.
type Remote interface {
	usecase.QuoteRepository
	usecase.SearchRepository
}
