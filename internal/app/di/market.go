// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"stock_watchlist/internal/app/config"
	"stock_watchlist/internal/feature/quotes/adapters/finnhub"
	infrahttp "stock_watchlist/internal/platform/http"
	"stock_watchlist/internal/shared/ratelimiter"
)

// NewFinnhubClient creates a fully configured Finnhub client with HTTP client and rate limiter.
func NewFinnhubClient(cfg *config.Config) *finnhub.Client {
	fc := cfg.FinnhubConfig()
	httpClient := infrahttp.NewHTTPClient(fc.Timeout)
	return finnhub.NewClient(fc, httpClient, newLimiter(fc.CallsPerMinute))
}

func newLimiter(perMinute int) ratelimiter.RateLimiterInterface {
	if perMinute <= 0 {
		return ratelimiter.Unlimited{}
	}
	return ratelimiter.NewRateLimiter(perMinute, time.Minute)
}
