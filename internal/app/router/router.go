// Package router assembles the dashboard API routes.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	charthandler "stock_watchlist/internal/feature/chart/transport/handler"
	quoteshandler "stock_watchlist/internal/feature/quotes/transport/handler"
	watchlisthandler "stock_watchlist/internal/feature/watchlist/transport/handler"
	platformhandler "stock_watchlist/internal/platform/http/handler"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Health    *platformhandler.HealthHandler
	Watchlist *watchlisthandler.WatchlistHandler
	Quotes    *quoteshandler.QuotesHandler
	Chart     *charthandler.ChartHandler
}

// NewRouter creates the gin engine. allowedOrigins enables CORS for a
// browser view served from another origin; empty disables it.
func NewRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}))
	}

	// liveness
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	// watchlist state and its operations
	r.GET("/watchlist", h.Watchlist.Get)
	r.POST("/watchlist", h.Watchlist.Add)
	r.POST("/watchlist/refresh", h.Watchlist.Refresh)
	r.DELETE("/watchlist/:symbol", h.Watchlist.Remove)

	// lookups
	r.GET("/search", h.Quotes.Search)
	r.GET("/quotes/:symbol", h.Quotes.Quote)
	r.GET("/chart/:symbol", h.Chart.Get)

	return r
}
