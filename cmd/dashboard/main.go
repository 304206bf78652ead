package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stock_watchlist/internal/app/config"
	"stock_watchlist/internal/app/di"
	"stock_watchlist/internal/app/router"
	charthandler "stock_watchlist/internal/feature/chart/transport/handler"
	quoteshandler "stock_watchlist/internal/feature/quotes/transport/handler"
	watchlisthandler "stock_watchlist/internal/feature/watchlist/transport/handler"
	platformhandler "stock_watchlist/internal/platform/http/handler"
	"stock_watchlist/internal/platform/logging"
	"stock_watchlist/internal/platform/scheduler"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	path := os.Getenv("WATCHLIST_CONFIG")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load config", "path", path, "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	if cfg.FinnhubConfig().APIKey == "" {
		slog.Warn("FINNHUB_API_KEY is not set. Quotes and search will use local fallback data.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := di.Build(ctx, cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("failed to close connections", "error", err)
		}
	}()

	// Initial load, same as opening the dashboard
	go func() {
		if err := app.Watchlist.Refresh(ctx); err != nil {
			slog.Warn("initial refresh failed", "error", err)
		}
	}()

	// Periodic refresh
	sched := scheduler.NewScheduler(ctx)
	if cfg.Refresh.Cron != "" {
		if err := sched.Register(cfg.Refresh.Cron, "watchlist-refresh", app.Watchlist.Refresh); err != nil {
			slog.Error("invalid refresh schedule", "error", err)
			os.Exit(1)
		}
		sched.Start()
	}

	// Handler
	handlers := router.Handlers{
		Health:    platformhandler.NewHealthHandler(app.Checks),
		Watchlist: watchlisthandler.NewWatchlistHandler(app.Watchlist),
		Quotes:    quoteshandler.NewQuotesHandler(app.Quotes, app.Watchlist),
		Chart:     charthandler.NewChartHandler(app.Chart),
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewRouter(handlers, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("dashboard API listening", "addr", cfg.Server.Addr, "store", cfg.Store.Type, "search_cache", cfg.SearchCache.Type)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sched.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
