package di

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stock_watchlist/internal/app/config"
	chartusecase "stock_watchlist/internal/feature/chart/usecase"
	quotesusecase "stock_watchlist/internal/feature/quotes/usecase"
	watchlistusecase "stock_watchlist/internal/feature/watchlist/usecase"
	healthhandler "stock_watchlist/internal/platform/http/handler"
	infraredis "stock_watchlist/internal/platform/redis"
)

// App holds the wired usecases shared by both front ends.
type App struct {
	Quotes    *quotesusecase.QuotesUsecase
	Watchlist *watchlistusecase.Manager
	Chart     *chartusecase.ChartUsecase
	Store     watchlistusecase.SymbolStore
	Checks    map[string]healthhandler.Check

	rdb *redis.Client
	gdb *gorm.DB
}

// Build opens the configured backends and wires every usecase.
// Redis is optional unless the symbol store needs it: a failed connection
// only disables the redis search cache.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	return BuildWithRemote(ctx, cfg, NewFinnhubClient(cfg))
}

// BuildWithRemote is Build with an explicit quote service client.
func BuildWithRemote(ctx context.Context, cfg *config.Config, remote Remote) (*App, error) {
	a := &App{Checks: map[string]healthhandler.Check{}}

	if cfg.NeedsRedis() {
		rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis)
		switch {
		case err == nil:
			a.rdb = rdb
			a.Checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		case cfg.Store.Type == config.StoreRedis:
			return nil, err
		default:
			slog.Warn("Redis unavailable. Running without search cache.", "error", err)
		}
	}

	gdb, err := OpenDatabase(cfg)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if gdb != nil {
		a.gdb = gdb
		a.Checks["database"] = PingDatabase(gdb)
	}

	store, err := NewSymbolStore(cfg, a.rdb, a.gdb)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Store = store
	a.Quotes = NewQuotesUsecase(cfg, a.rdb, remote)
	a.Watchlist = watchlistusecase.NewManager(store, a.Quotes, watchlistusecase.Options{
		ReportFailures: cfg.Watchlist.ReportFetchFailures,
	})
	a.Chart = chartusecase.NewChartUsecase(a.Quotes)
	return a, nil
}

// Close releases the redis and database connections.
func (a *App) Close() error {
	var errs []error
	if a.rdb != nil {
		errs = append(errs, a.rdb.Close())
	}
	if a.gdb != nil {
		if sqlDB, err := a.gdb.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
