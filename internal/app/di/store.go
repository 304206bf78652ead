package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stock_watchlist/internal/app/config"
	"stock_watchlist/internal/feature/watchlist/adapters"
	"stock_watchlist/internal/feature/watchlist/usecase"
	"stock_watchlist/internal/platform/db"
)

// NewSymbolStore creates the configured SymbolStore implementation.
// The db store needs gdb, the redis store needs rdb.
func NewSymbolStore(cfg *config.Config, rdb *redis.Client, gdb *gorm.DB) (usecase.SymbolStore, error) {
	switch cfg.Store.Type {
	case config.StoreRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis store selected but redis is unavailable")
		}
		return adapters.NewSymbolRedis(rdb, cfg.Store.RedisPrefix), nil
	case config.StoreDB:
		if gdb == nil {
			return nil, fmt.Errorf("db store selected but no database is open")
		}
		return adapters.NewSymbolGorm(gdb), nil
	default:
		return adapters.NewSymbolFile(cfg.Store.FilePath), nil
	}
}

// OpenDatabase opens and migrates the database when the db store is selected.
// It returns nil for every other store.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Store.Type != config.StoreDB {
		return nil, nil
	}
	gdb, err := db.OpenDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := adapters.AutoMigrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}

// PingDatabase is a health check for gdb.
func PingDatabase(gdb *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
