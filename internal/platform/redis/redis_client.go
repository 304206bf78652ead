// Package redis opens the optional Redis connection shared by the symbol
// store and the search cache.
package redis

import (
	"context"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection settings.
type Config struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LoadConfigFromEnv reads REDIS_ADDR, or REDIS_HOST and REDIS_PORT, plus REDIS_PASSWORD.
func LoadConfigFromEnv() Config {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" && os.Getenv("REDIS_HOST") != "" {
		port := os.Getenv("REDIS_PORT")
		if port == "" {
			port = "6379"
		}
		addr = net.JoinHostPort(os.Getenv("REDIS_HOST"), port)
	}
	return Config{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")}
}

// NewRedisClient connects and pings. The client is closed again when the ping fails.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr)
	return rdb, nil
}
