package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"stock_watchlist/internal/feature/watchlist/domain/entity"
	"stock_watchlist/internal/feature/watchlist/usecase"
)

// SymbolRedis implements usecase.SymbolStore using Redis.
type SymbolRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.SymbolStore = (*SymbolRedis)(nil)

// NewSymbolRedis creates a new SymbolRedis instance. If prefix is empty, it uses "watchlist".
func NewSymbolRedis(client *redis.Client, prefix string) *SymbolRedis {
	if prefix == "" {
		prefix = "watchlist"
	}
	return &SymbolRedis{
		client: client,
		prefix: prefix,
	}
}

// key returns the Redis key holding the symbol array.
func (r *SymbolRedis) key() string {
	return fmt.Sprintf("%s:%s", r.prefix, entity.StorageKey)
}

// Load returns the stored symbols, or an empty list if the key does not exist.
func (r *SymbolRedis) Load(ctx context.Context) ([]string, error) {
	data, err := r.client.Get(ctx, r.key()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, err
	}
	return decodeSymbols(data)
}

// Save replaces the stored symbols. The key never expires.
func (r *SymbolRedis) Save(ctx context.Context, symbols []string) error {
	data, err := encodeSymbols(symbols)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(), data, 0).Err()
}
