package usecase

import (
	"context"
	"errors"
	"log/slog"

	"stock_watchlist/internal/feature/quotes/domain/entity"
)

// QuoteSynthesizer produces a plausible quote without any remote call.
type QuoteSynthesizer interface {
	Quote(symbol string) entity.Quote
}

// SearchSynthesizer answers a search from local data only.
type SearchSynthesizer interface {
	Search(query string) []entity.SearchResult
}

// FallbackQuoteRepository decorates a QuoteRepository so that every fetch
// failure is replaced with a synthetic quote. Context cancellation is the
// only error that passes through.
type FallbackQuoteRepository struct {
	inner QuoteRepository
	synth QuoteSynthesizer
}

var _ QuoteRepository = (*FallbackQuoteRepository)(nil)

// NewFallbackQuoteRepository wraps inner with the synthetic fallback policy.
func NewFallbackQuoteRepository(inner QuoteRepository, synth QuoteSynthesizer) *FallbackQuoteRepository {
	return &FallbackQuoteRepository{inner: inner, synth: synth}
}

// GetQuote returns the remote quote or a synthetic one.
func (f *FallbackQuoteRepository) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	q, err := f.inner.GetQuote(ctx, symbol)
	if err == nil {
		return q, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return entity.Quote{}, err
	}
	slog.Warn("quote fetch failed, using synthetic quote", "symbol", symbol, "error", err)
	return f.synth.Quote(symbol), nil
}

// FallbackSearchRepository decorates a SearchRepository so that a failed
// remote search is answered from the local lookup table.
type FallbackSearchRepository struct {
	inner SearchRepository
	synth SearchSynthesizer
}

var _ SearchRepository = (*FallbackSearchRepository)(nil)

// NewFallbackSearchRepository wraps inner with the local-table fallback policy.
func NewFallbackSearchRepository(inner SearchRepository, synth SearchSynthesizer) *FallbackSearchRepository {
	return &FallbackSearchRepository{inner: inner, synth: synth}
}

// Search returns remote results or local matches.
func (f *FallbackSearchRepository) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	res, err := f.inner.Search(ctx, query)
	if err == nil {
		return res, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return nil, err
	}
	slog.Warn("stock search failed, using local table", "query", query, "error", err)
	return f.synth.Search(query), nil
}
