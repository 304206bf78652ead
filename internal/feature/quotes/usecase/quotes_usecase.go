package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/shared/ratelimiter"
)

// DefaultBatchDelay is the pause between two quote requests of a batch.
const DefaultBatchDelay = time.Second

// QuoteRepository fetches a single quote.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// SearchRepository looks up symbols matching a free-text query.
type SearchRepository interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// HistoryRepository produces chart points for a symbol and period.
type HistoryRepository interface {
	History(ctx context.Context, symbol string, period entity.Period) ([]entity.ChartPoint, error)
}

// BatchRunner runs n items sequentially.
type BatchRunner interface {
	Run(ctx context.Context, n int, fn func(ctx context.Context, i int)) error
}

// QuotesUsecase is the data-access entry point used by the watchlist and the views.
type QuotesUsecase struct {
	quotes  QuoteRepository
	search  SearchRepository
	history HistoryRepository
	batch   BatchRunner
}

// NewQuotesUsecase creates a QuotesUsecase. A nil batch runner defaults to a
// Pacer with DefaultBatchDelay.
func NewQuotesUsecase(quotes QuoteRepository, search SearchRepository, history HistoryRepository, batch BatchRunner) *QuotesUsecase {
	if batch == nil {
		batch = ratelimiter.NewPacer(DefaultBatchDelay)
	}
	return &QuotesUsecase{quotes: quotes, search: search, history: history, batch: batch}
}

// SearchStocks returns at most MaxSearchResults matches for query.
func (u *QuotesUsecase) SearchStocks(ctx context.Context, query string) ([]entity.SearchResult, error) {
	res, err := u.search.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(res) > entity.MaxSearchResults {
		res = res[:entity.MaxSearchResults]
	}
	return res, nil
}

// GetStockQuote returns the latest quote for symbol.
func (u *QuotesUsecase) GetStockQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	symbol = entity.NormalizeSymbol(symbol)
	if symbol == "" {
		return entity.Quote{}, ErrEmptySymbol
	}
	return u.quotes.GetQuote(ctx, symbol)
}

// GetHistoricalData returns chart points for symbol over period.
func (u *QuotesUsecase) GetHistoricalData(ctx context.Context, symbol string, period entity.Period) ([]entity.ChartPoint, error) {
	symbol = entity.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	return u.history.History(ctx, symbol, period)
}

// GetMultipleStockQuotes fetches quotes one symbol at a time, pausing between
// requests. Symbols without a quote are omitted; input order is preserved.
// Only context cancellation is reported as an error.
func (u *QuotesUsecase) GetMultipleStockQuotes(ctx context.Context, symbols []string) ([]entity.Quote, error) {
	quotes, _, err := u.GetMultipleStockQuotesDetailed(ctx, symbols)
	return quotes, err
}

// GetMultipleStockQuotesDetailed is GetMultipleStockQuotes that also returns
// the per-symbol failures it omitted.
func (u *QuotesUsecase) GetMultipleStockQuotesDetailed(ctx context.Context, symbols []string) ([]entity.Quote, []SymbolFailure, error) {
	quotes := make([]entity.Quote, 0, len(symbols))
	var failures []SymbolFailure

	err := u.batch.Run(ctx, len(symbols), func(ctx context.Context, i int) {
		symbol := strings.TrimSpace(symbols[i])
		q, err := u.GetStockQuote(ctx, symbol)
		if err != nil {
			slog.Warn("quote unavailable, skipping symbol", "symbol", symbol, "error", err)
			failures = append(failures, SymbolFailure{Symbol: symbol, Err: err})
			return
		}
		quotes = append(quotes, q)
	})
	if err == nil {
		// a fetch cut short by cancellation is not a per-symbol failure
		err = ctx.Err()
	}
	if err != nil {
		return nil, nil, err
	}
	return quotes, failures, nil
}

// SymbolFailure records why a symbol was left out of a batch.
type SymbolFailure struct {
	Symbol string
	Err    error
}
