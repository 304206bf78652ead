// Package usecase holds the watchlist state and the operations that mutate it.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	qentity "stock_watchlist/internal/feature/quotes/domain/entity"
	qusecase "stock_watchlist/internal/feature/quotes/usecase"
	"stock_watchlist/internal/feature/watchlist/domain/entity"
)

// FetchFailedMessage is the message shown when a refresh fails as a whole.
const FetchFailedMessage = "Failed to fetch stock data. Please try again."

// ErrAlreadyTracked is returned when adding a symbol that is already on the list.
var ErrAlreadyTracked = errors.New("symbol is already on the watchlist")

// SymbolStore persists the ordered symbol list.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolStore interface {
	// Load returns the persisted symbols, or an empty slice if nothing was saved.
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, symbols []string) error
}

// QuoteService is the quotes usecase as seen by the watchlist.
type QuoteService interface {
	GetStockQuote(ctx context.Context, symbol string) (qentity.Quote, error)
	GetMultipleStockQuotesDetailed(ctx context.Context, symbols []string) ([]qentity.Quote, []qusecase.SymbolFailure, error)
}

// Failure is a symbol that was dropped from the last refresh.
type Failure struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

// State is a consistent snapshot of the manager.
type State struct {
	Quotes   []qentity.Quote `json:"quotes"`
	Loading  bool            `json:"loading"`
	Error    string          `json:"error,omitempty"`
	Failures []Failure       `json:"failures,omitempty"`
}

// Options tunes the manager.
type Options struct {
	// ReportFailures keeps the symbols dropped by a refresh visible through
	// Failures. When false they are dropped silently.
	ReportFailures bool
}

// Manager owns the watchlist: the current quotes, a loading flag and the
// last refresh error. Every mutation re-persists the symbol list.
//
// Overlapping refreshes are not sequenced; the last one to finish wins.
type Manager struct {
	store  SymbolStore
	quotes QuoteService
	opts   Options

	mu       sync.RWMutex
	list     []qentity.Quote
	loading  int
	err      string
	failures []Failure
}

// NewManager creates an empty Manager. Call Refresh to load the watchlist.
func NewManager(store SymbolStore, quotes QuoteService, opts Options) *Manager {
	return &Manager{store: store, quotes: quotes, opts: opts}
}

// Refresh loads the persisted symbols (or the defaults), fetches a quote
// for each and persists exactly the symbols that produced a quote. On
// failure the previous list is kept and Err reports a generic message.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.loading++
	m.err = ""
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loading--
		m.mu.Unlock()
	}()

	quotes, failures, err := m.fetch(ctx)
	if err != nil {
		slog.Error("watchlist refresh failed", "error", err)
		m.mu.Lock()
		m.err = FetchFailedMessage
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.list = quotes
	m.failures = nil
	if m.opts.ReportFailures {
		m.failures = failures
	}
	m.mu.Unlock()

	slog.Info("watchlist refreshed", "symbols", len(quotes), "dropped", len(failures))
	return nil
}

func (m *Manager) fetch(ctx context.Context) ([]qentity.Quote, []Failure, error) {
	symbols, err := m.store.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load symbols: %w", err)
	}
	symbols = entity.CleanSymbols(symbols)
	if len(symbols) == 0 {
		symbols = entity.Defaults()
	}

	quotes, dropped, err := m.quotes.GetMultipleStockQuotesDetailed(ctx, symbols)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch quotes: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("fetch quotes: %w", err)
	}

	if err := m.store.Save(ctx, entity.SymbolsOf(quotes)); err != nil {
		return nil, nil, fmt.Errorf("save symbols: %w", err)
	}

	failures := make([]Failure, 0, len(dropped))
	for _, d := range dropped {
		failures = append(failures, Failure{Symbol: d.Symbol, Reason: d.Err.Error()})
	}
	return quotes, failures, nil
}

// Add appends quote and persists the new symbol list. Duplicates are not
// rejected here; callers filter them first.
func (m *Manager) Add(ctx context.Context, quote qentity.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := append(slices.Clone(m.list), quote)
	if err := m.store.Save(ctx, entity.SymbolsOf(next)); err != nil {
		return fmt.Errorf("save symbols: %w", err)
	}
	m.list = next
	return nil
}

// Remove drops symbol from the list and persists the result.
func (m *Manager) Remove(ctx context.Context, symbol string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	symbol = qentity.NormalizeSymbol(symbol)
	next := slices.DeleteFunc(slices.Clone(m.list), func(q qentity.Quote) bool {
		return qentity.NormalizeSymbol(q.Symbol) == symbol
	})
	if err := m.store.Save(ctx, entity.SymbolsOf(next)); err != nil {
		return fmt.Errorf("save symbols: %w", err)
	}
	m.list = next
	return nil
}

// AddFromSearch fetches a quote for a search result, labels it with the
// result's display name and adds it.
func (m *Manager) AddFromSearch(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error) {
	if qentity.NormalizeSymbol(result.Symbol) == "" {
		return qentity.Quote{}, qusecase.ErrEmptySymbol
	}
	if m.Contains(result.Symbol) {
		return qentity.Quote{}, fmt.Errorf("%s: %w", qentity.NormalizeSymbol(result.Symbol), ErrAlreadyTracked)
	}

	q, err := m.quotes.GetStockQuote(ctx, result.Symbol)
	if err != nil {
		return qentity.Quote{}, err
	}
	if result.Name != "" {
		q.CompanyName = result.Name
	}
	if err := m.Add(ctx, q); err != nil {
		return qentity.Quote{}, err
	}
	return q, nil
}

// Quotes returns a copy of the current list.
func (m *Manager) Quotes() []qentity.Quote {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.list)
}

// Symbols returns the symbols currently on the list.
func (m *Manager) Symbols() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return entity.SymbolsOf(m.list)
}

// Contains reports whether symbol is on the list.
func (m *Manager) Contains(symbol string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return entity.Contains(m.list, symbol)
}

// First returns the first quote, if any.
func (m *Manager) First() (qentity.Quote, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.list) == 0 {
		return qentity.Quote{}, false
	}
	return m.list[0], true
}

// Loading reports whether a refresh is in flight.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading > 0
}

// Err returns the message of the last failed refresh, or "".
func (m *Manager) Err() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// Failures returns the symbols dropped by the last refresh. It is always
// empty unless ReportFailures is set.
func (m *Manager) Failures() []Failure {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.failures)
}

// Snapshot returns the whole state under one lock.
func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return State{
		Quotes:   slices.Clone(m.list),
		Loading:  m.loading > 0,
		Error:    m.err,
		Failures: slices.Clone(m.failures),
	}
}
