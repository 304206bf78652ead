// Package entity defines the domain model for the watchlist feature.
package entity

import (
	"slices"

	qentity "stock_watchlist/internal/feature/quotes/domain/entity"
)

// StorageKey is the single key under which the symbol list is persisted.
const StorageKey = "stockSymbols"

// DefaultSymbols is the watchlist used when nothing has been persisted yet.
var DefaultSymbols = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NVDA", "NFLX"}

// Defaults returns a fresh copy of DefaultSymbols.
func Defaults() []string {
	return slices.Clone(DefaultSymbols)
}

// SymbolsOf returns the symbols of quotes in order.
func SymbolsOf(quotes []qentity.Quote) []string {
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Symbol)
	}
	return out
}

// Contains reports whether symbol is among quotes, ignoring case.
func Contains(quotes []qentity.Quote, symbol string) bool {
	return IndexOf(quotes, symbol) >= 0
}

// IndexOf returns the position of symbol in quotes or -1.
func IndexOf(quotes []qentity.Quote, symbol string) int {
	symbol = qentity.NormalizeSymbol(symbol)
	return slices.IndexFunc(quotes, func(q qentity.Quote) bool {
		return qentity.NormalizeSymbol(q.Symbol) == symbol
	})
}

// CleanSymbols normalizes a persisted list, dropping blanks and duplicates
// while keeping the first occurrence order.
func CleanSymbols(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = qentity.NormalizeSymbol(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
