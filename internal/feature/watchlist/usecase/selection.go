package usecase

import (
	qentity "stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/feature/watchlist/domain/entity"
)

// Selection tracks which watchlist entry a view is showing in detail.
// The zero value selects nothing.
type Selection struct {
	symbol string
}

// Select makes symbol the current selection. It takes effect on the next
// Reconcile only if the symbol is on the list.
func (s *Selection) Select(symbol string) {
	s.symbol = qentity.NormalizeSymbol(symbol)
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.symbol = ""
}

// Symbol returns the selected symbol, or "" when nothing is selected.
func (s *Selection) Symbol() string {
	return s.symbol
}

// Reconcile keeps the selection consistent with quotes: a selected symbol
// that is no longer listed (or no selection at all) falls back to the first
// entry, or to none when the list is empty.
func (s *Selection) Reconcile(quotes []qentity.Quote) (qentity.Quote, bool) {
	if s.symbol != "" {
		if i := entity.IndexOf(quotes, s.symbol); i >= 0 {
			return quotes[i], true
		}
	}
	if len(quotes) == 0 {
		s.symbol = ""
		return qentity.Quote{}, false
	}
	s.symbol = quotes[0].Symbol
	return quotes[0], true
}
