// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

import (
	qdto "stock_watchlist/internal/feature/quotes/transport/http/dto"
	"stock_watchlist/internal/feature/watchlist/usecase"
)

// WatchlistResponse is the manager state as seen by a view.
type WatchlistResponse struct {
	Quotes   []qdto.QuoteItem  `json:"quotes"`
	Loading  bool              `json:"loading"`
	Error    string            `json:"error,omitempty"`
	Failures []usecase.Failure `json:"failures,omitempty"`
	Selected string            `json:"selected,omitempty"` // symbol shown in detail, after reconciling
}

// NewWatchlistResponse converts a manager snapshot.
func NewWatchlistResponse(s usecase.State) WatchlistResponse {
	return WatchlistResponse{
		Quotes:   qdto.NewQuoteItems(s.Quotes),
		Loading:  s.Loading,
		Error:    s.Error,
		Failures: s.Failures,
	}
}

// AddRequest adds a search result to the watchlist.
type AddRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Name   string `json:"name"`
}
