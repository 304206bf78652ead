// Package dto defines data transfer objects for the quotes HTTP API.
package dto

import "stock_watchlist/internal/feature/quotes/domain/entity"

// QuoteItem is a quote as rendered by the dashboard, with display strings
// precomputed so every view formats changes the same way.
type QuoteItem struct {
	Symbol               string  `json:"symbol"`
	CompanyName          string  `json:"companyName"`
	Price                float64 `json:"price"`
	Change               float64 `json:"change"`
	ChangePercent        float64 `json:"changePercent"`
	ChangeDisplay        string  `json:"changeDisplay"`        // e.g. "+1.50"
	ChangePercentDisplay string  `json:"changePercentDisplay"` // e.g. "+1.02%"
	Direction            string  `json:"direction"`            // "up", "down" or "flat"
}

// NewQuoteItem converts a domain quote into its API form.
func NewQuoteItem(q entity.Quote) QuoteItem {
	return QuoteItem{
		Symbol:               q.Symbol,
		CompanyName:          q.CompanyName,
		Price:                q.Price,
		Change:               q.Change,
		ChangePercent:        q.ChangePercent,
		ChangeDisplay:        entity.FormatChange(q.Change),
		ChangePercentDisplay: entity.FormatChangePercent(q.ChangePercent),
		Direction:            DirectionName(q.Direction()),
	}
}

// NewQuoteItems converts a slice of quotes, never returning nil.
func NewQuoteItems(quotes []entity.Quote) []QuoteItem {
	out := make([]QuoteItem, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteItem(q))
	}
	return out
}

// DirectionName is the lowercase wire name of a change direction.
func DirectionName(d entity.Direction) string {
	switch d {
	case entity.Up:
		return "up"
	case entity.Down:
		return "down"
	default:
		return "flat"
	}
}

// SearchItem is one search result in the API response.
type SearchItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
