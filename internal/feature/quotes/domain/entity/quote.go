// Package entity defines the domain models for the quotes feature.
package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quote is a point-in-time price snapshot for a ticker symbol.
// It lives in memory only; the watchlist persists the symbol alone.
type Quote struct {
	Symbol        string  `json:"symbol"`        // Uppercase ticker (e.g., "AAPL")
	Price         float64 `json:"price"`         // Latest price, 2 dp
	Change        float64 `json:"change"`        // Price minus previous close, 2 dp
	ChangePercent float64 `json:"changePercent"` // Change relative to previous close, 2 dp
	CompanyName   string  `json:"companyName"`
}

// Direction classifies the sign of a price change.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

// NormalizeSymbol returns the canonical uppercase form of a ticker.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// DefaultCompanyName is the display name used when only the ticker is known.
func DefaultCompanyName(symbol string) string {
	return NormalizeSymbol(symbol) + " Corporation"
}

// Round2 rounds v half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// NewQuote builds a quote from a current price and a previous close.
// A zero previous close yields a zero percent change.
func NewQuote(symbol string, current, previousClose float64) Quote {
	change := current - previousClose
	pct := 0.0
	if previousClose != 0 {
		pct = change / previousClose * 100
	}
	return Quote{
		Symbol:        NormalizeSymbol(symbol),
		Price:         Round2(current),
		Change:        Round2(change),
		ChangePercent: Round2(pct),
		CompanyName:   DefaultCompanyName(symbol),
	}
}

// Direction reports whether the quote moved up, down or not at all.
func (q Quote) Direction() Direction {
	return ChangeDirection(q.Change)
}

// ChangeDirection classifies a signed change.
func ChangeDirection(change float64) Direction {
	switch {
	case change > 0:
		return Up
	case change < 0:
		return Down
	default:
		return Flat
	}
}

// FormatChange renders a change with an explicit plus sign for gains.
func FormatChange(change float64) string {
	sign := ""
	if change > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f", sign, change)
}

// FormatChangePercent renders a percent change, e.g. "+1.25%".
func FormatChangePercent(pct float64) string {
	return FormatChange(pct) + "%"
}
