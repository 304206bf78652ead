// Package usecase builds chart data: simulated history plus the axis
// heuristics a renderer needs to lay it out.
package usecase

import (
	"math"

	"github.com/shopspring/decimal"

	"stock_watchlist/internal/feature/quotes/domain/entity"
)

// YDomain returns a padded, step-aligned Y range that contains every price.
// The bounds are padded by 10% of the spread and then snapped outward to a
// power-of-ten step derived from the padded range. An empty series yields
// [0, 100]; a flat series yields [floor(p)-1, ceil(p)+1].
func YDomain(prices []float64) (lo, hi float64) {
	if len(prices) == 0 {
		return 0, 100
	}

	minP, maxP := prices[0], prices[0]
	for _, p := range prices[1:] {
		minP = math.Min(minP, p)
		maxP = math.Max(maxP, p)
	}

	spread := maxP - minP
	if spread == 0 {
		return math.Floor(minP) - 1, math.Ceil(maxP) + 1
	}

	padding := spread * 0.1
	paddedMin := minP - padding
	paddedMax := maxP + padding

	exp := math.Floor(math.Log10((paddedMax - paddedMin) / 5))
	step := math.Pow(10, exp)

	lo = math.Floor(paddedMin/step) * step
	hi = math.Ceil(paddedMax/step) * step

	// steps below 1 leave binary noise (94.30000000000001)
	if exp < 0 {
		places := int32(-exp)
		lo = decimal.NewFromFloat(lo).Round(places).InexactFloat64()
		hi = decimal.NewFromFloat(hi).Round(places).InexactFloat64()
	}
	return lo, hi
}

// XAxisInterval is the number of labels skipped between two shown labels
// for a series of n points.
func XAxisInterval(n int) int {
	switch {
	case n <= 10:
		return 0
	case n <= 20:
		return 1
	case n <= 40:
		return 2
	default:
		return n / 8
	}
}

// ThinLabels returns the time labels left visible after applying
// XAxisInterval, starting with the first point.
func ThinLabels(points []entity.ChartPoint) []string {
	every := XAxisInterval(len(points)) + 1
	out := make([]string, 0, len(points)/every+1)
	for i := 0; i < len(points); i += every {
		out = append(out, points[i].Time)
	}
	return out
}

// Prices extracts the price column of a series.
func Prices(points []entity.ChartPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Price
	}
	return out
}
