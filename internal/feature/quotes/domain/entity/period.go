package entity

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod is returned when a chart period is not one of the supported values.
var ErrInvalidPeriod = errors.New("invalid period")

// Period selects the span and resolution of a historical chart.
type Period string

const (
	Period1D  Period = "1d"
	Period1M  Period = "1mo"
	Period3M  Period = "3mo"
	Period1Y  Period = "1y"
	Period5Y  Period = "5y"
	PeriodMax Period = "max"
)

// Periods lists every supported period in display order.
var Periods = []Period{Period1D, Period1M, Period3M, Period1Y, Period5Y, PeriodMax}

// ParsePeriod validates s. An empty string selects the one-day chart.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return Period1D, nil
	}
	p := Period(s)
	for _, v := range Periods {
		if v == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}

// Points is the number of chart points generated for the period.
func (p Period) Points() int {
	switch p {
	case Period1M:
		return 20
	case Period3M:
		return 30
	case Period1Y:
		return 52
	case Period5Y:
		return 60
	case PeriodMax:
		return 72
	default:
		return 9
	}
}

// Step is the spacing between two consecutive points. Monthly periods
// report zero because they step by calendar month instead.
func (p Period) Step() time.Duration {
	switch p {
	case Period1D:
		return time.Hour
	case Period1M:
		return 36 * time.Hour
	case Period3M:
		return 72 * time.Hour
	case Period1Y:
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

// Monthly reports whether points are one calendar month apart.
func (p Period) Monthly() bool {
	return p == Period5Y || p == PeriodMax
}

// Label returns the short button label for the period (e.g. "1M").
func (p Period) Label() string {
	switch p {
	case Period1M:
		return "1M"
	case Period3M:
		return "3M"
	case Period1Y:
		return "1Y"
	case Period5Y:
		return "5Y"
	case PeriodMax:
		return "Max"
	default:
		return "1D"
	}
}

// Resolution describes the spacing of simulated points for chart captions.
func (p Period) Resolution() string {
	switch p {
	case Period1D:
		return "hourly"
	case Period1M:
		return "every 1.5 days"
	case Period3M:
		return "every 3 days"
	case Period1Y:
		return "weekly"
	default:
		return "monthly"
	}
}

// ChartPoint is a single price sample on a chart.
type ChartPoint struct {
	Time   string  `json:"time"`
	Price  float64 `json:"price"`
	Symbol string  `json:"symbol"`
}
