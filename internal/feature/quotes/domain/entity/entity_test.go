package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		symbol        string
		current       float64
		previous      float64
		wantPrice     float64
		wantChange    float64
		wantPercent   float64
		wantSymbol    string
		wantCompanyNm string
	}{
		{
			name:          "gain rounds to two decimals",
			symbol:        "aapl",
			current:       190.456,
			previous:      188.0,
			wantPrice:     190.46,
			wantChange:    2.46,
			wantPercent:   1.31,
			wantSymbol:    "AAPL",
			wantCompanyNm: "AAPL Corporation",
		},
		{
			name:          "loss",
			symbol:        "TSLA",
			current:       200,
			previous:      250,
			wantPrice:     200,
			wantChange:    -50,
			wantPercent:   -20,
			wantSymbol:    "TSLA",
			wantCompanyNm: "TSLA Corporation",
		},
		{
			name:          "zero previous close has zero percent",
			symbol:        "NEW",
			current:       10,
			previous:      0,
			wantPrice:     10,
			wantChange:    10,
			wantPercent:   0,
			wantSymbol:    "NEW",
			wantCompanyNm: "NEW Corporation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := NewQuote(tt.symbol, tt.current, tt.previous)
			assert.Equal(t, tt.wantSymbol, q.Symbol)
			assert.InDelta(t, tt.wantPrice, q.Price, 1e-9)
			assert.InDelta(t, tt.wantChange, q.Change, 1e-9)
			assert.InDelta(t, tt.wantPercent, q.ChangePercent, 1e-9)
			assert.Equal(t, tt.wantCompanyNm, q.CompanyName)
		})
	}
}

func TestFormatChange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+1.50", FormatChange(1.5))
	assert.Equal(t, "-0.25", FormatChange(-0.25))
	assert.Equal(t, "0.00", FormatChange(0))
	assert.Equal(t, "+2.10%", FormatChangePercent(2.1))
	assert.Equal(t, "-3.00%", FormatChangePercent(-3))
}

func TestChangeDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Up, ChangeDirection(0.01))
	assert.Equal(t, Down, ChangeDirection(-0.01))
	assert.Equal(t, Flat, ChangeDirection(0))
	assert.Equal(t, Down, Quote{Change: -1}.Direction())
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in         string
		want       Period
		wantPoints int
		wantErr    bool
	}{
		{"", Period1D, 9, false},
		{"1d", Period1D, 9, false},
		{"1mo", Period1M, 20, false},
		{"3mo", Period3M, 30, false},
		{"1y", Period1Y, 52, false},
		{"5y", Period5Y, 60, false},
		{"max", PeriodMax, 72, false},
		{"2w", "", 0, true},
		{"1D", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			p, err := ParsePeriod(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidPeriod))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.wantPoints, p.Points())
		})
	}
}

func TestPeriod_Spacing(t *testing.T) {
	t.Parallel()

	assert.False(t, Period1Y.Monthly())
	assert.True(t, Period5Y.Monthly())
	assert.True(t, PeriodMax.Monthly())
	assert.Equal(t, "every 1.5 days", Period1M.Resolution())
	assert.Equal(t, "monthly", PeriodMax.Resolution())
	assert.Equal(t, "Max", PeriodMax.Label())
}

func TestSearchable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"a", false},
		{"é", false},
		{"ap", true},
		{"éa", true},
		{"日本", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Searchable(tt.query), "query=%q", tt.query)
	}
}

func TestFilterExisting(t *testing.T) {
	t.Parallel()

	results := []SearchResult{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "AMZN", Name: "Amazon.com Inc."},
		{Symbol: "AMD", Name: "Advanced Micro Devices"},
	}

	got := FilterExisting(results, []string{"amzn", "TSLA"})

	assert.Equal(t, []SearchResult{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "AMD", Name: "Advanced Micro Devices"},
	}, got)
	assert.Empty(t, FilterExisting(results, []string{"AAPL", "AMZN", "AMD"}))
}
