// Package synthetic produces substitute market data when real data is
// unavailable: random quotes, random-walk price history and local search.
package synthetic

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/feature/quotes/usecase"
)

// Generator produces random quotes and price histories.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

var (
	_ usecase.QuoteSynthesizer  = (*Generator)(nil)
	_ usecase.HistoryRepository = (*Generator)(nil)
)

// NewGenerator returns a Generator seeded from the runtime's random source.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), time.Now)
}

// NewGeneratorWithSource returns a Generator using rnd and clock, for reproducible output.
func NewGeneratorWithSource(rnd *rand.Rand, clock func() time.Time) *Generator {
	return &Generator{rnd: rnd, now: clock}
}

func (g *Generator) float() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64()
}

// Quote returns a random quote: price in [100, 1000), change in [-10, 10).
func (g *Generator) Quote(symbol string) entity.Quote {
	price := 100 + g.float()*900
	change := (g.float() - 0.5) * 20
	return entity.Quote{
		Symbol:        entity.NormalizeSymbol(symbol),
		Price:         entity.Round2(price),
		Change:        entity.Round2(change),
		ChangePercent: entity.Round2(change / price * 100),
		CompanyName:   entity.DefaultCompanyName(symbol),
	}
}

// History returns a random-walk series for period. The last point is "now".
func (g *Generator) History(ctx context.Context, symbol string, period entity.Period) ([]entity.ChartPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := period.Points()
	now := g.now()
	price := math.Round(100 + g.float()*900)

	points := make([]entity.ChartPoint, 0, n)
	for i := 0; i < n; i++ {
		price += (g.float() - 0.5) * 4
		points = append(points, entity.ChartPoint{
			Time:   timeLabel(period, now, n-i-1, i),
			Price:  entity.Round2(price),
			Symbol: symbol,
		})
	}
	return points, nil
}

// timeLabel formats point i, which lies back steps before now.
func timeLabel(period entity.Period, now time.Time, back, i int) string {
	switch {
	case period == entity.Period1D:
		// trading session hours starting at 9:00
		return fmt.Sprintf("%d:00", 9+i)
	case period.Monthly():
		return now.AddDate(0, -back, 0).Format("Jan 06")
	default:
		// whole calendar days; a half day counts as a full one
		days := int(math.Ceil(float64(back) * period.Step().Hours() / 24))
		return now.AddDate(0, 0, -days).Format("Jan 2")
	}
}
