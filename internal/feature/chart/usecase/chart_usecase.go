package usecase

import (
	"context"
	"fmt"

	"stock_watchlist/internal/feature/quotes/domain/entity"
)

// HistoryProvider returns chart points for a symbol and period.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type HistoryProvider interface {
	GetHistoricalData(ctx context.Context, symbol string, period entity.Period) ([]entity.ChartPoint, error)
}

// Chart is everything a renderer needs to draw one price chart.
type Chart struct {
	Symbol   string              `json:"symbol"`
	Period   entity.Period       `json:"period"`
	Points   []entity.ChartPoint `json:"points"`
	YMin     float64             `json:"yMin"`
	YMax     float64             `json:"yMax"`
	Interval int                 `json:"interval"` // labels skipped between shown labels
	Labels   []string            `json:"labels"`   // labels left after thinning
	Caption  string              `json:"caption"`
}

// ChartUsecase assembles charts from simulated history.
type ChartUsecase struct {
	history HistoryProvider
}

// NewChartUsecase creates a new ChartUsecase.
func NewChartUsecase(history HistoryProvider) *ChartUsecase {
	return &ChartUsecase{history: history}
}

// GetChart generates a fresh series for symbol over period and lays it out.
// Every call produces new data; nothing is cached.
func (u *ChartUsecase) GetChart(ctx context.Context, symbol string, period entity.Period) (Chart, error) {
	points, err := u.history.GetHistoricalData(ctx, symbol, period)
	if err != nil {
		return Chart{}, err
	}

	lo, hi := YDomain(Prices(points))
	return Chart{
		Symbol:   entity.NormalizeSymbol(symbol),
		Period:   period,
		Points:   points,
		YMin:     lo,
		YMax:     hi,
		Interval: XAxisInterval(len(points)),
		Labels:   ThinLabels(points),
		Caption:  Caption(period),
	}, nil
}

// Caption is the note shown under a chart explaining the data source.
func Caption(period entity.Period) string {
	return fmt.Sprintf("Simulated %s data (%s). Live historical prices are not available.", period.Label(), period.Resolution())
}
