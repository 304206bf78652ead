// Package handler provides the HTTP handler for simulated price charts.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_watchlist/internal/feature/chart/usecase"
	"stock_watchlist/internal/feature/quotes/domain/entity"
	qusecase "stock_watchlist/internal/feature/quotes/usecase"
)

// ChartUsecase builds a chart for a symbol and period.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ChartUsecase interface {
	GetChart(ctx context.Context, symbol string, period entity.Period) (usecase.Chart, error)
}

// ChartHandler serves chart data.
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// Get returns a freshly simulated chart.
//
// GET /chart/:symbol?period=1mo
func (h *ChartHandler) Get(c *gin.Context) {
	period, err := entity.ParsePeriod(c.DefaultQuery("period", string(entity.Period1D)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.uc.GetChart(c.Request.Context(), c.Param("symbol"), period)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, qusecase.ErrEmptySymbol) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chart)
}
