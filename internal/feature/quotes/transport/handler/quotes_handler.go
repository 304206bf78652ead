// Package handler provides HTTP handlers for the quotes feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/feature/quotes/transport/http/dto"
	"stock_watchlist/internal/feature/quotes/usecase"
)

// QuotesUsecase is the part of the quotes usecase the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type QuotesUsecase interface {
	SearchStocks(ctx context.Context, query string) ([]entity.SearchResult, error)
	GetStockQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// TrackedSymbols lists the symbols already on the watchlist.
type TrackedSymbols interface {
	Symbols() []string
}

// QuotesHandler handles search and single-quote requests.
type QuotesHandler struct {
	uc      QuotesUsecase
	tracked TrackedSymbols
}

// NewQuotesHandler creates a QuotesHandler. tracked may be nil, in which
// case search results are not filtered.
func NewQuotesHandler(uc QuotesUsecase, tracked TrackedSymbols) *QuotesHandler {
	return &QuotesHandler{uc: uc, tracked: tracked}
}

// Search returns stocks matching the q parameter, minus the ones already tracked.
//
// GET /search?q=apple
func (h *QuotesHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if !entity.Searchable(q) {
		c.JSON(http.StatusOK, []dto.SearchItem{})
		return
	}

	results, err := h.uc.SearchStocks(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if h.tracked != nil {
		results = entity.FilterExisting(results, h.tracked.Symbols())
	}

	out := make([]dto.SearchItem, 0, len(results))
	for _, r := range results {
		out = append(out, dto.SearchItem{Symbol: r.Symbol, Name: r.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Quote returns the latest quote for a symbol.
//
// GET /quotes/:symbol
func (h *QuotesHandler) Quote(c *gin.Context) {
	q, err := h.uc.GetStockQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, usecase.ErrEmptySymbol) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewQuoteItem(q))
}
