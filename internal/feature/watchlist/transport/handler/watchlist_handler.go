// Package handler provides HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	qentity "stock_watchlist/internal/feature/quotes/domain/entity"
	qdto "stock_watchlist/internal/feature/quotes/transport/http/dto"
	qusecase "stock_watchlist/internal/feature/quotes/usecase"
	"stock_watchlist/internal/feature/watchlist/transport/http/dto"
	"stock_watchlist/internal/feature/watchlist/usecase"
)

// WatchlistUsecase is the manager as seen by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	Snapshot() usecase.State
	Refresh(ctx context.Context) error
	AddFromSearch(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error)
	Remove(ctx context.Context, symbol string) error
}

// WatchlistHandler exposes the watchlist state and its operations.
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// Get returns the current state. The optional selected parameter is
// reconciled against the list so a removed symbol falls back to the first entry.
//
// GET /watchlist?selected=AAPL
func (h *WatchlistHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.state(c.Query("selected")))
}

// Refresh reloads every quote and returns the new state.
//
// POST /watchlist/refresh
func (h *WatchlistHandler) Refresh(c *gin.Context) {
	if err := h.uc.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, h.state(c.Query("selected")))
		return
	}
	c.JSON(http.StatusOK, h.state(c.Query("selected")))
}

// Add quotes a search result and appends it.
//
// POST /watchlist {"symbol":"NFLX","name":"Netflix, Inc."}
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.uc.AddFromSearch(c.Request.Context(), qentity.SearchResult{Symbol: req.Symbol, Name: req.Name})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyTracked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, qusecase.ErrEmptySymbol):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, qdto.NewQuoteItem(q))
}

// Remove drops a symbol from the watchlist.
//
// DELETE /watchlist/:symbol
func (h *WatchlistHandler) Remove(c *gin.Context) {
	if err := h.uc.Remove(c.Request.Context(), c.Param("symbol")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.state(c.Query("selected")))
}

func (h *WatchlistHandler) state(selected string) dto.WatchlistResponse {
	s := h.uc.Snapshot()
	out := dto.NewWatchlistResponse(s)

	var sel usecase.Selection
	sel.Select(selected)
	if q, ok := sel.Reconcile(s.Quotes); ok {
		out.Selected = q.Symbol
	}
	return out
}
