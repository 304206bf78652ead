package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	qentity "stock_watchlist/internal/feature/quotes/domain/entity"
	qusecase "stock_watchlist/internal/feature/quotes/usecase"
	"stock_watchlist/internal/feature/watchlist/transport/handler"
	"stock_watchlist/internal/feature/watchlist/usecase"
)

// mockWatchlistUsecase is a mock implementation of handler.WatchlistUsecase.
type mockWatchlistUsecase struct {
	state         usecase.State
	RefreshFunc   func(ctx context.Context) error
	AddFunc       func(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error)
	RemoveFunc    func(ctx context.Context, symbol string) error
	removedSymbol string
}

func (m *mockWatchlistUsecase) Snapshot() usecase.State { return m.state }

func (m *mockWatchlistUsecase) Refresh(ctx context.Context) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil
}

func (m *mockWatchlistUsecase) AddFromSearch(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, result)
	}
	return qentity.Quote{}, nil
}

func (m *mockWatchlistUsecase) Remove(ctx context.Context, symbol string) error {
	m.removedSymbol = symbol
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, symbol)
	}
	return nil
}

func newRouter(uc handler.WatchlistUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handler.NewWatchlistHandler(uc)
	r := gin.New()
	r.GET("/watchlist", h.Get)
	r.POST("/watchlist/refresh", h.Refresh)
	r.POST("/watchlist", h.Add)
	r.DELETE("/watchlist/:symbol", h.Remove)
	return r
}

func serve(r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func twoQuotes() []qentity.Quote {
	return []qentity.Quote{
		qentity.NewQuote("AAPL", 110, 100),
		qentity.NewQuote("MSFT", 90, 100),
	}
}

func TestWatchlistHandler_Get(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		state        usecase.State
		expectedBody string
	}{
		{
			name:         "empty list",
			url:          "/watchlist",
			expectedBody: `{"quotes":[],"loading":false}`,
		},
		{
			name:  "selection falls back to first entry",
			url:   "/watchlist?selected=NFLX",
			state: usecase.State{Quotes: twoQuotes(), Loading: true},
			expectedBody: `{"quotes":[` +
				`{"symbol":"AAPL","companyName":"AAPL Corporation","price":110,"change":10,"changePercent":10,"changeDisplay":"+10.00","changePercentDisplay":"+10.00%","direction":"up"},` +
				`{"symbol":"MSFT","companyName":"MSFT Corporation","price":90,"change":-10,"changePercent":-10,"changeDisplay":"-10.00","changePercentDisplay":"-10.00%","direction":"down"}` +
				`],"loading":true,"selected":"AAPL"}`,
		},
		{
			name:  "error and failures are reported",
			url:   "/watchlist",
			state: usecase.State{Error: usecase.FetchFailedMessage, Failures: []usecase.Failure{{Symbol: "BAD", Reason: "no data"}}},
			expectedBody: `{"quotes":[],"loading":false,"error":"Failed to fetch stock data. Please try again.",` +
				`"failures":[{"symbol":"BAD","reason":"no data"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newRouter(&mockWatchlistUsecase{state: tt.state}), http.MethodGet, tt.url, "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWatchlistHandler_GetKeepsListedSelection(t *testing.T) {
	w := serve(newRouter(&mockWatchlistUsecase{state: usecase.State{Quotes: twoQuotes()}}), http.MethodGet, "/watchlist?selected=msft", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"selected":"MSFT"`)
}

func TestWatchlistHandler_Refresh(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		called := false
		uc := &mockWatchlistUsecase{RefreshFunc: func(ctx context.Context) error {
			called = true
			return nil
		}}
		w := serve(newRouter(uc), http.MethodPost, "/watchlist/refresh", "")

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failure reports the generic error", func(t *testing.T) {
		uc := &mockWatchlistUsecase{
			state:       usecase.State{Error: usecase.FetchFailedMessage},
			RefreshFunc: func(ctx context.Context) error { return errors.New("load symbols: disk gone") },
		}
		w := serve(newRouter(uc), http.MethodPost, "/watchlist/refresh", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), usecase.FetchFailedMessage)
		assert.NotContains(t, w.Body.String(), "disk gone")
	})
}

func TestWatchlistHandler_Add(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		addFunc        func(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: created",
			body: `{"symbol":"NFLX","name":"Netflix, Inc."}`,
			addFunc: func(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error) {
				assert.Equal(t, qentity.SearchResult{Symbol: "NFLX", Name: "Netflix, Inc."}, result)
				q := qentity.NewQuote("NFLX", 100, 100)
				q.CompanyName = result.Name
				return q, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"symbol":"NFLX","companyName":"Netflix, Inc.","price":100,"change":0,"changePercent":0,` +
				`"changeDisplay":"0.00","changePercentDisplay":"0.00%","direction":"flat"}`,
		},
		{
			name: "error: duplicate",
			body: `{"symbol":"AAPL"}`,
			addFunc: func(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error) {
				return qentity.Quote{}, fmt.Errorf("AAPL: %w", usecase.ErrAlreadyTracked)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"AAPL: symbol is already on the watchlist"}`,
		},
		{
			name: "error: blank symbol",
			body: `{"symbol":" "}`,
			addFunc: func(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error) {
				return qentity.Quote{}, qusecase.ErrEmptySymbol
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"symbol is empty"}`,
		},
		{
			name: "error: persistence failure",
			body: `{"symbol":"IBM"}`,
			addFunc: func(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error) {
				return qentity.Quote{}, errors.New("save symbols: read-only")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"save symbols: read-only"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newRouter(&mockWatchlistUsecase{AddFunc: tt.addFunc}), http.MethodPost, "/watchlist", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWatchlistHandler_Add_InvalidBody(t *testing.T) {
	uc := &mockWatchlistUsecase{AddFunc: func(ctx context.Context, result qentity.SearchResult) (qentity.Quote, error) {
		t.Error("usecase must not be called for an invalid body")
		return qentity.Quote{}, nil
	}}

	for _, body := range []string{`{}`, `not json`} {
		w := serve(newRouter(uc), http.MethodPost, "/watchlist", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestWatchlistHandler_Remove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockWatchlistUsecase{state: usecase.State{Quotes: twoQuotes()[:1]}}
		w := serve(newRouter(uc), http.MethodDelete, "/watchlist/MSFT?selected=MSFT", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "MSFT", uc.removedSymbol)
		assert.Contains(t, w.Body.String(), `"selected":"AAPL"`)
	})

	t.Run("failure", func(t *testing.T) {
		uc := &mockWatchlistUsecase{RemoveFunc: func(ctx context.Context, symbol string) error {
			return errors.New("save symbols: read-only")
		}}
		w := serve(newRouter(uc), http.MethodDelete, "/watchlist/MSFT", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"save symbols: read-only"}`, w.Body.String())
	})
}
