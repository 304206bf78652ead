package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/feature/quotes/transport/handler"
	"stock_watchlist/internal/feature/quotes/usecase"
)

// mockQuotesUsecase is a mock implementation of handler.QuotesUsecase.
type mockQuotesUsecase struct {
	SearchStocksFunc  func(ctx context.Context, query string) ([]entity.SearchResult, error)
	GetStockQuoteFunc func(ctx context.Context, symbol string) (entity.Quote, error)
}

func (m *mockQuotesUsecase) SearchStocks(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if m.SearchStocksFunc != nil {
		return m.SearchStocksFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockQuotesUsecase) GetStockQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	if m.GetStockQuoteFunc != nil {
		return m.GetStockQuoteFunc(ctx, symbol)
	}
	return entity.Quote{}, nil
}

type staticTracked []string

func (s staticTracked) Symbols() []string { return s }

func TestQuotesHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	results := []entity.SearchResult{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "AAPLW", Name: "Apple Warrants"},
	}

	tests := []struct {
		name           string
		url            string
		tracked        handler.TrackedSymbols
		mockSearch     func(ctx context.Context, query string) ([]entity.SearchResult, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "success: filters tracked symbols",
			url:     "/search?q=apple",
			tracked: staticTracked{"aapl"},
			mockSearch: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
				assert.Equal(t, "apple", query)
				return results, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"symbol":"AAPLW","name":"Apple Warrants"}]`,
		},
		{
			name: "success: no tracker returns everything",
			url:  "/search?q=apple",
			mockSearch: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
				return results, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"symbol":"AAPL","name":"Apple Inc."},{"symbol":"AAPLW","name":"Apple Warrants"}]`,
		},
		{
			name: "edge case: one-character query skips search",
			url:  "/search?q=a",
			mockSearch: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
				t.Error("search must not be called for short queries")
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "edge case: one multi-byte character skips search",
			url:  "/search?q=%C3%A9",
			mockSearch: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
				t.Error("search must not be called for short queries")
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "edge case: missing query",
			url:            "/search",
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: usecase returns error",
			url:  "/search?q=apple",
			mockSearch: func(ctx context.Context, query string) ([]entity.SearchResult, error) {
				return nil, context.Canceled
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"context canceled"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewQuotesHandler(&mockQuotesUsecase{SearchStocksFunc: tt.mockSearch}, tt.tracked)

			router := gin.New()
			router.GET("/search", h.Search)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestQuotesHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockQuote      func(ctx context.Context, symbol string) (entity.Quote, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: formatted quote",
			url:  "/quotes/aapl",
			mockQuote: func(ctx context.Context, symbol string) (entity.Quote, error) {
				assert.Equal(t, "aapl", symbol)
				return entity.NewQuote("AAPL", 151.5, 150), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"AAPL","companyName":"AAPL Corporation","price":151.5,"change":1.5,` +
				`"changePercent":1,"changeDisplay":"+1.50","changePercentDisplay":"+1.00%","direction":"up"}`,
		},
		{
			name: "error: empty symbol is a bad request",
			url:  "/quotes/%20",
			mockQuote: func(ctx context.Context, symbol string) (entity.Quote, error) {
				return entity.Quote{}, usecase.ErrEmptySymbol
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"symbol is empty"}`,
		},
		{
			name: "error: other failures are bad gateway",
			url:  "/quotes/AAPL",
			mockQuote: func(ctx context.Context, symbol string) (entity.Quote, error) {
				return entity.Quote{}, errors.New("upstream down")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"upstream down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewQuotesHandler(&mockQuotesUsecase{GetStockQuoteFunc: tt.mockQuote}, nil)

			router := gin.New()
			router.GET("/quotes/:symbol", h.Quote)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
