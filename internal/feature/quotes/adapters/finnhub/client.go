package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"stock_watchlist/internal/feature/quotes/adapters/finnhub/dto"
	"stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/feature/quotes/usecase"
	"stock_watchlist/internal/shared/ratelimiter"
)

// Client fetches quotes and search results from Finnhub. Every failure is
// reported as a *usecase.FetchError; it never substitutes data itself.
type Client struct {
	cfg     Config
	http    *resty.Client
	limiter ratelimiter.RateLimiterInterface
}

var (
	_ usecase.QuoteRepository  = (*Client)(nil)
	_ usecase.SearchRepository = (*Client)(nil)
)

// NewClient creates a Client on top of httpClient. A nil limiter disables throttling.
func NewClient(cfg Config, httpClient *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	if limiter == nil {
		limiter = ratelimiter.Unlimited{}
	}
	rc := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	return &Client{cfg: cfg, http: rc, limiter: limiter}
}

// GetQuote returns the latest quote for symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	symbol = entity.NormalizeSymbol(symbol)

	var body dto.QuoteResponse
	if err := c.get(ctx, "/quote", symbol, map[string]string{"symbol": symbol}, &body); err != nil {
		return entity.Quote{}, err
	}
	if body.Error != "" {
		return entity.Quote{}, &usecase.FetchError{Kind: usecase.KindUpstream, Symbol: symbol, Err: errors.New(body.Error)}
	}
	if body.C == nil || *body.C == 0 {
		return entity.Quote{}, &usecase.FetchError{Kind: usecase.KindNoData, Symbol: symbol}
	}
	return entity.NewQuote(symbol, *body.C, body.PC), nil
}

// Search returns up to MaxSearchResults symbols matching query.
func (c *Client) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	var body dto.SearchResponse
	if err := c.get(ctx, "/search", query, map[string]string{"q": query}, &body); err != nil {
		return nil, err
	}
	if body.Error != "" {
		return nil, &usecase.FetchError{Kind: usecase.KindUpstream, Symbol: query, Err: errors.New(body.Error)}
	}

	n := min(len(body.Result), entity.MaxSearchResults)
	out := make([]entity.SearchResult, 0, n)
	for _, r := range body.Result[:n] {
		name := r.Description
		if name == "" {
			name = r.Symbol
		}
		out = append(out, entity.SearchResult{Symbol: r.Symbol, Name: name})
	}
	return out, nil
}

// get performs a GET on path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path, subject string, params map[string]string, out any) error {
	c.limiter.WaitIfNeeded()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("token", c.cfg.APIKey).
		Get(path)
	if err != nil {
		return &usecase.FetchError{Kind: usecase.KindNetwork, Symbol: subject, Err: err}
	}
	if res.StatusCode() >= 400 {
		return &usecase.FetchError{Kind: usecase.KindHTTP, Symbol: subject, Status: res.StatusCode()}
	}
	if err := json.Unmarshal(res.Body(), out); err != nil {
		return &usecase.FetchError{Kind: usecase.KindDecode, Symbol: subject, Err: err}
	}
	return nil
}
