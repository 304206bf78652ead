// Package dto holds the JSON shapes returned by the Finnhub API.
package dto

// QuoteResponse is the body of GET /quote.
// C is a pointer so an absent price can be told apart from a zero one.
type QuoteResponse struct {
	C     *float64 `json:"c"`  // current price
	D     *float64 `json:"d"`  // change
	DP    *float64 `json:"dp"` // percent change
	H     float64  `json:"h"`  // high of the day
	L     float64  `json:"l"`  // low of the day
	O     float64  `json:"o"`  // open price of the day
	PC    float64  `json:"pc"` // previous close
	T     int64    `json:"t"`  // unix timestamp
	Error string   `json:"error,omitempty"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Count  int            `json:"count"`
	Result []SearchResult `json:"result"`
	Error  string         `json:"error,omitempty"`
}

// SearchResult is one match in a SearchResponse.
type SearchResult struct {
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
}
