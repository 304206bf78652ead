package entity

import "unicode/utf8"

// SearchResult is a symbol and display name pair returned by a stock search.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// StockInfo is one row of the bundled lookup table used as the search fallback.
type StockInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// MaxSearchResults caps the number of results any search returns.
const MaxSearchResults = 10

// MinQueryLength is the shortest query, in characters, that triggers a search.
const MinQueryLength = 2

// Searchable reports whether an already trimmed query is long enough to search.
func Searchable(query string) bool {
	return utf8.RuneCountInString(query) >= MinQueryLength
}

// FilterExisting drops results whose symbol is already tracked.
func FilterExisting(results []SearchResult, existing []string) []SearchResult {
	tracked := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		tracked[NormalizeSymbol(s)] = struct{}{}
	}
	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if _, ok := tracked[NormalizeSymbol(r.Symbol)]; ok {
			continue
		}
		out = append(out, r)
	}
	return out
}
