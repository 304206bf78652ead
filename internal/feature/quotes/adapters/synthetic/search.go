package synthetic

import (
	"sort"
	"strings"

	"stock_watchlist/internal/feature/quotes/domain/entity"
	"stock_watchlist/internal/feature/quotes/usecase"
)

// LocalSearch answers stock searches from a static lookup table.
type LocalSearch struct {
	table []entity.StockInfo
}

var _ usecase.SearchSynthesizer = (*LocalSearch)(nil)

// NewLocalSearch creates a LocalSearch over table.
func NewLocalSearch(table []entity.StockInfo) *LocalSearch {
	return &LocalSearch{table: table}
}

// Search matches query against symbols and names, case-insensitively.
// An entry matches on an exact symbol, a symbol substring, a name substring,
// or any query word (2+ chars) found inside a name word. Results are ranked
// exact symbol first, then symbol prefix, then alphabetically by symbol.
// When nothing matches a non-blank query a single placeholder is returned.
func (s *LocalSearch) Search(query string) []entity.SearchResult {
	q := strings.ToLower(query)
	queryWords := significantWords(q)

	matches := make([]entity.StockInfo, 0)
	for _, item := range s.table {
		if matchesQuery(item, q, queryWords) {
			matches = append(matches, item)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := strings.ToLower(matches[i].Symbol), strings.ToLower(matches[j].Symbol)
		ra, rb := rank(a, q), rank(b, q)
		if ra != rb {
			return ra < rb
		}
		return a < b
	})

	if len(matches) == 0 && strings.TrimSpace(query) != "" {
		return []entity.SearchResult{Placeholder(query)}
	}

	if len(matches) > entity.MaxSearchResults {
		matches = matches[:entity.MaxSearchResults]
	}
	out := make([]entity.SearchResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, entity.SearchResult{Symbol: m.Symbol, Name: m.Name})
	}
	return out
}

func matchesQuery(item entity.StockInfo, q string, queryWords []string) bool {
	symbol := strings.ToLower(item.Symbol)
	name := strings.ToLower(item.Name)

	if symbol == q || strings.Contains(symbol, q) || strings.Contains(name, q) {
		return true
	}
	nameWords := significantWords(name)
	for _, qw := range queryWords {
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) {
				return true
			}
		}
	}
	return false
}

func rank(symbol, q string) int {
	switch {
	case symbol == q:
		return 0
	case strings.HasPrefix(symbol, q):
		return 1
	default:
		return 2
	}
}

// significantWords splits s on spaces and keeps words of at least 2 characters.
func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Split(s, " ") {
		if len(w) > 1 {
			out = append(out, w)
		}
	}
	return out
}

// corporate suffixes rewritten into display names, checked in order
var suffixNames = []struct {
	suffix string
	name   string
}{
	{"INC", "Inc."},
	{"CORP", "Corporation"},
	{"CO", "Company"},
	{"LTD", "Limited"},
}

// Placeholder builds the single result shown for a query that matches nothing.
func Placeholder(query string) entity.SearchResult {
	symbol := strings.ToUpper(strings.TrimSpace(query))
	name := symbol + " Corporation"
	for _, s := range suffixNames {
		if strings.HasSuffix(symbol, s.suffix) {
			stem := strings.TrimSpace(strings.TrimSuffix(symbol, s.suffix))
			name = strings.TrimSpace(stem + " " + s.name)
			break
		}
	}
	return entity.SearchResult{Symbol: symbol, Name: name}
}
