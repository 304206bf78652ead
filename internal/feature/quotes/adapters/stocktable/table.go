// Package stocktable provides the bundled symbol lookup table used when the
// remote search is unavailable.
package stocktable

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"stock_watchlist/internal/feature/quotes/domain/entity"
)

//go:embed stocks.json
var stocksJSON []byte

type tableFile struct {
	Stocks []entity.StockInfo `json:"stocks"`
}

var (
	loadOnce sync.Once
	loaded   []entity.StockInfo
	loadErr  error
)

// Parse decodes a lookup table in the bundled {"stocks": [...]} format.
func Parse(data []byte) ([]entity.StockInfo, error) {
	var f tableFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stock table: %w", err)
	}
	return f.Stocks, nil
}

// Default returns the bundled table. The slice is shared and must not be modified.
func Default() ([]entity.StockInfo, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(stocksJSON)
	})
	return loaded, loadErr
}

// MustDefault is Default for program start-up; it panics on a corrupt bundle.
func MustDefault() []entity.StockInfo {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}
