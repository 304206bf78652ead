// Package adapters provides SymbolStore implementations for the watchlist feature.
package adapters

import (
	"encoding/json"
	"fmt"
)

// encodeSymbols serializes the list as the JSON array stored under the key.
// A nil list is stored as [] so readers never see null.
func encodeSymbols(symbols []string) ([]byte, error) {
	if symbols == nil {
		symbols = []string{}
	}
	return json.Marshal(symbols)
}

// decodeSymbols parses a stored JSON array. Empty input means nothing was stored.
func decodeSymbols(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var symbols []string
	if err := json.Unmarshal(data, &symbols); err != nil {
		return nil, fmt.Errorf("failed to unmarshal symbols: %w", err)
	}
	if symbols == nil {
		symbols = []string{}
	}
	return symbols, nil
}
