package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"stock_watchlist/internal/feature/watchlist/domain/entity"
	"stock_watchlist/internal/feature/watchlist/usecase"
)

// symbolFile stores the watchlist in a small JSON document on disk:
//
//	{"stockSymbols": ["AAPL", "MSFT"]}
//
// Other keys in the document are preserved on save.
type symbolFile struct {
	mu   sync.Mutex
	path string
}

var _ usecase.SymbolStore = (*symbolFile)(nil)

// NewSymbolFile creates a file-backed SymbolStore at path.
func NewSymbolFile(path string) *symbolFile {
	return &symbolFile{path: path}
}

// Load returns the stored symbols. A missing file or key yields an empty list.
func (s *symbolFile) Load(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return decodeSymbols(doc[entity.StorageKey])
}

// Save replaces the stored symbols. The file is written to a temp file and
// renamed so a crash never leaves a truncated document.
func (s *symbolFile) Save(ctx context.Context, symbols []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	raw, err := encodeSymbols(symbols)
	if err != nil {
		return err
	}
	doc[entity.StorageKey] = raw

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *symbolFile) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return doc, nil
}
