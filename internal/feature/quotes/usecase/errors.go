package usecase

import "errors"

var (
	// ErrEmptySymbol is returned when a lookup is requested for a blank symbol.
	ErrEmptySymbol = errors.New("symbol is empty")
)
