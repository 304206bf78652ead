// Package usecase implements quote lookup, stock search and historical data
// retrieval, including the fallback policy that substitutes synthetic data.
package usecase

import (
	"errors"
	"fmt"
)

// Kind classifies why a remote fetch produced no usable data.
type Kind int

const (
	// KindNetwork covers transport failures and timeouts.
	KindNetwork Kind = iota + 1
	// KindHTTP is a non-2xx response status.
	KindHTTP
	// KindUpstream is an application error reported in the response body.
	KindUpstream
	// KindNoData is a response without a usable price (zero or absent).
	KindNoData
	// KindDecode is a response body that could not be parsed.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindUpstream:
		return "upstream"
	case KindNoData:
		return "no data"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is the failure half of a remote fetch result.
type FetchError struct {
	Kind   Kind
	Symbol string // symbol or query that was requested
	Status int    // HTTP status for KindHTTP
	Err    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.Symbol, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" %d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsKind reports whether err is a FetchError of the given kind.
func IsKind(err error, k Kind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == k
}
