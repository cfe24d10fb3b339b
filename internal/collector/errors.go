package collector

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable means the provider answered but had no rows for the
// symbol/period. Callers should treat it as "try another symbol or
// window", not as a transient failure.
var ErrDataUnavailable = errors.New("no data for symbol/period")

// ProviderError wraps a failed provider call: transport faults, non-200
// responses, decode failures, or an API-level error payload. Distinct
// from ErrDataUnavailable so callers can tell "no data" from "could not
// determine".
type ProviderError struct {
	Symbol string
	Op     string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s %s: %v", e.Op, e.Symbol, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
