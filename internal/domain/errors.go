package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when summary statistics are requested over a
// result with no snapshots.
var ErrEmptyResult = errors.New("simulation result has no snapshots")

// InvalidParametersError reports a rejected simulation input. Validation
// happens once, before any simulation work; no partial results are produced
// for invalid input.
type InvalidParametersError struct {
	Field   string
	Message string
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("invalid parameters: %s: %s", e.Field, e.Message)
}

func invalidParam(field, format string, args ...any) *InvalidParametersError {
	return &InvalidParametersError{Field: field, Message: fmt.Sprintf(format, args...)}
}
