package interpolate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is matched by every *ConfigError.
	ErrConfiguration = errors.New("interpolate: invalid configuration")

	// ErrSingularMatrix is matched by every *SingularMatrixError.
	ErrSingularMatrix = errors.New("interpolate: singular matrix")

	// ErrUninitialized is returned by queries against a predictor that never
	// finished solving its covariance system.
	ErrUninitialized = errors.New("interpolate: predictor not initialized")

	// ErrNumericInput is matched by every *NumericInputError.
	ErrNumericInput = errors.New("interpolate: NaN or Inf in input")

	// ErrEmptySamples is returned when a predictor is built without samples.
	ErrEmptySamples = errors.New("interpolate: no samples")
)

// ConfigError describes a rejected parameter.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s (%g): %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// SingularMatrixError lists the elimination columns whose pivot fell below
// the inversion tolerance. Those columns were skipped, so the inverse is
// only approximate.
type SingularMatrixError struct {
	Columns []int
}

func (e *SingularMatrixError) Error() string {
	cols := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		cols[i] = fmt.Sprint(c)
	}
	return fmt.Sprintf("singular matrix: pivot below tolerance in column(s) %s", strings.Join(cols, ","))
}

func (e *SingularMatrixError) Unwrap() error { return ErrSingularMatrix }

// NumericInputError reports a non-finite coordinate or value.
// Index is the offending sample, or -1 for a query.
type NumericInputError struct {
	Index int
	Field string
	Value float64
}

func (e *NumericInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("query %s is not finite: %g", e.Field, e.Value)
	}
	return fmt.Sprintf("sample %d %s is not finite: %g", e.Index, e.Field, e.Value)
}

func (e *NumericInputError) Unwrap() error { return ErrNumericInput }
