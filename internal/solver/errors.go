package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBracket indicates the function has the same sign at both ends of the interval.
	ErrNoBracket = errors.New("solver: root not bracketed")

	// ErrMaxIterations indicates the iteration budget was exhausted.
	ErrMaxIterations = errors.New("solver: iteration limit reached")

	// ErrNotFinite indicates the function returned NaN or Inf.
	ErrNotFinite = errors.New("solver: function value not finite")
)

// Error carries the state of a failed solve.
type Error struct {
	Method     string
	Iterations int
	Last       float64
	Residual   float64
	Wrapped    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v after %d iterations (x=%g, f=%g)", e.Method, e.Wrapped, e.Iterations, e.Last, e.Residual)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}
