package flow

import (
	"errors"
	"fmt"

	"github.com/san-kum/flowstation/internal/thermo"
)

var (
	// ErrComposition indicates invalid or non-normalized reactant fractions.
	ErrComposition = errors.New("flow: invalid composition")

	// ErrUnknownSpecies indicates a species identifier missing from the table.
	ErrUnknownSpecies = thermo.ErrUnknownSpecies

	// ErrConvergence indicates a root finder ran out of iterations or lost its bracket.
	ErrConvergence = errors.New("flow: solver did not converge")

	// ErrNoSolution indicates a physically infeasible specifier.
	ErrNoSolution = errors.New("flow: no physical solution")

	// ErrIncompatibleMix indicates streams that violate a mixing or combustion precondition.
	ErrIncompatibleMix = errors.New("flow: incompatible streams")

	// ErrTotalUnset indicates an operation that needs a total state before one was set.
	ErrTotalUnset = errors.New("flow: total state not set")

	// ErrStaticUnset indicates a static read without a static specifier.
	ErrStaticUnset = errors.New("flow: static state not specified")
)

// ConvergenceError reports a failed solve with the last attempted value.
type ConvergenceError struct {
	Op         string
	Target     float64
	Last       float64
	Iterations int
	Wrapped    error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: %v (target %g, last %g, %d iterations): %v",
		e.Op, ErrConvergence, e.Target, e.Last, e.Iterations, e.Wrapped)
}

func (e *ConvergenceError) Unwrap() []error {
	return []error{ErrConvergence, e.Wrapped}
}
