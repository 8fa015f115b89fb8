package thermo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSpecies indicates a species identifier missing from the table.
	ErrUnknownSpecies = errors.New("thermo: unknown species")

	// ErrUnknownElement indicates a species built from an element without an atomic weight.
	ErrUnknownElement = errors.New("thermo: unknown element")

	// ErrInvalidComposition indicates negative or non-normalized mass fractions.
	ErrInvalidComposition = errors.New("thermo: invalid composition")
)

// SpeciesError wraps a table error with the offending identifier.
type SpeciesError struct {
	Species string
	Element string
	Wrapped error
}

func (e *SpeciesError) Error() string {
	switch {
	case e.Species != "":
		return fmt.Sprintf("%v: %q", e.Wrapped, e.Species)
	case e.Element != "":
		return fmt.Sprintf("%v: %q", e.Wrapped, e.Element)
	}
	return e.Wrapped.Error()
}

func (e *SpeciesError) Unwrap() error {
	return e.Wrapped
}
