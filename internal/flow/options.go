package flow

import (
	"log/slog"

	"github.com/san-kum/flowstation/internal/thermo"
)

// MixPolicy decides how Add treats streams at different total pressures.
type MixPolicy int

const (
	// MixRequireEqualPressure rejects streams whose total pressures differ by
	// more than PressureTolerance.
	MixRequireEqualPressure MixPolicy = iota

	// MixKeepPressure accepts any pressures and keeps the receiving station's Pt.
	MixKeepPressure
)

// PressureTolerance is relative.
const PressureTolerance = 1e-4

func (p MixPolicy) String() string {
	switch p {
	case MixRequireEqualPressure:
		return "equal_pressure"
	case MixKeepPressure:
		return "keep_pressure"
	}
	return "unknown"
}

type Option func(*Station)

func WithTable(t thermo.Table) Option {
	return func(s *Station) { s.table = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Station) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMixPolicy(p MixPolicy) Option {
	return func(s *Station) { s.mixPolicy = p }
}

// WithSolver sets the relative temperature tolerance and iteration budget
// of every root-finding solve.
func WithSolver(xtol float64, maxIter int) Option {
	return func(s *Station) {
		if xtol > 0 {
			s.brent.XTol = xtol
		}
		if maxIter > 0 {
			s.brent.MaxIter = maxIter
		}
	}
}
