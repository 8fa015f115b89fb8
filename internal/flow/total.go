package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/flowstation/internal/solver"
	"github.com/san-kum/flowstation/internal/thermo"
)

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func (s *Station) totalTP(comp thermo.Composition, t, p float64) (Total, error) {
	if !positive(t) || !positive(p) {
		return Total{}, fmt.Errorf("%w: Tt=%g Pt=%g", ErrNoSolution, t, p)
	}
	return Total{
		Tt:   t,
		Pt:   p,
		Ht:   comp.Enthalpy(t),
		St:   comp.Entropy(t, p),
		Rhot: comp.Density(t, p),
		Gamt: comp.Gamma(t),
	}, nil
}

// solveT finds the temperature at which prop(T) equals target.
func (s *Station) solveT(op string, prop func(float64) float64, target float64) (float64, error) {
	return s.root(op, prop, target, thermo.TMin, thermo.TMax)
}

// root solves f(x) = target on [lo, hi]. A target outside the bracket is
// reported as ErrNoSolution, an exhausted solve as *ConvergenceError.
func (s *Station) root(op string, f func(float64) float64, target, lo, hi float64) (float64, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return 0, fmt.Errorf("%s: %w: target %g", op, ErrNoSolution, target)
	}
	res, err := s.brent.Solve(func(x float64) float64 { return f(x) - target }, lo, hi)
	if err != nil {
		cerr := &ConvergenceError{Op: op, Target: target, Wrapped: err}
		var serr *solver.Error
		if errors.As(err, &serr) {
			cerr.Last = serr.Last
			cerr.Iterations = serr.Iterations
		}
		s.log.Warn("solve failed", "op", op, "target", target, "lo", lo, "hi", hi, "err", err)
		if errors.Is(err, solver.ErrNoBracket) {
			return 0, fmt.Errorf("%w: %w", ErrNoSolution, cerr)
		}
		return 0, cerr
	}
	s.log.Debug("solved", "op", op, "target", target, "x", res.X, "iterations", res.Iterations)
	return res.X, nil
}

func (s *Station) totalHP(comp thermo.Composition, h, p float64) (Total, error) {
	t, err := s.solveT("hP", comp.Enthalpy, h)
	if err != nil {
		return Total{}, err
	}
	return s.totalTP(comp, t, p)
}

// SetTotalTP sets the total state from temperature (°R) and pressure (psia).
func (s *Station) SetTotalTP(t, p float64) error {
	total, err := s.totalTP(s.comp, t, p)
	if err != nil {
		return err
	}
	s.commitTotal(total)
	return nil
}

// SetTotalHP sets the total state from enthalpy (BTU/lbm) and pressure.
func (s *Station) SetTotalHP(h, p float64) error {
	if !positive(p) {
		return fmt.Errorf("%w: Pt=%g", ErrNoSolution, p)
	}
	total, err := s.totalHP(s.comp, h, p)
	if err != nil {
		return err
	}
	s.commitTotal(total)
	return nil
}

// SetTotalSP sets the total state from entropy (BTU/(lbm·R)) and pressure.
func (s *Station) SetTotalSP(entropy, p float64) error {
	if !positive(p) {
		return fmt.Errorf("%w: Pt=%g", ErrNoSolution, p)
	}
	comp := s.comp
	t, err := s.solveT("SP", func(t float64) float64 { return comp.Entropy(t, p) }, entropy)
	if err != nil {
		return err
	}
	total, err := s.totalTP(comp, t, p)
	if err != nil {
		return err
	}
	s.commitTotal(total)
	return nil
}

func (s *Station) totalHS(comp thermo.Composition, h, entropy float64) (Total, error) {
	t, err := s.solveT("hS", comp.Enthalpy, h)
	if err != nil {
		return Total{}, err
	}
	return s.totalTP(comp, t, comp.PressureAt(t, entropy))
}

// SetTotalHS sets the total state from enthalpy and entropy. Pressure
// follows from the entropy in closed form.
func (s *Station) SetTotalHS(h, entropy float64) error {
	total, err := s.totalHS(s.comp, h, entropy)
	if err != nil {
		return err
	}
	s.commitTotal(total)
	return nil
}

func (s *Station) commitTotal(t Total) {
	s.total = t
	s.hasTotal = true
}
