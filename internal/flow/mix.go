package flow

import (
	"fmt"
	"math"
	"slices"
)

// Add mixes other into s. Mass flow and enthalpy flow are conserved and
// the mixture is solved at the receiver's Pt; whether other's Pt must
// match is decided by the receiver's MixPolicy. other is not modified.
func (s *Station) Add(other *Station) error {
	if !s.hasTotal || !other.hasTotal {
		return fmt.Errorf("add: %w: %w", ErrIncompatibleMix, ErrTotalUnset)
	}
	w := s.w + other.w
	if w <= 0 {
		return fmt.Errorf("add: %w: no mass flow", ErrIncompatibleMix)
	}
	if s.mixPolicy == MixRequireEqualPressure {
		if rel := math.Abs(s.total.Pt-other.total.Pt) / s.total.Pt; rel > PressureTolerance {
			return fmt.Errorf("add: %w: Pt %g and %g differ by %.3g (policy %s)",
				ErrIncompatibleMix, s.total.Pt, other.total.Pt, rel, s.mixPolicy)
		}
	}

	reactants := slices.Clone(s.reactants)
	amounts := make([]float64, len(s.amounts), len(s.amounts)+len(other.amounts))
	for i, a := range s.amounts {
		amounts[i] = a * s.w / w
	}
	for j, r := range other.reactants {
		share := other.amounts[j] * other.w / w
		if i := indexOfReactant(reactants, r); i >= 0 {
			amounts[i] += share
			continue
		}
		reactants = append(reactants, r.clone())
		amounts = append(amounts, share)
	}

	ht := (s.w*s.total.Ht + other.w*other.total.Ht) / w

	prev := s.reactants
	s.reactants = reactants
	comp, err := s.resolve(amounts)
	if err != nil {
		s.reactants = prev
		return err
	}
	total, err := s.totalHP(comp, ht, s.total.Pt)
	if err != nil {
		s.reactants = prev
		return err
	}

	s.log.Debug("mixed streams", "w", w, "tt", total.Tt, "policy", s.mixPolicy.String())
	s.w = w
	s.amounts = amounts
	s.comp = comp
	s.total = total
	return nil
}
