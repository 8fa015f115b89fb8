package flow

import (
	"fmt"
	"math"
)

// Burn adds wFuel lbm/s of reactant fuel entering with enthalpy hFuel
// (BTU/lbm) and re-solves the total state at constant Pt. Mass and
// enthalpy flow are conserved.
func (s *Station) Burn(fuel int, wFuel, hFuel float64) error {
	if err := s.checkFuel(fuel); err != nil {
		return err
	}
	if !s.hasTotal {
		return fmt.Errorf("burn: %w: %w", ErrIncompatibleMix, ErrTotalUnset)
	}
	if s.w <= 0 {
		return fmt.Errorf("burn: %w: station has no mass flow", ErrIncompatibleMix)
	}
	if wFuel < 0 || math.IsNaN(wFuel) || math.IsInf(wFuel, 0) || math.IsNaN(hFuel) || math.IsInf(hFuel, 0) {
		return fmt.Errorf("burn: %w: fuel flow %g at h %g", ErrIncompatibleMix, wFuel, hFuel)
	}

	w := s.w + wFuel
	amounts := make([]float64, len(s.amounts))
	for i, a := range s.amounts {
		amounts[i] = a * s.w / w
	}
	amounts[fuel] += wFuel / w

	comp, err := s.resolve(amounts)
	if err != nil {
		return err
	}
	ht := (s.w*s.total.Ht + wFuel*hFuel) / w
	total, err := s.totalHP(comp, ht, s.total.Pt)
	if err != nil {
		return err
	}

	s.log.Debug("burned fuel", "fuel", fuel, "w_fuel", wFuel, "tt", total.Tt)
	s.w = w
	s.amounts = amounts
	s.comp = comp
	s.total = total
	return nil
}
