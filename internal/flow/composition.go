package flow

import (
	"fmt"
	"math"
	"slices"

	"github.com/san-kum/flowstation/internal/thermo"
	"gonum.org/v1/gonum/floats"
)

// element moles per unit reactant mass
type elementTotals map[string]float64

func (s *Station) elements(amounts []float64) (elementTotals, error) {
	el := make(elementTotals)
	for i, r := range s.reactants {
		if amounts[i] == 0 {
			continue
		}
		for j, name := range r.Species {
			sp, err := s.table.Lookup(name)
			if err != nil {
				return nil, err
			}
			moles := amounts[i] * r.Fractions[j] / sp.Molar
			for e, n := range sp.Elements {
				el[e] += moles * n
			}
		}
	}
	return el, nil
}

// products converts element totals to complete-combustion product moles.
// Oxygen goes to CO first, then to water, then finishes CO to CO2; what is
// left forms O2. Hydrogen without oxygen stays as H2.
func products(el elementTotals) (map[string]float64, error) {
	for e := range el {
		switch e {
		case "C", "H", "O", "N", "Ar":
		default:
			return nil, fmt.Errorf("%w: element %s has no product species", ErrComposition, e)
		}
	}

	c, h, o := el["C"], el["H"], el["O"]
	if o < c {
		return nil, fmt.Errorf("%w: %g mol O cannot oxidize %g mol C", ErrNoSolution, o, c)
	}

	co := c
	left := o - c
	h2o := math.Min(h/2, left)
	left -= h2o
	co2 := math.Min(co, left)
	co -= co2
	left -= co2

	return map[string]float64{
		"CO2": co2,
		"CO":  co,
		"H2O": h2o,
		"H2":  h/2 - h2o,
		"O2":  left / 2,
		"N2":  el["N"] / 2,
		"AR":  el["Ar"],
	}, nil
}

// resolve evaluates the reactant amounts as a product gas.
func (s *Station) resolve(amounts []float64) (thermo.Composition, error) {
	el, err := s.elements(amounts)
	if err != nil {
		return thermo.Composition{}, err
	}
	mol, err := products(el)
	if err != nil {
		return thermo.Composition{}, err
	}

	mass := make(map[string]float64, len(mol))
	total := 0.0
	for name, n := range mol {
		if n <= 0 {
			continue
		}
		sp, err := s.table.Lookup(name)
		if err != nil {
			return thermo.Composition{}, err
		}
		mass[name] = n * sp.Molar
		total += mass[name]
	}
	if total <= 0 {
		return thermo.Composition{}, fmt.Errorf("%w: no mass", ErrComposition)
	}
	for name := range mass {
		mass[name] /= total
	}

	comp, err := thermo.NewComposition(s.table, mass)
	if err != nil {
		return thermo.Composition{}, fmt.Errorf("%w: %w", ErrComposition, err)
	}
	return comp, nil
}

// setAmounts swaps in a new reactant mix and, when a total state exists,
// re-solves it at the same Tt and Pt. Nothing changes on error.
func (s *Station) setAmounts(amounts []float64) error {
	comp, err := s.resolve(amounts)
	if err != nil {
		return err
	}
	var total Total
	if s.hasTotal {
		total, err = s.totalTP(comp, s.total.Tt, s.total.Pt)
		if err != nil {
			return err
		}
	}
	s.amounts = amounts
	s.comp = comp
	if s.hasTotal {
		s.total = total
	}
	return nil
}

func (s *Station) roleSum(amounts []float64, role Role) float64 {
	sum := 0.0
	for i, r := range s.reactants {
		if r.Role == role {
			sum += amounts[i]
		}
	}
	return sum
}

// WAR is the water to dry-air mass ratio.
func (s *Station) WAR() float64 {
	air := s.roleSum(s.amounts, RoleAir)
	if air == 0 {
		return 0
	}
	return s.roleSum(s.amounts, RoleWater) / air
}

// FAR is the fuel mass ratio to all non-fuel mass (air plus water).
func (s *Station) FAR() float64 {
	fuel := s.roleSum(s.amounts, RoleFuel)
	rest := floats.Sum(s.amounts) - fuel
	if rest == 0 {
		return 0
	}
	return fuel / rest
}

// SetDryAir resets the gas to standard dry air; WAR and FAR become zero.
func (s *Station) SetDryAir() error {
	amounts := make([]float64, len(s.reactants))
	amounts[ReactantAir] = 1
	return s.setAmounts(amounts)
}

// SetWAR sets the water to dry-air ratio holding FAR and W.
func (s *Station) SetWAR(war float64) error {
	if war < 0 || math.IsNaN(war) || math.IsInf(war, 0) {
		return fmt.Errorf("%w: WAR %g", ErrComposition, war)
	}
	return s.setAmounts(s.rebalance(war, s.FAR(), -1))
}

// SetFAR replaces all fuel with reactant fuel at the given fuel-air ratio,
// holding WAR.
func (s *Station) SetFAR(fuel int, far float64) error {
	if err := s.checkFuel(fuel); err != nil {
		return err
	}
	if far < 0 || math.IsNaN(far) || math.IsInf(far, 0) {
		return fmt.Errorf("%w: FAR %g", ErrComposition, far)
	}
	return s.setAmounts(s.rebalance(s.WAR(), far, fuel))
}

// rebalance builds amounts with the given ratios. With fuel < 0 the
// existing fuel split is kept.
func (s *Station) rebalance(war, far float64, fuel int) []float64 {
	amounts := slices.Clone(s.amounts)
	nonFuel := 1 / (1 + far)
	fuelMass := far / (1 + far)

	oldFuel := s.roleSum(s.amounts, RoleFuel)
	for i, r := range s.reactants {
		if r.Role != RoleFuel {
			continue
		}
		switch {
		case fuel >= 0 && i == fuel:
			amounts[i] = fuelMass
		case fuel < 0 && oldFuel > 0:
			amounts[i] = s.amounts[i] / oldFuel * fuelMass
		default:
			amounts[i] = 0
		}
	}

	amounts[ReactantAir] = nonFuel / (1 + war)
	amounts[ReactantWater] = nonFuel * war / (1 + war)
	return amounts
}

func (s *Station) checkFuel(fuel int) error {
	if fuel < 0 || fuel >= len(s.reactants) {
		return fmt.Errorf("%w: no reactant %d", ErrComposition, fuel)
	}
	if s.reactants[fuel].Role != RoleFuel {
		return fmt.Errorf("%w: reactant %d is %s, not fuel", ErrComposition, fuel, s.reactants[fuel].Role)
	}
	return nil
}
