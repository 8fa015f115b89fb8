package flow

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/san-kum/flowstation/internal/thermo"
)

// MaxReactantSpecies is the fixed width of a reactant definition.
const MaxReactantSpecies = 6

const reactantTolerance = 1e-4

// Role says which ratio a reactant's amount is governed by: air is the
// base of WAR and FAR, water sets WAR, and fuels set FAR and burn.
type Role int

const (
	RoleAir Role = iota
	RoleWater
	RoleFuel
)

func (r Role) String() string {
	switch r {
	case RoleAir:
		return "air"
	case RoleWater:
		return "water"
	case RoleFuel:
		return "fuel"
	}
	return "unknown"
}

// Reactant is an immutable group of species with mass fractions summing to one.
type Reactant struct {
	Name      string
	Role      Role
	Species   []string
	Fractions []float64
}

func (r Reactant) clone() Reactant {
	r.Species = slices.Clone(r.Species)
	r.Fractions = slices.Clone(r.Fractions)
	return r
}

func (r Reactant) equal(o Reactant) bool {
	return r.Role == o.Role && slices.Equal(r.Species, o.Species) && slices.Equal(r.Fractions, o.Fractions)
}

// Indices of the reactants every station is created with.
const (
	ReactantAir   = 0
	ReactantWater = 1
)

// StandardAir is the dry-air reactant by mass.
func StandardAir() Reactant {
	return Reactant{
		Name:      "air",
		Role:      RoleAir,
		Species:   []string{"N2", "O2", "AR", "CO2"},
		Fractions: []float64{0.75474, 0.232, 0.0128, 0.00046},
	}
}

func Water() Reactant {
	return Reactant{
		Name:      "water",
		Role:      RoleWater,
		Species:   []string{"H2O"},
		Fractions: []float64{1},
	}
}

// NewReactant validates a fixed-width species/fraction list. Padding
// entries have an empty species name and a zero fraction.
func NewReactant(t thermo.Table, role Role, species []string, fractions []float64) (Reactant, error) {
	if len(species) != len(fractions) {
		return Reactant{}, fmt.Errorf("%w: %d species but %d fractions", ErrComposition, len(species), len(fractions))
	}
	if len(species) > MaxReactantSpecies {
		return Reactant{}, fmt.Errorf("%w: %d species exceeds %d", ErrComposition, len(species), MaxReactantSpecies)
	}

	r := Reactant{Role: role}
	sum := 0.0
	for i, name := range species {
		y := fractions[i]
		if y < 0 || math.IsNaN(y) || math.IsInf(y, 0) {
			return Reactant{}, fmt.Errorf("%w: fraction %g for %q", ErrComposition, y, name)
		}
		if name == "" {
			if y != 0 {
				return Reactant{}, fmt.Errorf("%w: padding entry %d has fraction %g", ErrComposition, i, y)
			}
			continue
		}
		if slices.Contains(r.Species, name) {
			return Reactant{}, fmt.Errorf("%w: %q listed twice", ErrComposition, name)
		}
		if _, err := t.Lookup(name); err != nil {
			return Reactant{}, err
		}
		if y == 0 {
			continue
		}
		r.Species = append(r.Species, name)
		r.Fractions = append(r.Fractions, y)
		sum += y
	}

	if len(r.Species) == 0 {
		return Reactant{}, fmt.Errorf("%w: reactant has no species", ErrComposition)
	}
	// Sums within reactantTolerance are rescaled to one; standard air sums
	// to 0.99996 as listed.
	if math.Abs(sum-1) > reactantTolerance {
		return Reactant{}, fmt.Errorf("%w: fractions sum to %g", ErrComposition, sum)
	}
	for i := range r.Fractions {
		r.Fractions[i] /= sum
	}
	r.Name = strings.Join(r.Species, "/")
	return r, nil
}

// NewReactantMoles is NewReactant for mole fractions.
func NewReactantMoles(t thermo.Table, role Role, species []string, moleFractions []float64) (Reactant, error) {
	if len(species) != len(moleFractions) {
		return Reactant{}, fmt.Errorf("%w: %d species but %d fractions", ErrComposition, len(species), len(moleFractions))
	}
	mass := make([]float64, len(species))
	sumX, sumM := 0.0, 0.0
	for i, name := range species {
		x := moleFractions[i]
		sumX += x
		if name == "" || x <= 0 {
			mass[i] = x
			continue
		}
		sp, err := t.Lookup(name)
		if err != nil {
			return Reactant{}, err
		}
		mass[i] = x * sp.Molar
		sumM += mass[i]
	}
	if math.Abs(sumX-1) > reactantTolerance {
		return Reactant{}, fmt.Errorf("%w: mole fractions sum to %g", ErrComposition, sumX)
	}
	for i := range mass {
		if species[i] != "" && mass[i] > 0 {
			mass[i] /= sumM
		}
	}
	return NewReactant(t, role, species, mass)
}

// AddReactant appends a fuel reactant given by mass fractions and returns
// its index. The station's composition is unchanged until the reactant is
// burned or given a fuel-air ratio.
func (st *Station) AddReactant(species []string, fractions []float64) (int, error) {
	r, err := NewReactant(st.table, RoleFuel, species, fractions)
	if err != nil {
		return -1, err
	}
	return st.appendReactant(r), nil
}

// AddReactantMoles is AddReactant for mole fractions.
func (st *Station) AddReactantMoles(species []string, moleFractions []float64) (int, error) {
	r, err := NewReactantMoles(st.table, RoleFuel, species, moleFractions)
	if err != nil {
		return -1, err
	}
	return st.appendReactant(r), nil
}

func (st *Station) appendReactant(r Reactant) int {
	st.reactants = append(st.reactants, r)
	st.amounts = append(st.amounts, 0)
	return len(st.reactants) - 1
}

// Reactants returns a copy of the reactant list in index order.
func (st *Station) Reactants() []Reactant {
	out := make([]Reactant, len(st.reactants))
	for i, r := range st.reactants {
		out[i] = r.clone()
	}
	return out
}

func indexOfReactant(list []Reactant, r Reactant) int {
	for i := range list {
		if list[i].equal(r) {
			return i
		}
	}
	return -1
}
