package thermo

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const fractionTolerance = 1e-6

// Composition is an immutable mixture of species by mass fraction. All
// property methods are pure functions of their arguments.
type Composition struct {
	species []*Species
	mass    []float64
	mole    []float64
	molar   float64
}

// NewComposition resolves mass fractions against t. Zero entries are
// dropped; the remaining fractions must be non-negative and sum to one.
func NewComposition(t Table, massFractions map[string]float64) (Composition, error) {
	names := make([]string, 0, len(massFractions))
	for name, y := range massFractions {
		if y < 0 || math.IsNaN(y) {
			return Composition{}, fmt.Errorf("%w: %s has fraction %g", ErrInvalidComposition, name, y)
		}
		if y > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return Composition{}, fmt.Errorf("%w: no species", ErrInvalidComposition)
	}
	sort.Strings(names)

	c := Composition{
		species: make([]*Species, len(names)),
		mass:    make([]float64, len(names)),
		mole:    make([]float64, len(names)),
	}
	for i, name := range names {
		sp, err := t.Lookup(name)
		if err != nil {
			return Composition{}, err
		}
		c.species[i] = sp
		c.mass[i] = massFractions[name]
	}

	sum := floats.Sum(c.mass)
	if math.Abs(sum-1) > fractionTolerance {
		return Composition{}, fmt.Errorf("%w: fractions sum to %g", ErrInvalidComposition, sum)
	}
	floats.Scale(1/sum, c.mass)

	for i, sp := range c.species {
		c.mole[i] = c.mass[i] / sp.Molar
	}
	c.molar = 1 / floats.Sum(c.mole)
	floats.Scale(c.molar, c.mole)
	return c, nil
}

func (c Composition) IsZero() bool { return len(c.species) == 0 }

func (c Composition) MassFractions() map[string]float64 {
	out := make(map[string]float64, len(c.species))
	for i, sp := range c.species {
		out[sp.Name] = c.mass[i]
	}
	return out
}

func (c Composition) MoleFractions() map[string]float64 {
	out := make(map[string]float64, len(c.species))
	for i, sp := range c.species {
		out[sp.Name] = c.mole[i]
	}
	return out
}

// MolarMass returns the mixture molar mass in lbm/lbmol.
func (c Composition) MolarMass() float64 { return c.molar }

// GasConstant returns R = Ru/M in BTU/(lbm·R).
func (c Composition) GasConstant() float64 { return RuBTU / c.molar }

func (c Composition) weighted(prop func(*Species) float64) float64 {
	vals := make([]float64, len(c.species))
	for i, sp := range c.species {
		vals[i] = prop(sp)
	}
	return floats.Dot(c.mass, vals)
}

// Enthalpy returns the absolute mixture enthalpy in BTU/lbm at t °R.
func (c Composition) Enthalpy(t float64) float64 {
	return c.weighted(func(sp *Species) float64 { return sp.Enthalpy(t) })
}

// Cp returns the frozen mixture specific heat in BTU/(lbm·R).
func (c Composition) Cp(t float64) float64 {
	return c.weighted(func(sp *Species) float64 { return sp.Cp(t) })
}

// Entropy returns the ideal-mixture entropy in BTU/(lbm·R) at t °R and p psia,
// including the entropy of mixing.
func (c Composition) Entropy(t, p float64) float64 {
	r := c.GasConstant()
	s := c.weighted(func(sp *Species) float64 { return sp.Entropy(t) })
	for _, x := range c.mole {
		s -= r * x * math.Log(x)
	}
	return s - r*math.Log(p/PRef)
}

// PressureAt returns the pressure at which the mixture has entropy s at t.
func (c Composition) PressureAt(t, s float64) float64 {
	return PRef * math.Exp((c.Entropy(t, PRef)-s)/c.GasConstant())
}

func (c Composition) Gamma(t float64) float64 {
	cp := c.Cp(t)
	return cp / (cp - c.GasConstant())
}

// Density returns the ideal-gas density in lbm/ft³.
func (c Composition) Density(t, p float64) float64 {
	return p * SqInPerSqFt / (c.GasConstant() * JouleConst * t)
}

// SoundSpeed returns the frozen speed of sound in ft/s.
func (c Composition) SoundSpeed(t float64) float64 {
	return math.Sqrt(c.Gamma(t) * c.GasConstant() * JouleConst * GC * t)
}
