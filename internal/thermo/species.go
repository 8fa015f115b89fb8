package thermo

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// NASA7 is a two-range NASA polynomial fit. Low applies below TMid, High
// above it; temperatures are in kelvin and the coefficients are
// dimensionless (cp/R, h/RT, s/R form).
type NASA7 struct {
	TMid float64
	Low  [7]float64
	High [7]float64
}

func (f *NASA7) coeffs(tK float64) *[7]float64 {
	if tK > f.TMid {
		return &f.High
	}
	return &f.Low
}

// Cp returns cp/R at tK.
func (f *NASA7) Cp(tK float64) float64 {
	a := f.coeffs(tK)
	return a[0] + tK*(a[1]+tK*(a[2]+tK*(a[3]+tK*a[4])))
}

// H returns h/(R·T) at tK.
func (f *NASA7) H(tK float64) float64 {
	a := f.coeffs(tK)
	return a[0] + tK*(a[1]/2+tK*(a[2]/3+tK*(a[3]/4+tK*a[4]/5))) + a[5]/tK
}

// S returns s°/R at tK.
func (f *NASA7) S(tK float64) float64 {
	a := f.coeffs(tK)
	return a[0]*math.Log(tK) + tK*(a[1]+tK*(a[2]/2+tK*(a[3]/3+tK*a[4]/4))) + a[6]
}

// Species is one entry of the reference table. Molar is derived from
// Elements when the table is built.
type Species struct {
	Name     string
	Elements map[string]float64
	Molar    float64
	Fit      NASA7
}

// Enthalpy returns the specific enthalpy in BTU/lbm at t degrees Rankine.
func (s *Species) Enthalpy(t float64) float64 {
	tK := t / RankinePerKelvin
	return s.Fit.H(tK) * RuSI * tK / s.Molar / KJPerKgPerBTU
}

// Cp returns the specific heat in BTU/(lbm·R).
func (s *Species) Cp(t float64) float64 {
	return s.Fit.Cp(t/RankinePerKelvin) * RuBTU / s.Molar
}

// Entropy returns the standard-state specific entropy in BTU/(lbm·R).
func (s *Species) Entropy(t float64) float64 {
	return s.Fit.S(t/RankinePerKelvin) * RuBTU / s.Molar
}

// Table resolves species identifiers to reference data.
type Table interface {
	Lookup(name string) (*Species, error)
}

// SpeciesTable is an immutable Table.
type SpeciesTable struct {
	byName map[string]*Species
	names  []string
}

func NewSpeciesTable(species ...Species) (*SpeciesTable, error) {
	t := &SpeciesTable{byName: make(map[string]*Species, len(species))}
	for i := range species {
		sp := species[i]
		m, err := molarMass(sp.Elements)
		if err != nil {
			return nil, fmt.Errorf("species %s: %w", sp.Name, err)
		}
		sp.Molar = m
		els := make(map[string]float64, len(sp.Elements))
		for k, v := range sp.Elements {
			els[k] = v
		}
		sp.Elements = els
		t.byName[sp.Name] = &sp
		t.names = append(t.names, sp.Name)
	}
	sort.Strings(t.names)
	return t, nil
}

func (t *SpeciesTable) Lookup(name string) (*Species, error) {
	sp, ok := t.byName[name]
	if !ok {
		return nil, &SpeciesError{Species: name, Wrapped: ErrUnknownSpecies}
	}
	return sp, nil
}

// Names lists the species identifiers in sorted order.
func (t *SpeciesTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

var defaultTable = sync.OnceValue(func() *SpeciesTable {
	t, err := NewSpeciesTable(defaultSpecies()...)
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the process-wide built-in table. It is built once and
// never mutated.
func Default() *SpeciesTable {
	return defaultTable()
}
