package flow

import (
	"testing"

	"github.com/san-kum/flowstation/internal/thermo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReactant(t *testing.T) {
	table := thermo.Default()

	r, err := NewReactant(table, RoleFuel, []string{"CH2", "CH", "", "", "", ""}, []float64{0.922189, 0.07781, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"CH2", "CH"}, r.Species)
	assert.Equal(t, "CH2/CH", r.Name)
	assert.InDelta(t, 1.0, r.Fractions[0]+r.Fractions[1], 1e-15)

	tests := []struct {
		name      string
		species   []string
		fractions []float64
		want      error
	}{
		{"length mismatch", []string{"N2"}, []float64{0.5, 0.5}, ErrComposition},
		{"too wide", []string{"N2", "O2", "AR", "CO2", "H2O", "CO", "H2"}, []float64{.1, .1, .1, .1, .1, .1, .4}, ErrComposition},
		{"negative", []string{"N2", "O2"}, []float64{1.2, -0.2}, ErrComposition},
		{"not normalized", []string{"N2", "O2"}, []float64{0.7, 0.2}, ErrComposition},
		{"padding with mass", []string{"N2", ""}, []float64{0.9, 0.1}, ErrComposition},
		{"duplicate", []string{"N2", "N2"}, []float64{0.5, 0.5}, ErrComposition},
		{"empty", []string{"", ""}, []float64{0, 0}, ErrComposition},
		{"unknown species", []string{"XE"}, []float64{1}, ErrUnknownSpecies},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReactant(table, RoleFuel, tc.species, tc.fractions)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewReactantMoles(t *testing.T) {
	r, err := NewReactantMoles(thermo.Default(), RoleFuel, []string{"CH4", "H2"}, []float64{0.5, 0.5})
	require.NoError(t, err)

	ch4, _ := thermo.Default().Lookup("CH4")
	h2, _ := thermo.Default().Lookup("H2")
	want := ch4.Molar / (ch4.Molar + h2.Molar)
	assert.InEpsilon(t, want, r.Fractions[0], 1e-12)

	_, err = NewReactantMoles(thermo.Default(), RoleFuel, []string{"CH4", "H2"}, []float64{0.5, 0.4})
	assert.ErrorIs(t, err, ErrComposition)
}

func TestAddReactant_KeepsState(t *testing.T) {
	s := airStation(t, 100, 1100, 400)
	before := s.Snapshot()

	i, err := s.AddReactant([]string{"C", "H"}, []float64{0.862, 0.138})
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	j, err := s.AddReactantMoles([]string{"CH4"}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 3, j)

	assert.Equal(t, before.Total, s.Snapshot().Total)
	assert.Zero(t, s.FAR())

	_, err = s.AddReactant([]string{"C"}, []float64{0.5})
	assert.ErrorIs(t, err, ErrComposition)
	assert.Len(t, s.Reactants(), 4)
}

func TestNewReactant_SumTolerance(t *testing.T) {
	table := thermo.Default()

	r, err := NewReactant(table, RoleAir, []string{"N2", "O2", "AR", "CO2"}, []float64{0.75474, 0.232, 0.0128, 0.00046})
	require.NoError(t, err)
	sum := 0.0
	for _, y := range r.Fractions {
		sum += y
	}
	assert.InDelta(t, 1, sum, 1e-15)
	assert.InEpsilon(t, 0.75474/0.99996, r.Fractions[0], 1e-12)

	_, err = NewReactant(table, RoleAir, []string{"N2", "O2"}, []float64{0.75, 0.2498})
	assert.ErrorIs(t, err, ErrComposition)
}

func TestSetWAR(t *testing.T) {
	s := airStation(t, 10, 1000, 15)
	require.NoError(t, s.SetWAR(0.02))

	assert.InEpsilon(t, 0.02, s.WAR(), 1e-12)
	assert.Zero(t, s.FAR())
	assert.Equal(t, 10.0, s.W())
	assert.Equal(t, 1000.0, s.Tt())
	assert.InDelta(t, -0.020163, s.Ht(), 1e-5)

	y := s.Composition().MassFractions()
	assert.InEpsilon(t, 0.02/1.02, y["H2O"], 1e-9)

	assert.ErrorIs(t, s.SetWAR(-0.1), ErrComposition)
	assert.InEpsilon(t, 0.02, s.WAR(), 1e-12)

	require.NoError(t, s.SetDryAir())
	assert.Zero(t, s.WAR())
	assert.InEpsilon(t, 111.15236, s.Ht(), 1e-5)
	assert.InEpsilon(t, 111.225, s.Ht(), 1e-3)
}

// The -2.25 BTU/lbm listed for humid air at WAR 0.02 matches a water mass
// fraction of 0.02, i.e. WAR 0.02/0.98.
func TestSetWAR_WaterMassFraction(t *testing.T) {
	s := airStation(t, 10, 1000, 15)
	require.NoError(t, s.SetWAR(0.02/0.98))

	assert.InEpsilon(t, 0.02, s.Composition().MassFractions()["H2O"], 1e-9)
	assert.InEpsilon(t, -2.25, s.Ht(), 5e-3)
}

func TestSetFAR(t *testing.T) {
	s := airStation(t, 100, 1100, 400)
	fuel, err := s.AddReactant([]string{"C", "H"}, []float64{0.862, 0.138})
	require.NoError(t, err)

	require.NoError(t, s.SetWAR(0.01))
	require.NoError(t, s.SetFAR(fuel, 0.03))
	assert.InEpsilon(t, 0.03, s.FAR(), 1e-12)
	assert.InEpsilon(t, 0.01, s.WAR(), 1e-12)

	y := s.Composition().MassFractions()
	assert.Contains(t, y, "CO2")
	assert.Contains(t, y, "O2")
	assert.NotContains(t, y, "C")
	assert.NotContains(t, y, "CO")

	require.NoError(t, s.SetWAR(0.02))
	assert.InEpsilon(t, 0.03, s.FAR(), 1e-12)

	assert.ErrorIs(t, s.SetFAR(ReactantWater, 0.01), ErrComposition)
	assert.ErrorIs(t, s.SetFAR(99, 0.01), ErrComposition)
	assert.ErrorIs(t, s.SetFAR(fuel, -1), ErrComposition)
}

func TestSetFAR_RichProducts(t *testing.T) {
	s := airStation(t, 1, 1100, 400)
	fuel, err := s.AddReactant([]string{"C", "H"}, []float64{0.862, 0.138})
	require.NoError(t, err)

	require.NoError(t, s.SetFAR(fuel, 0.2))
	y := s.Composition().MassFractions()
	assert.Contains(t, y, "CO")
	assert.Contains(t, y, "H2")
	assert.NotContains(t, y, "O2")

	before := s.Snapshot()
	assert.ErrorIs(t, s.SetFAR(fuel, 0.5), ErrNoSolution)
	assert.Equal(t, before, s.Snapshot())
}

func TestProducts_ElementBalance(t *testing.T) {
	el := elementTotals{"C": 1, "H": 4, "O": 6, "N": 10, "Ar": 0.1}
	mol, err := products(el)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, mol["CO2"], 1e-15)
	assert.InDelta(t, 2.0, mol["H2O"], 1e-15)
	assert.InDelta(t, 1.0, mol["O2"], 1e-15)
	assert.InDelta(t, 5.0, mol["N2"], 1e-15)
	assert.Zero(t, mol["CO"])
	assert.Zero(t, mol["H2"])

	_, err = products(elementTotals{"C": 1, "S": 1, "O": 4})
	assert.ErrorIs(t, err, ErrComposition)
}
