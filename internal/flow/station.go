package flow

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/flowstation/internal/solver"
	"github.com/san-kum/flowstation/internal/thermo"
)

// Total is the stagnation state.
type Total struct {
	Tt   float64 `json:"tt"`
	Pt   float64 `json:"pt"`
	Ht   float64 `json:"ht"`
	St   float64 `json:"st"`
	Rhot float64 `json:"rhot"`
	Gamt float64 `json:"gamt"`
}

// Station is one flow station: a mass flow, a reactant mixture and its
// total state, plus an optional static specifier re-derived on demand.
// Setters are atomic; a failed call leaves the station unchanged. A
// Station is not safe for concurrent use; Clone it per goroutine.
type Station struct {
	table     thermo.Table
	log       *slog.Logger
	brent     solver.Brent
	mixPolicy MixPolicy

	reactants []Reactant
	amounts   []float64
	comp      thermo.Composition

	w        float64
	total    Total
	hasTotal bool
	spec     *staticSpec
}

// New returns a dry-air station with zero mass flow and no total state.
func New(opts ...Option) *Station {
	s := &Station{
		table:     thermo.Default(),
		log:       slog.New(slog.DiscardHandler),
		brent:     *solver.NewBrent(),
		mixPolicy: MixRequireEqualPressure,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.reactants = []Reactant{StandardAir(), Water()}
	s.amounts = []float64{1, 0}
	comp, err := s.resolve(s.amounts)
	if err != nil {
		// only reachable with a table that lacks the air species
		s.log.Error("dry air does not resolve", "err", err)
	}
	s.comp = comp
	return s
}

func (s *Station) W() float64 { return s.w }

// SetW sets the mass flow in lbm/s. The total state is kept; the static
// state follows on its next read.
func (s *Station) SetW(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: mass flow %g", ErrNoSolution, w)
	}
	s.w = w
	return nil
}

func (s *Station) HasTotal() bool { return s.hasTotal }

// Total returns the stagnation state, or ErrTotalUnset.
func (s *Station) Total() (Total, error) {
	if !s.hasTotal {
		return Total{}, ErrTotalUnset
	}
	return s.total, nil
}

func (s *Station) Tt() float64   { return s.total.Tt }
func (s *Station) Pt() float64   { return s.total.Pt }
func (s *Station) Ht() float64   { return s.total.Ht }
func (s *Station) St() float64   { return s.total.St }
func (s *Station) Rhot() float64 { return s.total.Rhot }
func (s *Station) Gamt() float64 { return s.total.Gamt }

// Composition returns the gas currently evaluated by the station.
func (s *Station) Composition() thermo.Composition { return s.comp }

func (s *Station) MixPolicy() MixPolicy { return s.mixPolicy }

// Snapshot is a flat, serializable view of a station.
type Snapshot struct {
	W           float64            `json:"w"`
	WAR         float64            `json:"war"`
	FAR         float64            `json:"far"`
	MolarMass   float64            `json:"molar_mass"`
	Total       *Total             `json:"total,omitempty"`
	Static      *Static            `json:"static,omitempty"`
	MassFracs   map[string]float64 `json:"mass_fractions"`
	StaticError string             `json:"static_error,omitempty"`
}

// Snapshot captures the current state. A static specifier that no longer
// solves is reported in StaticError rather than failing the snapshot.
func (s *Station) Snapshot() Snapshot {
	snap := Snapshot{
		W:         s.w,
		WAR:       s.WAR(),
		FAR:       s.FAR(),
		MolarMass: s.comp.MolarMass(),
		MassFracs: s.comp.MassFractions(),
	}
	if s.hasTotal {
		t := s.total
		snap.Total = &t
	}
	if s.spec != nil {
		st, err := s.Static()
		if err != nil {
			snap.StaticError = err.Error()
		} else {
			snap.Static = &st
		}
	}
	return snap
}

func (s *Station) String() string {
	if !s.hasTotal {
		return fmt.Sprintf("W=%.4g (no total state)", s.w)
	}
	return fmt.Sprintf("W=%.4g Tt=%.2f Pt=%.3f ht=%.4f st=%.5f", s.w, s.total.Tt, s.total.Pt, s.total.Ht, s.total.St)
}
