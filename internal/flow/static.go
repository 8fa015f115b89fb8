package flow

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/san-kum/flowstation/internal/thermo"
)

// Branch selects the root of the area–Mach relation.
type Branch int

const (
	Subsonic Branch = iota
	Supersonic
)

func (b Branch) String() string {
	if b == Supersonic {
		return "super"
	}
	return "sub"
}

func ParseBranch(s string) (Branch, error) {
	switch s {
	case "", "sub", "subsonic":
		return Subsonic, nil
	case "super", "supersonic":
		return Supersonic, nil
	}
	return Subsonic, fmt.Errorf("flow: unknown branch %q", s)
}

func (b Branch) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Branch) UnmarshalText(text []byte) error {
	v, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// SpecKind names the quantity a static state was specified by.
type SpecKind int

const (
	SpecNone SpecKind = iota
	SpecMach
	SpecArea
	SpecPs
)

func (k SpecKind) String() string {
	switch k {
	case SpecMach:
		return "mach"
	case SpecArea:
		return "area"
	case SpecPs:
		return "ps"
	}
	return "none"
}

func (k SpecKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *SpecKind) UnmarshalText(text []byte) error {
	for _, v := range []SpecKind{SpecNone, SpecMach, SpecArea, SpecPs} {
		if v.String() == string(text) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("flow: unknown static specifier %q", text)
}

// Static is the flowing state at one specifier.
type Static struct {
	Ts     float64  `json:"ts"`
	Ps     float64  `json:"ps"`
	Hs     float64  `json:"hs"`
	Rhos   float64  `json:"rhos"`
	Gams   float64  `json:"gams"`
	Mach   float64  `json:"mach"`
	Area   float64  `json:"area"`
	Vflow  float64  `json:"vflow"`
	Branch Branch   `json:"branch"`
	Spec   SpecKind `json:"spec"`
}

// MarshalJSON writes the infinite area of a stagnant flow as null.
func (s Static) MarshalJSON() ([]byte, error) {
	type plain Static
	var area *float64
	if !math.IsInf(s.Area, 0) {
		area = &s.Area
	}
	return json.Marshal(struct {
		plain
		Area *float64 `json:"area"`
	}{plain(s), area})
}

type staticSpec struct {
	kind   SpecKind
	value  float64
	branch Branch
}

// expansion evaluates the isentropic expansion from a fixed total state.
type expansion struct {
	comp  thermo.Composition
	total Total
	w     float64
}

func (e expansion) velocity(ts float64) float64 {
	dh := e.total.Ht - e.comp.Enthalpy(ts)
	if dh <= 0 {
		return 0
	}
	return math.Sqrt(2 * thermo.GC * thermo.JouleConst * dh)
}

func (e expansion) mach(ts float64) float64 {
	return e.velocity(ts) / e.comp.SoundSpeed(ts)
}

func (e expansion) at(ts float64) Static {
	ps := e.comp.PressureAt(ts, e.total.St)
	v := e.velocity(ts)
	rho := e.comp.Density(ts, ps)
	area := math.Inf(1)
	if v > 0 {
		area = e.w / (rho * v) * thermo.SqInPerSqFt
	}
	return Static{
		Ts:    ts,
		Ps:    ps,
		Hs:    e.comp.Enthalpy(ts),
		Rhos:  rho,
		Gams:  e.comp.Gamma(ts),
		Mach:  v / e.comp.SoundSpeed(ts),
		Area:  area,
		Vflow: v,
	}
}

func (s *Station) expansion() (expansion, error) {
	if !s.hasTotal {
		return expansion{}, ErrTotalUnset
	}
	return expansion{comp: s.comp, total: s.total, w: s.w}, nil
}

func (s *Station) byMach(e expansion, m float64) (Static, error) {
	if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Static{}, fmt.Errorf("%w: Mach %g", ErrNoSolution, m)
	}
	if m == 0 {
		return e.at(e.total.Tt), nil
	}
	ts, err := s.root("Mach", e.mach, m, thermo.TMin, e.total.Tt)
	if err != nil {
		return Static{}, err
	}
	return e.at(ts), nil
}

func (s *Station) byPs(e expansion, ps float64) (Static, error) {
	if !positive(ps) || ps > e.total.Pt {
		return Static{}, fmt.Errorf("%w: Ps %g with Pt %g", ErrNoSolution, ps, e.total.Pt)
	}
	if ps == e.total.Pt {
		return e.at(e.total.Tt), nil
	}
	ts, err := s.root("Ps", func(t float64) float64 { return e.comp.Entropy(t, ps) }, e.total.St, thermo.TMin, e.total.Tt)
	if err != nil {
		return Static{}, err
	}
	return e.at(ts), nil
}

const throatTolerance = 1e-10

func (s *Station) byArea(e expansion, area float64, b Branch) (Static, error) {
	if !positive(area) || e.w <= 0 {
		return Static{}, fmt.Errorf("%w: area %g with W %g", ErrNoSolution, area, e.w)
	}
	throat, err := s.byMach(e, 1)
	if err != nil {
		return Static{}, err
	}
	switch {
	case area < throat.Area*(1-throatTolerance):
		return Static{}, fmt.Errorf("%w: area %g below throat area %g", ErrNoSolution, area, throat.Area)
	case area <= throat.Area*(1+throatTolerance):
		return throat, nil
	}

	lo, hi := throat.Ts, e.total.Tt*(1-1e-9)
	if b == Supersonic {
		lo, hi = thermo.TMin, throat.Ts
	}
	ts, err := s.root("area/"+b.String(), func(t float64) float64 { return e.at(t).Area }, area, lo, hi)
	if err != nil {
		return Static{}, err
	}
	return e.at(ts), nil
}

func (s *Station) evalStatic(spec staticSpec) (Static, error) {
	e, err := s.expansion()
	if err != nil {
		return Static{}, err
	}
	var st Static
	switch spec.kind {
	case SpecMach:
		st, err = s.byMach(e, spec.value)
	case SpecPs:
		st, err = s.byPs(e, spec.value)
	case SpecArea:
		st, err = s.byArea(e, spec.value, spec.branch)
	default:
		return Static{}, ErrStaticUnset
	}
	if err != nil {
		return Static{}, err
	}
	st.Spec = spec.kind
	st.Branch = spec.branch
	if spec.kind != SpecArea && st.Mach > 1 {
		st.Branch = Supersonic
	}
	return st, nil
}

func (s *Station) setStatic(spec staticSpec) (Static, error) {
	st, err := s.evalStatic(spec)
	if err != nil {
		return Static{}, err
	}
	s.spec = &spec
	return st, nil
}

// SetStaticByMach specifies the static state by Mach number.
func (s *Station) SetStaticByMach(m float64) (Static, error) {
	return s.setStatic(staticSpec{kind: SpecMach, value: m})
}

// SetStaticByArea specifies the static state by flow area in in². Areas
// below the sonic throat have no solution; above it b picks the root.
func (s *Station) SetStaticByArea(area float64, b Branch) (Static, error) {
	return s.setStatic(staticSpec{kind: SpecArea, value: area, branch: b})
}

// SetStaticByPs specifies the static state by static pressure in psia.
func (s *Station) SetStaticByPs(ps float64) (Static, error) {
	return s.setStatic(staticSpec{kind: SpecPs, value: ps})
}

// SetStaticTsPsMN sets the static state directly and back-solves the total
// state it expands from. The Mach number becomes the stored specifier.
func (s *Station) SetStaticTsPsMN(ts, ps, m float64) (Static, error) {
	if !positive(ts) || !positive(ps) || m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Static{}, fmt.Errorf("%w: Ts=%g Ps=%g Mach=%g", ErrNoSolution, ts, ps, m)
	}
	comp := s.comp
	v := m * comp.SoundSpeed(ts)
	ht := comp.Enthalpy(ts) + v*v/(2*thermo.GC*thermo.JouleConst)
	total, err := s.totalHS(comp, ht, comp.Entropy(ts, ps))
	if err != nil {
		return Static{}, err
	}

	prevTotal, prevHas := s.total, s.hasTotal
	s.commitTotal(total)
	st, err := s.setStatic(staticSpec{kind: SpecMach, value: m})
	if err != nil {
		s.total, s.hasTotal = prevTotal, prevHas
		return Static{}, err
	}
	return st, nil
}

// Static re-derives the static state from the stored specifier and the
// current total state.
func (s *Station) Static() (Static, error) {
	if s.spec == nil {
		return Static{}, ErrStaticUnset
	}
	return s.evalStatic(*s.spec)
}

// Throat returns the sonic state without changing the stored specifier.
func (s *Station) Throat() (Static, error) {
	return s.evalStatic(staticSpec{kind: SpecMach, value: 1})
}

func (s *Station) ClearStatic() { s.spec = nil }
