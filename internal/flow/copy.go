package flow

import "slices"

// CopyFrom replaces the state of s with a deep copy of src's composition,
// mass flow, total state and static specifier. Options (table, logger,
// solver, mix policy) are copied too.
func (s *Station) CopyFrom(src *Station) {
	if s == src {
		return
	}
	s.table = src.table
	s.log = src.log
	s.brent = src.brent
	s.mixPolicy = src.mixPolicy

	s.reactants = make([]Reactant, len(src.reactants))
	for i, r := range src.reactants {
		s.reactants[i] = r.clone()
	}
	s.amounts = slices.Clone(src.amounts)
	s.comp = src.comp

	s.w = src.w
	s.total = src.total
	s.hasTotal = src.hasTotal
	s.spec = nil
	if src.spec != nil {
		spec := *src.spec
		s.spec = &spec
	}
}

// Clone returns an independent copy of s.
func (s *Station) Clone() *Station {
	c := &Station{}
	c.CopyFrom(s)
	return c
}
