// Package flow implements the flow station: a gas mixture at one point of
// a thermodynamic cycle with its total (stagnation) and static (flowing)
// state.
//
// A [Station] tracks its composition as amounts of named reactant groups
// (dry air, water, fuels), evaluates the resulting gas as complete
// combustion products, and keeps one total state consistent with that gas:
//
//   - total setters: [Station.SetTotalTP], [Station.SetTotalHP],
//     [Station.SetTotalSP], [Station.SetTotalHS]
//   - static setters: [Station.SetStaticByMach], [Station.SetStaticByArea],
//     [Station.SetStaticByPs], [Station.SetStaticTsPsMN]
//   - mixture operations: [Station.Burn], [Station.Add], [Station.CopyFrom]
//
// # Example
//
//	st := flow.New()
//	st.SetW(100)
//	st.SetDryAir()
//	st.SetTotalTP(1100, 400)
//	s, err := st.SetStaticByArea(32, flow.Subsonic)
//
// # Static state
//
// Only the static specifier is stored. [Station.Static] re-derives the full
// static group from the current total state every time it is called, so a
// total-state change is always reflected in the next static read.
//
// # Thread Safety
//
// Stations are NOT safe for concurrent use. The species table they read is
// immutable and may be shared freely; use [Station.Clone] to hand a copy to
// another goroutine.
package flow
