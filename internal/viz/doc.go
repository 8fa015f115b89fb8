// Package viz renders flow stations in the terminal.
//
// It provides lipgloss panels for a station's total state, static state and
// composition, an asciigraph area–Mach curve, and an interactive explorer
// built on Bubble Tea:
//
//   - [StationView]: total, static and composition panels side by side
//   - [AreaMachCurve]: flow area against Mach number from a sweep
//   - [Explorer]: adjust the static specifier and watch the state update
//
// # Key Bindings
//
//	j/k, ↑/↓ - Decrease/increase the current specifier
//	m, tab   - Cycle specifier (Mach, area, Ps)
//	b        - Toggle subsonic/supersonic branch (area mode)
//	t        - Cycle color themes
//	q        - Quit
package viz
