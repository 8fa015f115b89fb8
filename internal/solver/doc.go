// Package solver provides the bracketed one-dimensional root finders used
// by the flow-station total and static solvers.
//
// [Brent] combines bisection, secant and inverse quadratic interpolation.
// It never leaves the initial bracket, so a solve either converges inside
// the physical range it was given or fails with a [*Error] describing the
// last iterate.
//
//	b := solver.NewBrent()
//	res, err := b.Solve(func(t float64) float64 { return h(t) - target }, 100, 9000)
package solver
