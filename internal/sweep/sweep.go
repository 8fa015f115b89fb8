// Package sweep evaluates a station's static state over a range of Mach
// numbers or areas in parallel. Each worker solves on its own clone of the
// base station, so the base is never touched.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/flowstation/internal/flow"
)

// Point is one evaluated specifier. Err is set when that point has no
// solution; the sweep itself continues.
type Point struct {
	Value  float64     `json:"value"`
	Static flow.Static `json:"static"`
	Err    error       `json:"-"`
}

type Sweeper struct {
	workers int
}

// New returns a Sweeper running at most workers solves at once. Zero means
// GOMAXPROCS.
func New(workers int) *Sweeper {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Sweeper{workers: workers}
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Mach solves the static state at each Mach number.
func (s *Sweeper) Mach(ctx context.Context, base *flow.Station, machs []float64) ([]Point, error) {
	return s.run(ctx, base, machs, func(st *flow.Station, m float64) (flow.Static, error) {
		return st.SetStaticByMach(m)
	})
}

// Area solves the static state at each area on branch b.
func (s *Sweeper) Area(ctx context.Context, base *flow.Station, areas []float64, b flow.Branch) ([]Point, error) {
	return s.run(ctx, base, areas, func(st *flow.Station, a float64) (flow.Static, error) {
		return st.SetStaticByArea(a, b)
	})
}

func (s *Sweeper) run(ctx context.Context, base *flow.Station, values []float64, solve func(*flow.Station, float64) (flow.Static, error)) ([]Point, error) {
	if !base.HasTotal() {
		return nil, fmt.Errorf("sweep: %w", flow.ErrTotalUnset)
	}

	workers := min(s.workers, len(values))
	if workers == 0 {
		return nil, nil
	}
	chunk := (len(values) + workers - 1) / workers

	points := make([]Point, len(values))
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(values); start += chunk {
		end := min(start+chunk, len(values))
		st := base.Clone()
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := solve(st, values[i])
				points[i] = Point{Value: values[i], Static: res, Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// Valid returns the points that solved.
func Valid(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Err == nil {
			out = append(out, p)
		}
	}
	return out
}
