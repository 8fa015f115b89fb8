package viz

import (
	"errors"
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/flowstation/internal/sweep"
)

var ErrTooFewPoints = errors.New("viz: need at least two solved points to plot")

// AreaMachCurve plots flow area against Mach for the solved, finite points
// of a Mach sweep. The x axis is the sweep order.
func AreaMachCurve(points []sweep.Point, width, height int) (string, error) {
	data := make([]float64, 0, len(points))
	var lo, hi float64
	for _, p := range sweep.Valid(points) {
		if math.IsInf(p.Static.Area, 0) || math.IsNaN(p.Static.Area) {
			continue
		}
		if len(data) == 0 {
			lo = p.Static.Mach
		}
		hi = p.Static.Mach
		data = append(data, p.Static.Area)
	}
	if len(data) < 2 {
		return "", ErrTooFewPoints
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("area [in²] vs Mach %.2f → %.2f", lo, hi)),
	), nil
}
