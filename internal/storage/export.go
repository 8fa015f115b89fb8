package storage

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/san-kum/flowstation/internal/experiment"
)

type ExportData struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Steps   []experiment.Step `json:"steps"`
	Sweep   []SweepPoint      `json:"sweep,omitempty"`
	Elapsed float64           `json:"elapsed_ms"`
}

// SweepPoint is a sweep.Point with its error flattened to text.
type SweepPoint struct {
	Value float64 `json:"value"`
	Mach  float64 `json:"mach"`
	Area  float64 `json:"area"`
	Ts    float64 `json:"ts"`
	Ps    float64 `json:"ps"`
	Error string  `json:"error,omitempty"`
}

func exportData(res *experiment.Result) ExportData {
	data := ExportData{
		ID:      res.ID,
		Name:    res.Name,
		Steps:   res.Steps,
		Elapsed: float64(res.Elapsed.Microseconds()) / 1000,
	}
	for _, p := range res.Sweep {
		sp := SweepPoint{Value: p.Value}
		if p.Err != nil {
			sp.Error = p.Err.Error()
		} else {
			sp.Mach, sp.Ts, sp.Ps = p.Static.Mach, p.Static.Ts, p.Static.Ps
			if !math.IsInf(p.Static.Area, 0) {
				sp.Area = p.Static.Area
			}
		}
		data.Sweep = append(data.Sweep, sp)
	}
	return data
}

func ExportJSONTo(w io.Writer, res *experiment.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(res))
}

func ExportJSON(path string, res *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSONTo(file, res)
}
