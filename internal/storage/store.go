package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/flowstation/internal/config"
	"github.com/san-kum/flowstation/internal/experiment"
	"github.com/san-kum/flowstation/internal/flow"
	"github.com/san-kum/flowstation/internal/sweep"
)

var ErrInvalidRunID = errors.New("storage: invalid run id")

// StationColumns is the header of stations.csv after the label column.
var StationColumns = []string{
	"w", "war", "far", "tt", "pt", "ht", "st", "rhot", "gamt",
	"ts", "ps", "hs", "rhos", "gams", "mach", "area", "vflow",
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Timestamp time.Time      `json:"timestamp"`
	ElapsedMs float64        `json:"elapsed_ms"`
	Steps     int            `json:"steps"`
	SweepSize int            `json:"sweep_points,omitempty"`
	Final     flow.Snapshot  `json:"final"`
	Scenario  *config.Config `json:"scenario,omitempty"`
}

func (s *Store) runDir(runID string) (string, error) {
	if err := uuid.Validate(runID); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidRunID, runID)
	}
	return filepath.Join(s.baseDir, runID), nil
}

// Save writes metadata.json, stations.csv and, for swept runs, sweep.csv
// into a directory named by the run ID.
func (s *Store) Save(res *experiment.Result) (string, error) {
	runDir, err := s.runDir(res.ID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        res.ID,
		Name:      res.Name,
		Timestamp: res.Started,
		ElapsedMs: float64(res.Elapsed.Microseconds()) / 1000,
		Steps:     len(res.Steps),
		SweepSize: len(res.Sweep),
		Final:     res.Final(),
		Scenario:  res.Scenario,
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(res.Steps)+1)
	rows = append(rows, append([]string{"label"}, StationColumns...))
	for _, step := range res.Steps {
		rows = append(rows, append([]string{step.Label}, formatRow(stationValues(step.Snapshot))...))
	}
	if err := writeCSV(filepath.Join(runDir, "stations.csv"), rows); err != nil {
		return "", err
	}

	if len(res.Sweep) > 0 {
		if err := writeCSV(filepath.Join(runDir, "sweep.csv"), sweepRows(res.Sweep)); err != nil {
			return "", err
		}
	}
	return res.ID, nil
}

func stationValues(snap flow.Snapshot) []float64 {
	nan := math.NaN()
	vals := []float64{snap.W, snap.WAR, snap.FAR}
	if t := snap.Total; t != nil {
		vals = append(vals, t.Tt, t.Pt, t.Ht, t.St, t.Rhot, t.Gamt)
	} else {
		vals = append(vals, nan, nan, nan, nan, nan, nan)
	}
	if st := snap.Static; st != nil {
		vals = append(vals, st.Ts, st.Ps, st.Hs, st.Rhos, st.Gams, st.Mach, st.Area, st.Vflow)
	} else {
		vals = append(vals, nan, nan, nan, nan, nan, nan, nan, nan)
	}
	return vals
}

func sweepRows(points []sweep.Point) [][]string {
	rows := [][]string{{"value", "ts", "ps", "mach", "area", "vflow", "error"}}
	for _, p := range points {
		msg := ""
		if p.Err != nil {
			msg = p.Err.Error()
		}
		st := p.Static
		row := formatRow([]float64{p.Value, st.Ts, st.Ps, st.Mach, st.Area, st.Vflow})
		rows = append(rows, append(row, msg))
	}
	return rows
}

// formatRow leaves NaN cells empty. Infinities are written as +Inf/-Inf,
// which LoadStations parses back.
func formatRow(vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		out[i] = strconv.FormatFloat(v, 'g', 10, 64)
	}
	return out
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Sync()
}

// List returns all readable runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	slices.SortFunc(runs, func(a, b RunMetadata) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadStations reads stations.csv back. Missing values come back as NaN.
func (s *Store) LoadStations(runID string) ([]string, [][]float64, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(filepath.Join(dir, "stations.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []string{}, [][]float64{}, nil
	}

	labels := make([]string, 0, len(records)-1)
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		labels = append(labels, record[0])
		row := make([]float64, len(record)-1)
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				v = math.NaN()
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return labels, rows, nil
}
