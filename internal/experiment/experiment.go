package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/flowstation/internal/config"
	"github.com/san-kum/flowstation/internal/flow"
	"github.com/san-kum/flowstation/internal/sweep"
)

// Step is the station state after one scenario stage.
type Step struct {
	Label    string        `json:"label"`
	Snapshot flow.Snapshot `json:"snapshot"`
}

type Result struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Started  time.Time      `json:"started"`
	Elapsed  time.Duration  `json:"elapsed"`
	Steps    []Step         `json:"steps"`
	Sweep    []sweep.Point  `json:"sweep,omitempty"`
	Station  *flow.Station  `json:"-"`
	Scenario *config.Config `json:"-"`
}

// Final returns the last recorded snapshot.
func (r *Result) Final() flow.Snapshot {
	if len(r.Steps) == 0 {
		return flow.Snapshot{}
	}
	return r.Steps[len(r.Steps)-1].Snapshot
}

type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	log       *slog.Logger
	withSweep bool
}

type Option func(*Experiment)

func WithRegistry(r *Registry) Option {
	return func(e *Experiment) { e.registry = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Experiment) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSweep also runs the configured Mach sweep on the final station.
func WithSweep() Option {
	return func(e *Experiment) { e.withSweep = true }
}

func New(cfg *config.Config, opts ...Option) *Experiment {
	e := &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Experiment) stationOptions() ([]flow.Option, error) {
	policy, err := ParseMixPolicy(e.cfg.Solver.MixPolicy)
	if err != nil {
		return nil, err
	}
	return []flow.Option{
		flow.WithLogger(e.log),
		flow.WithSolver(e.cfg.Solver.XTol, e.cfg.Solver.MaxIter),
		flow.WithMixPolicy(policy),
	}, nil
}

// Stream builds a station for one configured stream.
func Stream(sc config.StreamConfig, opts ...flow.Option) (*flow.Station, error) {
	st := flow.New(opts...)
	if err := st.SetW(sc.W); err != nil {
		return nil, err
	}
	if err := st.SetWAR(sc.WAR); err != nil {
		return nil, err
	}
	if err := SetTotal(st, sc.Total); err != nil {
		return nil, err
	}
	return st, nil
}

func SetTotal(st *flow.Station, tc config.TotalConfig) error {
	switch tc.Mode {
	case "", "tp":
		return st.SetTotalTP(tc.T, tc.P)
	case "hp":
		return st.SetTotalHP(tc.H, tc.P)
	case "sp":
		return st.SetTotalSP(tc.S, tc.P)
	case "hs":
		return st.SetTotalHS(tc.H, tc.S)
	}
	return fmt.Errorf("unknown total mode: %s", tc.Mode)
}

// SetStatic applies a static specifier. An empty By clears the static state.
func SetStatic(st *flow.Station, sc config.StaticConfig) (flow.Static, error) {
	switch sc.By {
	case "":
		st.ClearStatic()
		return flow.Static{}, nil
	case "mach":
		return st.SetStaticByMach(sc.Value)
	case "ps":
		return st.SetStaticByPs(sc.Value)
	case "area":
		b, err := flow.ParseBranch(sc.Branch)
		if err != nil {
			return flow.Static{}, err
		}
		return st.SetStaticByArea(sc.Value, b)
	}
	return flow.Static{}, fmt.Errorf("unknown static specifier: %s", sc.By)
}

func (e *Experiment) fuel(name string) (config.FuelConfig, error) {
	for _, f := range e.cfg.Fuels {
		if f.Name == name {
			return f, nil
		}
	}
	return e.registry.GetFuel(name)
}

// Run executes the scenario stage by stage: inlet, burns, mixes, static.
// The context is checked between stages.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := e.stationOptions()
	if err != nil {
		return nil, err
	}

	res := &Result{
		ID:       uuid.NewString(),
		Name:     e.cfg.Name,
		Started:  time.Now(),
		Scenario: e.cfg,
	}
	log := e.log.With("run", res.ID, "scenario", e.cfg.Name)
	log.Info("scenario started")

	st, err := Stream(e.cfg.Inlet, opts...)
	if err != nil {
		return nil, fmt.Errorf("inlet: %w", err)
	}
	res.record("inlet", st)

	fuels := make(map[string]int)
	for i, b := range e.cfg.Burns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx, ok := fuels[b.Fuel]
		if !ok {
			f, err := e.fuel(b.Fuel)
			if err != nil {
				return nil, fmt.Errorf("burn %d: %w", i, err)
			}
			if idx, err = AddFuel(st, f); err != nil {
				return nil, fmt.Errorf("burn %d: fuel %s: %w", i, b.Fuel, err)
			}
			fuels[b.Fuel] = idx
		}
		if err := st.Burn(idx, b.W, b.H); err != nil {
			return nil, fmt.Errorf("burn %d: %w", i, err)
		}
		log.Debug("burn applied", "fuel", b.Fuel, "tt", st.Tt(), "far", st.FAR())
		res.record(fmt.Sprintf("burn %s", b.Fuel), st)
	}

	for i, m := range e.cfg.Mixes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		other, err := Stream(m, opts...)
		if err != nil {
			return nil, fmt.Errorf("mix %d: %w", i, err)
		}
		if err := st.Add(other); err != nil {
			return nil, fmt.Errorf("mix %d: %w", i, err)
		}
		res.record(fmt.Sprintf("mix %d", i), st)
	}

	if e.cfg.Static.By != "" {
		if _, err := SetStatic(st, e.cfg.Static); err != nil {
			return nil, fmt.Errorf("static: %w", err)
		}
		res.record("static "+e.cfg.Static.By, st)
	}

	if e.withSweep {
		sc := e.cfg.Sweep
		points, err := sweep.New(sc.Workers).Mach(ctx, st, sweep.Linspace(sc.MachFrom, sc.MachTo, sc.Points))
		if err != nil {
			return nil, fmt.Errorf("sweep: %w", err)
		}
		res.Sweep = points
	}

	res.Station = st
	res.Elapsed = time.Since(res.Started)
	log.Info("scenario finished", "steps", len(res.Steps), "tt", st.Tt(), "elapsed", res.Elapsed)
	return res, nil
}

func (r *Result) record(label string, st *flow.Station) {
	r.Steps = append(r.Steps, Step{Label: label, Snapshot: st.Snapshot()})
}
