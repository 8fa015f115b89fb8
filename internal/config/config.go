package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/flowstation/internal/logging"
)

const (
	DefaultW       = 100.0
	DefaultTt      = 518.67
	DefaultPt      = 14.696
	DefaultMaxIter = 100
	DefaultXTol    = 1e-12
	DefaultWorkers = 4
	DefaultPoints  = 40
	DefaultOutDir  = "runs"
)

var ErrInvalid = errors.New("config: invalid scenario")

// Config describes one flow-station scenario: an inlet stream brought to a
// total state, optional fuel burns and mixed-in streams, then a static
// specifier.
type Config struct {
	Name        string         `yaml:"name" validate:"required"`
	Description string         `yaml:"description,omitempty"`
	Inlet       StreamConfig   `yaml:"inlet"`
	Fuels       []FuelConfig   `yaml:"fuels,omitempty" validate:"dive"`
	Burns       []BurnConfig   `yaml:"burns,omitempty" validate:"dive"`
	Mixes       []StreamConfig `yaml:"mixes,omitempty" validate:"dive"`
	Static      StaticConfig   `yaml:"static"`
	Solver      SolverConfig   `yaml:"solver"`
	Sweep       SweepConfig    `yaml:"sweep"`
	Logging     logging.Config `yaml:"logging"`
	Output      OutputConfig   `yaml:"output"`
}

type StreamConfig struct {
	W     float64     `yaml:"w" validate:"gte=0"`
	WAR   float64     `yaml:"war" validate:"gte=0"`
	Total TotalConfig `yaml:"total"`
}

// TotalConfig picks a total setter by Mode; only the fields of that pair
// are read.
type TotalConfig struct {
	Mode string  `yaml:"mode" validate:"oneof=tp hp sp hs"`
	T    float64 `yaml:"t,omitempty"`
	P    float64 `yaml:"p,omitempty"`
	H    float64 `yaml:"h,omitempty"`
	S    float64 `yaml:"s,omitempty"`
}

type FuelConfig struct {
	Name      string    `yaml:"name" validate:"required"`
	Species   []string  `yaml:"species" validate:"required,min=1,max=6"`
	Fractions []float64 `yaml:"fractions" validate:"required,min=1,max=6,dive,gte=0"`
	Moles     bool      `yaml:"moles,omitempty"`
}

type BurnConfig struct {
	Fuel string  `yaml:"fuel" validate:"required"`
	W    float64 `yaml:"w" validate:"gt=0"`
	H    float64 `yaml:"h"`
}

type StaticConfig struct {
	By     string  `yaml:"by,omitempty" validate:"omitempty,oneof=mach area ps"`
	Value  float64 `yaml:"value,omitempty" validate:"gte=0"`
	Branch string  `yaml:"branch,omitempty" validate:"omitempty,oneof=sub super"`
}

type SolverConfig struct {
	XTol      float64 `yaml:"xtol" validate:"gt=0,lt=1e-3"`
	MaxIter   int     `yaml:"max_iter" validate:"gte=10,lte=10000"`
	MixPolicy string  `yaml:"mix_policy" validate:"oneof=equal_pressure keep_pressure"`
}

// SweepConfig drives the parallel area–Mach sweep.
type SweepConfig struct {
	MachFrom float64 `yaml:"mach_from" validate:"gte=0"`
	MachTo   float64 `yaml:"mach_to" validate:"gtfield=MachFrom"`
	Points   int     `yaml:"points" validate:"gte=2,lte=10000"`
	Workers  int     `yaml:"workers" validate:"gte=1,lte=256"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(totalLevel, TotalConfig{})
	v.RegisterStructValidation(fuelLevel, FuelConfig{})
	v.RegisterStructValidation(configLevel, Config{})
	return v
}

func positiveFinite(x float64) bool { return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x) }

func totalLevel(sl validator.StructLevel) {
	tc := sl.Current().Interface().(TotalConfig)
	switch tc.Mode {
	case "tp":
		if !positiveFinite(tc.T) {
			sl.ReportError(tc.T, "T", "t", "positive", "")
		}
		fallthrough
	case "hp", "sp":
		if !positiveFinite(tc.P) {
			sl.ReportError(tc.P, "P", "p", "positive", "")
		}
	}
}

func fuelLevel(sl validator.StructLevel) {
	fc := sl.Current().Interface().(FuelConfig)
	if len(fc.Species) != len(fc.Fractions) {
		sl.ReportError(fc.Fractions, "Fractions", "fractions", "eqlen", "")
		return
	}
	sum := 0.0
	for _, f := range fc.Fractions {
		sum += f
	}
	if math.Abs(sum-1) > 1e-4 {
		sl.ReportError(fc.Fractions, "Fractions", "fractions", "sumone", "")
	}
}

func configLevel(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	names := make(map[string]bool, len(c.Fuels))
	for _, f := range c.Fuels {
		if names[f.Name] {
			sl.ReportError(c.Fuels, "Fuels", "fuels", "unique", f.Name)
		}
		names[f.Name] = true
	}
	if c.Static.By != "" && c.Static.By != "mach" && c.Static.Value <= 0 {
		sl.ReportError(c.Static.Value, "Value", "value", "gt", "0")
	}
}

// Validate checks the struct tags and the cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Name: "default",
		Inlet: StreamConfig{
			W:     DefaultW,
			Total: TotalConfig{Mode: "tp", T: DefaultTt, P: DefaultPt},
		},
		Solver: SolverConfig{
			XTol:      DefaultXTol,
			MaxIter:   DefaultMaxIter,
			MixPolicy: "equal_pressure",
		},
		Sweep: SweepConfig{
			MachFrom: 0.05,
			MachTo:   2.5,
			Points:   DefaultPoints,
			Workers:  DefaultWorkers,
		},
		Logging: logging.Config{Level: "info"},
		Output:  OutputConfig{Dir: DefaultOutDir},
	}
}

// Load reads a YAML scenario over DefaultConfig and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone deep-copies c so presets can be edited safely.
func (c *Config) Clone() *Config {
	out := *c
	if c.Fuels != nil {
		out.Fuels = make([]FuelConfig, len(c.Fuels))
		for i, f := range c.Fuels {
			f.Species = slices.Clone(f.Species)
			f.Fractions = slices.Clone(f.Fractions)
			out.Fuels[i] = f
		}
	}
	out.Burns = slices.Clone(c.Burns)
	out.Mixes = slices.Clone(c.Mixes)
	return &out
}
