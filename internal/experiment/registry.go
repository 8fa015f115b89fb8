package experiment

import (
	"fmt"
	"maps"
	"slices"

	"github.com/san-kum/flowstation/internal/config"
	"github.com/san-kum/flowstation/internal/flow"
)

// Registry holds named fuel definitions a scenario may burn without
// declaring them itself.
type Registry struct {
	fuels map[string]config.FuelConfig
}

func NewRegistry() *Registry {
	r := &Registry{fuels: make(map[string]config.FuelConfig)}

	r.Register(config.FuelConfig{Name: "cxhy", Species: []string{"C", "H"}, Fractions: []float64{0.862, 0.138}})
	r.Register(config.FuelConfig{Name: "jet-a", Species: []string{"Jet-A(g)"}, Fractions: []float64{1}})
	r.Register(config.FuelConfig{Name: "methane", Species: []string{"CH4"}, Fractions: []float64{1}, Moles: true})
	r.Register(config.FuelConfig{Name: "propane", Species: []string{"C3H8"}, Fractions: []float64{1}, Moles: true})
	r.Register(config.FuelConfig{Name: "hydrogen", Species: []string{"H2"}, Fractions: []float64{1}, Moles: true})
	r.Register(config.FuelConfig{Name: "natural-gas", Species: []string{"CH4", "C3H8", "N2"}, Fractions: []float64{0.9, 0.05, 0.05}, Moles: true})

	return r
}

func (r *Registry) Register(f config.FuelConfig) {
	r.fuels[f.Name] = f
}

func (r *Registry) GetFuel(name string) (config.FuelConfig, error) {
	f, ok := r.fuels[name]
	if !ok {
		return config.FuelConfig{}, fmt.Errorf("unknown fuel: %s", name)
	}
	return f, nil
}

func (r *Registry) ListFuels() []string {
	return slices.Sorted(maps.Keys(r.fuels))
}

// AddFuel adds the fuel's reactant to st and returns its index.
func AddFuel(st *flow.Station, f config.FuelConfig) (int, error) {
	if f.Moles {
		return st.AddReactantMoles(f.Species, f.Fractions)
	}
	return st.AddReactant(f.Species, f.Fractions)
}

// ParseMixPolicy maps the config names onto flow.MixPolicy.
func ParseMixPolicy(name string) (flow.MixPolicy, error) {
	for _, p := range []flow.MixPolicy{flow.MixRequireEqualPressure, flow.MixKeepPressure} {
		if p.String() == name {
			return p, nil
		}
	}
	if name == "" {
		return flow.MixRequireEqualPressure, nil
	}
	return 0, fmt.Errorf("unknown mix policy: %s", name)
}
