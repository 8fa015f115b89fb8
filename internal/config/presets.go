package config

import (
	"maps"
	"slices"
)

var jetA = FuelConfig{Name: "jet-a", Species: []string{"Jet-A(g)"}, Fractions: []float64{1}}

var cxhy = FuelConfig{Name: "cxhy", Species: []string{"C", "H"}, Fractions: []float64{0.862, 0.138}}

var methane = FuelConfig{Name: "methane", Species: []string{"CH4"}, Fractions: []float64{1}, Moles: true}

func preset(name string, mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	cfg.Name = name
	mutate(cfg)
	return cfg
}

var Presets = map[string]map[string]*Config{
	"inlet": {
		"ambient": preset("inlet/ambient", func(c *Config) {
			c.Description = "dry air at 518 R and 15 psia"
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 518, P: 15}
			c.Static = StaticConfig{By: "mach", Value: 0.5}
		}),
		"humid": preset("inlet/humid", func(c *Config) {
			c.Description = "humid air, WAR 0.02"
			c.Inlet.W = 10
			c.Inlet.WAR = 0.02
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 1000, P: 15}
		}),
	},
	"combustor": {
		"burn": preset("combustor/burn", func(c *Config) {
			c.Description = "CxHy burner at 400 psia"
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 1100, P: 400}
			c.Fuels = []FuelConfig{cxhy}
			c.Burns = []BurnConfig{{Fuel: "cxhy", W: 2.5, H: -642}}
		}),
		"bleed": preset("combustor/bleed", func(c *Config) {
			c.Description = "burner exit mixed with a humid 15 psia stream"
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 1100, P: 400}
			c.Fuels = []FuelConfig{cxhy}
			c.Burns = []BurnConfig{{Fuel: "cxhy", W: 2.5, H: -642}}
			c.Mixes = []StreamConfig{{W: 10, WAR: 0.02, Total: TotalConfig{Mode: "tp", T: 1000, P: 15}}}
			c.Solver.MixPolicy = "keep_pressure"
		}),
		"jet-a": preset("combustor/jet-a", func(c *Config) {
			c.Description = "Jet-A burner"
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 1300, P: 450}
			c.Fuels = []FuelConfig{jetA}
			c.Burns = []BurnConfig{{Fuel: "jet-a", W: 2.2, H: -700}}
		}),
		"methane": preset("combustor/methane", func(c *Config) {
			c.Description = "natural gas burner"
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 1200, P: 300}
			c.Fuels = []FuelConfig{methane}
			c.Burns = []BurnConfig{{Fuel: "methane", W: 2.0, H: -2000}}
		}),
	},
	"nozzle": {
		"subsonic": preset("nozzle/subsonic", func(c *Config) {
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 1100, P: 400}
			c.Static = StaticConfig{By: "area", Value: 32, Branch: "sub"}
		}),
		"supersonic": preset("nozzle/supersonic", func(c *Config) {
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 1100, P: 400}
			c.Static = StaticConfig{By: "area", Value: 32, Branch: "super"}
		}),
		"exit-pressure": preset("nozzle/exit-pressure", func(c *Config) {
			c.Inlet.Total = TotalConfig{Mode: "tp", T: 1100, P: 400}
			c.Static = StaticConfig{By: "ps", Value: 376.219}
		}),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(category, name string) *Config {
	group, ok := Presets[category]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(category string) []string {
	group, ok := Presets[category]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(group))
}

func Categories() []string {
	return slices.Sorted(maps.Keys(Presets))
}
