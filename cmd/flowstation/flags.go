package main

import (
	"github.com/spf13/cobra"

	"github.com/san-kum/flowstation/internal/config"
)

// streamFlags binds one stream's composition and total state to flags.
// Only flags the user set are applied over the scenario.
type streamFlags struct {
	w, war     float64
	mode       string
	t, p, h, s float64
}

func (f *streamFlags) register(cmd *cobra.Command, prefix string) {
	fl := cmd.Flags()
	fl.Float64Var(&f.w, prefix+"w", config.DefaultW, "mass flow [lbm/s]")
	fl.Float64Var(&f.war, prefix+"war", 0, "water-to-air mass ratio")
	fl.StringVar(&f.mode, prefix+"mode", "tp", "total state pair (tp, hp, sp, hs)")
	fl.Float64Var(&f.t, prefix+"tt", config.DefaultTt, "total temperature [°R]")
	fl.Float64Var(&f.p, prefix+"pt", config.DefaultPt, "total pressure [psia]")
	fl.Float64Var(&f.h, prefix+"ht", 0, "total enthalpy [BTU/lbm]")
	fl.Float64Var(&f.s, prefix+"st", 0, "entropy [BTU/(lbm·°R)]")
}

func (f *streamFlags) changed(cmd *cobra.Command, prefix string) bool {
	for _, name := range []string{"w", "war", "mode", "tt", "pt", "ht", "st"} {
		if cmd.Flags().Changed(prefix + name) {
			return true
		}
	}
	return false
}

// apply overrides sc with the flags that were set. Without --mode the pair
// is inferred from which of ht and st were given.
func (f *streamFlags) apply(cmd *cobra.Command, prefix string, sc *config.StreamConfig) {
	set := func(name string) bool { return cmd.Flags().Changed(prefix + name) }

	if set("w") {
		sc.W = f.w
	}
	if set("war") {
		sc.WAR = f.war
	}
	if set("tt") {
		sc.Total.T = f.t
	}
	if set("pt") {
		sc.Total.P = f.p
	}
	if set("ht") {
		sc.Total.H = f.h
	}
	if set("st") {
		sc.Total.S = f.s
	}

	switch {
	case set("mode"):
		sc.Total.Mode = f.mode
	case set("ht") && set("st"):
		sc.Total.Mode = "hs"
	case set("ht"):
		sc.Total.Mode = "hp"
	case set("st"):
		sc.Total.Mode = "sp"
	case set("tt"):
		sc.Total.Mode = "tp"
	}
	if sc.Total.Mode == "tp" && sc.Total.P == 0 {
		sc.Total.P = f.p
	}
}

type staticFlags struct {
	by     string
	value  float64
	branch string
}

func (f *staticFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.by, "by", "mach", "static specifier (mach, area, ps)")
	fl.Float64Var(&f.value, "value", 0.3, "specifier value (Mach, in², psia)")
	fl.StringVar(&f.branch, "branch", "sub", "area branch (sub, super)")
}

// apply sets the static specifier unless the scenario has one and no
// static flag was given.
func (f *staticFlags) apply(cmd *cobra.Command, sc *config.StaticConfig) {
	fl := cmd.Flags()
	if sc.By != "" && !fl.Changed("by") && !fl.Changed("value") && !fl.Changed("branch") {
		return
	}
	*sc = config.StaticConfig{By: f.by, Value: f.value}
	if f.by == "area" {
		sc.Branch = f.branch
	}
}
