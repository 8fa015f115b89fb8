package viz

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/flowstation/internal/flow"
)

const panelWidth = 32

type field struct {
	label, unit string
	value       float64
}

func (s Styles) rows(fields []field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		v := "-"
		switch {
		case math.IsInf(f.value, 1):
			v = "∞"
		case !math.IsNaN(f.value):
			v = formatValue(f.value)
		}
		fmt.Fprintf(&b, "%s %s %s",
			s.Label.Render(fmt.Sprintf("%-5s", f.label)),
			s.Value.Render(fmt.Sprintf("%12s", v)),
			s.Unit.Render(f.unit))
	}
	return b.String()
}

func formatValue(v float64) string {
	if v != 0 && (math.Abs(v) < 1e-3 || math.Abs(v) >= 1e6) {
		return fmt.Sprintf("%.5e", v)
	}
	return fmt.Sprintf("%.5f", v)
}

func (s Styles) panel(title, body string) string {
	return s.Panel.Width(panelWidth).Render(s.Title.Render(title) + "\n" + body)
}

// TotalPanel renders the total state, or a placeholder when none is set.
func TotalPanel(snap flow.Snapshot, s Styles) string {
	if snap.Total == nil {
		return s.panel("TOTAL", s.Muted.Render("not set"))
	}
	t := snap.Total
	return s.panel("TOTAL", s.rows([]field{
		{"W", "lbm/s", snap.W},
		{"Tt", "°R", t.Tt},
		{"Pt", "psia", t.Pt},
		{"ht", "BTU/lbm", t.Ht},
		{"st", "BTU/lbm·R", t.St},
		{"rhot", "lbm/ft³", t.Rhot},
		{"gamt", "", t.Gamt},
	}))
}

// StaticPanel renders the static state, the reason it failed, or a
// placeholder when no specifier is stored.
func StaticPanel(snap flow.Snapshot, s Styles) string {
	switch {
	case snap.StaticError != "":
		return s.panel("STATIC", s.Error.Render(snap.StaticError))
	case snap.Static == nil:
		return s.panel("STATIC", s.Muted.Render("not set"))
	}
	st := snap.Static
	title := fmt.Sprintf("STATIC  by %s", st.Spec)
	if st.Spec == flow.SpecArea {
		title += " (" + st.Branch.String() + ")"
	}
	return s.panel(title, s.rows([]field{
		{"Mach", "", st.Mach},
		{"Ts", "°R", st.Ts},
		{"Ps", "psia", st.Ps},
		{"hs", "BTU/lbm", st.Hs},
		{"rhos", "lbm/ft³", st.Rhos},
		{"gams", "", st.Gams},
		{"V", "ft/s", st.Vflow},
		{"area", "in²", st.Area},
	}))
}

// CompositionPanel lists the species by descending mass fraction, at most
// limit of them.
func CompositionPanel(snap flow.Snapshot, s Styles, limit int) string {
	names := slices.SortedFunc(maps.Keys(snap.MassFracs), func(a, b string) int {
		if c := cmp.Compare(snap.MassFracs[b], snap.MassFracs[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	fields := []field{
		{"WAR", "", snap.WAR},
		{"FAR", "", snap.FAR},
		{"MW", "lbm/lbmol", snap.MolarMass},
	}
	for _, n := range names {
		fields = append(fields, field{n, "", snap.MassFracs[n]})
	}
	return s.panel("COMPOSITION", s.rows(fields))
}

// StationView lays the three panels out side by side.
func StationView(snap flow.Snapshot, s Styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		TotalPanel(snap, s),
		StaticPanel(snap, s),
		CompositionPanel(snap, s, 6),
	)
}
