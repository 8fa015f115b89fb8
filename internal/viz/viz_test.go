package viz

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/flowstation/internal/flow"
	"github.com/san-kum/flowstation/internal/sweep"
)

func nozzle(t *testing.T) *flow.Station {
	t.Helper()
	st := flow.New()
	require.NoError(t, st.SetW(100))
	require.NoError(t, st.SetTotalTP(1100, 400))
	return st
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Explorer, keys ...string) Explorer {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Explorer)
	}
	return m
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "retro", GetTheme("retro").Name)
	assert.Equal(t, Themes[0].Name, GetTheme("no-such-theme").Name)
	assert.Len(t, ThemeNames(), len(Themes))
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#ff8000")
	assert.Equal(t, [3]int{255, 128, 0}, [3]int{r, g, b})

	r, g, b = parseHex("bogus")
	assert.Equal(t, [3]int{255, 255, 255}, [3]int{r, g, b})

	assert.Equal(t, "#00ff10", hexColor(-4, 300, 16))
}

func TestStationView(t *testing.T) {
	st := nozzle(t)
	_, err := st.SetStaticByMach(0.3)
	require.NoError(t, err)

	out := StationView(st.Snapshot(), NewStyles(ThemeMinimal))
	for _, want := range []string{"TOTAL", "STATIC", "COMPOSITION", "1100.00000", "400.00000", "N2", "by mach"} {
		assert.Contains(t, out, want)
	}
}

func TestStationView_Unset(t *testing.T) {
	out := StationView(flow.New().Snapshot(), NewStyles(ThemeMinimal))
	assert.Equal(t, 2, strings.Count(out, "not set"))
}

func TestStaticPanel_Error(t *testing.T) {
	snap := flow.Snapshot{StaticError: "flow: no solution"}
	assert.Contains(t, StaticPanel(snap, NewStyles(ThemeMinimal)), "no solution")
}

func TestAreaMachCurve(t *testing.T) {
	points, err := sweep.New(2).Mach(context.Background(), nozzle(t), sweep.Linspace(0, 2, 21))
	require.NoError(t, err)

	out, err := AreaMachCurve(points, 40, 8)
	require.NoError(t, err)
	assert.Contains(t, out, "area [in²] vs Mach 0.10 → 2.00")

	_, err = AreaMachCurve(points[:2], 40, 8)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestExplorer_RequiresTotal(t *testing.T) {
	_, err := NewExplorer(flow.New(), nil)
	assert.ErrorIs(t, err, flow.ErrTotalUnset)
}

func TestExplorer_AdjustMach(t *testing.T) {
	base := nozzle(t)
	m, err := NewExplorer(base, nil)
	require.NoError(t, err)

	got, err := m.Static()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, got.Mach, 1e-9)

	m = press(t, m, "up", "up", "k")
	got, err = m.Static()
	require.NoError(t, err)
	assert.InDelta(t, 0.45, got.Mach, 1e-9)

	m = press(t, m, "down", "down", "down", "down", "down", "down", "down", "down", "down", "down")
	got, err = m.Static()
	require.NoError(t, err)
	assert.Zero(t, got.Mach)

	_, err = base.Static()
	assert.ErrorIs(t, err, flow.ErrStaticUnset)
}

func TestExplorer_AreaBranches(t *testing.T) {
	m, err := NewExplorer(nozzle(t), nil)
	require.NoError(t, err)

	m = press(t, m, "m")
	sub, err := m.Static()
	require.NoError(t, err)
	assert.Equal(t, flow.SpecArea, sub.Spec)
	assert.Less(t, sub.Mach, 1.0)

	m = press(t, m, "b")
	sup, err := m.Static()
	require.NoError(t, err)
	assert.Greater(t, sup.Mach, 1.0)
	assert.InEpsilon(t, sub.Area, sup.Area, 1e-6)

	// Area cannot shrink below the throat.
	for range 40 {
		m = press(t, m, "down")
	}
	throat, err := m.Static()
	require.NoError(t, err)
	assert.InDelta(t, 1, throat.Mach, 1e-3)
}

func TestExplorer_PressureAndTheme(t *testing.T) {
	m, err := NewExplorer(nozzle(t), nil)
	require.NoError(t, err)

	m = press(t, m, "m", "m")
	got, err := m.Static()
	require.NoError(t, err)
	assert.InEpsilon(t, 360, got.Ps, 1e-9)

	m = press(t, m, "t")
	assert.Equal(t, Themes[1].Name, m.styles.Theme.Name)
	assert.Contains(t, m.View(), "theme "+Themes[1].Name)

	assert.Equal(t, "sunset", m.WithTheme("sunset").styles.Theme.Name)
	assert.Equal(t, Themes[1].Name, m.WithTheme("nope").styles.Theme.Name)

	_, cmd := m.Update(key("q"))
	assert.NotNil(t, cmd)
}
