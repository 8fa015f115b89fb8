package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/flowstation/internal/flow"
	"github.com/san-kum/flowstation/internal/sweep"
)

type specMode int

const (
	modeMach specMode = iota
	modeArea
	modePs
)

func (m specMode) String() string {
	switch m {
	case modeArea:
		return "area"
	case modePs:
		return "ps"
	}
	return "mach"
}

const (
	machStep  = 0.05
	machScale = 3.0
)

// Explorer is a Bubble Tea model that re-solves the static state of a
// working copy of a station as the user adjusts the specifier. The station
// it was built from is never modified.
type Explorer struct {
	st     *flow.Station
	snap   flow.Snapshot
	throat flow.Static
	curve  string

	mode   specMode
	mach   float64
	area   float64
	ps     float64
	branch flow.Branch
	err    error

	theme  int
	styles Styles
	width  int
}

// NewExplorer starts at Mach 0.3. points, when non-empty, is drawn as the
// area–Mach curve below the panels.
func NewExplorer(base *flow.Station, points []sweep.Point) (Explorer, error) {
	if !base.HasTotal() {
		return Explorer{}, flow.ErrTotalUnset
	}
	throat, err := base.Throat()
	if err != nil {
		return Explorer{}, err
	}

	m := Explorer{
		st:     base.Clone(),
		throat: throat,
		mach:   0.3,
		area:   2 * throat.Area,
		ps:     0.9 * base.Pt(),
		styles: NewStyles(Themes[0]),
		width:  100,
	}
	if len(points) > 0 {
		if c, err := AreaMachCurve(points, 60, 10); err == nil {
			m.curve = c
		}
	}
	m.solve()
	return m, nil
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.step(1)
	case "down", "j":
		m.step(-1)
	case "m", "tab":
		m.mode = (m.mode + 1) % 3
	case "b":
		if m.branch == flow.Subsonic {
			m.branch = flow.Supersonic
		} else {
			m.branch = flow.Subsonic
		}
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = NewStyles(Themes[m.theme])
		return m, nil
	default:
		return m, nil
	}
	m.solve()
	return m, nil
}

// step moves the current specifier by dir increments, keeping it inside
// the range where a solution can exist.
func (m *Explorer) step(dir float64) {
	switch m.mode {
	case modeMach:
		m.mach = max(0, m.mach+dir*machStep)
	case modeArea:
		m.area = max(m.throat.Area, m.area+dir*0.05*m.throat.Area)
	case modePs:
		pt := m.st.Pt()
		m.ps = min(pt, max(0.01*pt, m.ps+dir*0.01*pt))
	}
}

func (m *Explorer) solve() {
	switch m.mode {
	case modeMach:
		_, m.err = m.st.SetStaticByMach(m.mach)
	case modeArea:
		_, m.err = m.st.SetStaticByArea(m.area, m.branch)
	case modePs:
		_, m.err = m.st.SetStaticByPs(m.ps)
	}
	m.snap = m.st.Snapshot()
}

// Static returns the static state currently shown.
func (m Explorer) Static() (flow.Static, error) {
	if m.err != nil {
		return flow.Static{}, m.err
	}
	return m.st.Static()
}

func (m Explorer) value() float64 {
	switch m.mode {
	case modeArea:
		return m.area
	case modePs:
		return m.ps
	}
	return m.mach
}

func (m Explorer) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n  " + GradientText("FLOW STATION", s.Theme.Primary, s.Theme.Secondary))
	b.WriteString("  " + s.Muted.Render(fmt.Sprintf("theme %s", s.Theme.Name)) + "\n\n")
	b.WriteString(StationView(m.snap, s) + "\n")

	status := fmt.Sprintf("  %s %s", s.Label.Render("by"), s.Value.Render(fmt.Sprintf("%s = %.4f", m.mode, m.value())))
	if m.mode == modeArea {
		status += "  " + s.Label.Render("branch") + " " + s.Value.Render(m.branch.String())
	}
	if m.snap.Static != nil {
		status += "  " + MachGauge(m.snap.Static.Mach, machScale, 24, s)
	}
	b.WriteString(status + "\n")
	if m.err != nil {
		b.WriteString("  " + s.Error.Render(m.err.Error()) + "\n")
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", s.Label.Render("throat area"), s.Value.Render(formatValue(m.throat.Area))))

	if m.curve != "" {
		b.WriteString("\n" + lipgloss.NewStyle().PaddingLeft(2).Render(m.curve) + "\n")
	}

	b.WriteString("\n  " + Separator(min(m.width, 80)-4, s) + "\n  ")
	for i, k := range [][2]string{{"j/k", "adjust"}, {"m", "specifier"}, {"b", "branch"}, {"t", "theme"}, {"q", "quit"}} {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Key.Render(k[0]) + " " + s.Muted.Render(k[1]))
	}
	b.WriteString("\n")
	return b.String()
}

// WithTheme switches to the named theme; unknown names keep the current one.
func (m Explorer) WithTheme(name string) Explorer {
	for i, t := range Themes {
		if t.Name == name {
			m.theme, m.styles = i, NewStyles(t)
		}
	}
	return m
}

// RunExplorer opens the explorer on the alternate screen and blocks until
// the user quits.
func RunExplorer(base *flow.Station, points []sweep.Point, theme string) error {
	m, err := NewExplorer(base, points)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m.WithTheme(theme), tea.WithAltScreen()).Run()
	return err
}
