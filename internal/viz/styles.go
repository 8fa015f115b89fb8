package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme
	Panel lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Unit  lipgloss.Style
	Muted lipgloss.Style
	Key   lipgloss.Style
	Good  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Muted),
		Value: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Unit:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Muted: lipgloss.NewStyle().Foreground(t.Muted),
		Key:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Good:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Warn:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Error: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}

// GradientText colors each rune of text on a linear blend between two hex
// colors.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(start))
	er, eg, eb := parseHex(string(end))

	var b strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := sr + int(t*float64(er-sr))
		g := sg + int(t*float64(eg-sg))
		bl := sb + int(t*float64(eb-sb))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, bl)))
		b.WriteString(style.Render(string(c)))
	}
	return b.String()
}

// MachGauge draws m against a full scale: green while subsonic, amber
// past Mach 1.
func MachGauge(m, scale float64, width int, s Styles) string {
	frac := 0.0
	if scale > 0 {
		frac = m / scale
	}
	filled := int(frac * float64(width))
	filled = min(max0(filled), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if m > 1 {
		return s.Warn.Render(bar)
	}
	return s.Good.Render(bar)
}

func Separator(width int, s Styles) string {
	mid := width / 2
	left := strings.Repeat("─", max0(mid-3))
	right := strings.Repeat("─", max0(width-mid-3))
	return s.Muted.Render(left + " ◆ " + right)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func hexColor(r, g, b int) string {
	clamp := func(v int) int { return min(max(v, 0), 255) }
	return "#" + hexByte(clamp(r)) + hexByte(clamp(g)) + hexByte(clamp(b))
}

func hexByte(v int) string {
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
