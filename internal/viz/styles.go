package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#3a5a40")).
		Padding(1, 3)

	Title = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color("#a3e635"))

	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6b5e"))

	StatusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#facc15"))
	StatusStable  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f87171"))

	MetricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Width(16)
	MetricValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0")).Bold(true)

	KeyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6b5e")).Italic(true)

	// heat levels, coolest first
	levels = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#facc15")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")),
	}
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// level picks the color for a value normalized to [0,1].
func level(norm, mid, high float64) lipgloss.Style {
	switch {
	case norm > high:
		return levels[2]
	case norm > mid:
		return levels[1]
	default:
		return levels[0]
	}
}

// ProgressBar renders a bar filled to frac (clamped to [0,1]).
func ProgressBar(frac float64, width int) string {
	frac = math.Max(0, math.Min(1, frac))
	filled := min(int(frac*float64(width)), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return level(frac, 0.4, 0.8).Render(bar)
}

// Sparkline renders values as a row of block characters, sampled down to
// width. NaN values render as a space.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !math.IsNaN(v) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	span := hi - lo
	if span == 0 || math.IsInf(span, 0) {
		span = 1
	}

	stride := max(len(values)/width, 1)
	top := len(sparkRunes) - 1

	var b strings.Builder
	for i := 0; i < width && i*stride < len(values); i++ {
		v := values[i*stride]
		if math.IsNaN(v) {
			b.WriteByte(' ')
			continue
		}
		norm := (v - lo) / span
		r := sparkRunes[min(max(int(norm*float64(top)), 0), top)]
		b.WriteString(level(norm, 0.3, 0.7).Render(string(r)))
	}
	return b.String()
}

// Separator draws a thin rule with a centered marker.
func Separator(width int) string {
	half := max((width-3)/2, 0)
	return Subtle.Render(strings.Repeat("─", half) + " ▪ " + strings.Repeat("─", max(width-3-half, 0)))
}
