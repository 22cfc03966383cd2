package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/life"
)

// ReportCard renders the summary block printed after a run.
func ReportCard(name string, rep *analysis.Report) string {
	var s strings.Builder
	s.WriteString(Title.Render(strings.ToUpper(name)) + "\n\n")

	row := func(label, value string) {
		s.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	row("Grid", fmt.Sprintf("%dx%d", rep.Rows, rep.Cols))
	row("Generations", fmt.Sprintf("%d", rep.Frames-1))
	row("Behavior", rep.Behavior.String())
	if rep.HasPeriod() {
		row("Period", fmt.Sprintf("%d", rep.Period))
	} else {
		row("Period", "none")
	}
	row("Displacement", fmt.Sprintf("%.3f", rep.Displacement))
	row("Population", fmt.Sprintf("%d -> %d", rep.StartPopulation, rep.EndPopulation))
	row("Peak occupancy", fmt.Sprintf("%.2f%%", rep.PeakOccupancy*100))
	row("Peak entropy", fmt.Sprintf("%.3f bits", rep.PeakEntropy))
	row("Mean activity", fmt.Sprintf("%.2f", rep.MeanActivity))

	s.WriteString(Separator(56) + "\n")
	s.WriteString(MetricLabel.Render("Population") + Sparkline(rep.PopulationSeries(), 40) + "\n")
	s.WriteString(MetricLabel.Render("Entropy") + Sparkline(rep.Entropy, 40))

	return Panel.Render(s.String())
}

// SeriesChart plots values with asciigraph. NaN entries are dropped.
func SeriesChart(values []float64, caption string, width, height int) string {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return Subtle.Render("(no data: " + caption + ")")
	}
	return asciigraph.Plot(clean,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption))
}

// Charts returns the standard asciigraph panels for a report.
func Charts(rep *analysis.Report, width, height int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		SeriesChart(rep.PopulationSeries(), "population", width, height),
		"",
		SeriesChart(rep.Entropy, "entropy (bits)", width, height),
		"",
		SeriesChart(rep.ActivitySeries(), "activity", width, height),
	)
}

// RenderGrid draws g one character per cell, live cells in the theme's
// alive color.
func RenderGrid(g *life.Grid, t Theme) string {
	alive := lipgloss.NewStyle().Foreground(t.Alive).Render("█")
	dead := lipgloss.NewStyle().Foreground(t.Dead).Render("·")

	var b strings.Builder
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if g.Alive(i, j) {
				b.WriteString(alive)
			} else {
				b.WriteString(dead)
			}
		}
		if i < g.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderBraille draws g packed into braille characters.
func RenderBraille(g *life.Grid, t Theme) string {
	c := CanvasFor(g)
	c.Draw(g)
	return lipgloss.NewStyle().Foreground(t.Alive).Render(strings.TrimRight(c.String(), "\n"))
}
