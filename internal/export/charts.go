package export

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/lifesim/internal/analysis"
)

// ErrNoData is returned when a chart would have nothing to draw.
var ErrNoData = errors.New("export: no data to plot")

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 5 * vg.Inch
	heatmapSize = 7 * vg.Inch
)

var (
	populationColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}
	entropyColor    = color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 255}
	activityColor   = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255}
	comColor        = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}
)

// Chart file names written by WriteCharts.
const (
	PopulationChart = "population.png"
	EntropyChart    = "entropy.png"
	ActivityChart   = "activity.png"
	TrajectoryChart = "trajectory.png"
	HeatmapChart    = "heatmap.png"
)

// WriteCharts renders every report chart into dir and returns the paths
// written. name is used in chart titles.
func WriteCharts(dir, name string, rep *analysis.Report) ([]string, error) {
	if rep == nil || rep.Frames == 0 {
		return nil, ErrNoData
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	charts := []struct {
		file   string
		render func(string, *analysis.Report) (*plot.Plot, error)
		w, h   vg.Length
	}{
		{PopulationChart, PopulationPlot, chartWidth, chartHeight},
		{EntropyChart, EntropyPlot, chartWidth, chartHeight},
		{ActivityChart, ActivityPlot, chartWidth, chartHeight},
		{TrajectoryChart, TrajectoryPlot, heatmapSize, heatmapSize},
		{HeatmapChart, HeatmapPlot, heatmapSize, heatmapSize},
	}

	written := make([]string, 0, len(charts))
	for _, c := range charts {
		p, err := c.render(name, rep)
		if errors.Is(err, ErrNoData) {
			continue
		}
		if err != nil {
			return written, fmt.Errorf("%s: %w", c.file, err)
		}
		path := filepath.Join(dir, c.file)
		if err := p.Save(c.w, c.h, path); err != nil {
			return written, fmt.Errorf("save %s: %w", c.file, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func seriesPlot(title, ylabel string, ys []float64, c color.Color) (*plot.Plot, error) {
	if len(ys) == 0 {
		return nil, ErrNoData
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = ylabel

	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i] = plotter.XY{X: float64(i), Y: y}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	p.Add(line, plotter.NewGrid())
	return p, nil
}

func PopulationPlot(name string, rep *analysis.Report) (*plot.Plot, error) {
	return seriesPlot(name+" - Population", "Live cells", rep.PopulationSeries(), populationColor)
}

func EntropyPlot(name string, rep *analysis.Report) (*plot.Plot, error) {
	return seriesPlot(name+" - Neighbor Entropy", "Entropy (bits)", rep.Entropy, entropyColor)
}

func ActivityPlot(name string, rep *analysis.Report) (*plot.Plot, error) {
	return seriesPlot(name+" - Activity", "Changed cells", rep.ActivitySeries(), activityColor)
}

// TrajectoryPlot draws the center of mass path in grid coordinates with
// row 0 at the top. Generations with no live cells are skipped.
func TrajectoryPlot(name string, rep *analysis.Report) (*plot.Plot, error) {
	pts := make(plotter.XYs, 0, rep.Frames)
	for k := 0; k < rep.Frames; k++ {
		r, c := rep.CenterRow[k], rep.CenterCol[k]
		if math.IsNaN(r) || math.IsNaN(c) {
			continue
		}
		pts = append(pts, plotter.XY{X: c, Y: r})
	}
	if len(pts) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = name + " - Center of Mass"
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"
	p.X.Min, p.X.Max = 0, float64(rep.Cols)
	p.Y.Min, p.Y.Max = 0, float64(rep.Rows)
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = comColor
	line.Width = vg.Points(1)

	start, err := plotter.NewScatter(pts[:1])
	if err != nil {
		return nil, err
	}
	start.Color = comColor
	start.Radius = vg.Points(3)

	p.Add(plotter.NewGrid(), line, start)
	p.Legend.Add("path", line)
	p.Legend.Add("start", start)
	p.Legend.Top = true
	return p, nil
}

// heatGrid adapts analysis.Heatmap to plotter.GridXYZ.
type heatGrid struct {
	h *analysis.Heatmap
}

func (g heatGrid) Dims() (c, r int) { return g.h.Cols, g.h.Rows }
func (g heatGrid) Z(c, r int) float64 { return float64(g.h.At(r, c)) }
func (g heatGrid) X(c int) float64 { return float64(c) }
func (g heatGrid) Y(r int) float64 { return float64(r) }

func HeatmapPlot(name string, rep *analysis.Report) (*plot.Plot, error) {
	h := rep.Heatmap
	if h == nil || h.Rows == 0 || h.Cols == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - Occupancy Heatmap (max %d)", name, h.Max())
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}

	hm := plotter.NewHeatMap(heatGrid{h}, palette.Heat(12, 1))
	hm.Min = 0
	hm.Max = math.Max(1, float64(h.Max()))
	p.Add(hm)
	return p, nil
}
