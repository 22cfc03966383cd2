package analysis

import (
	"math"

	"github.com/san-kum/lifesim/internal/life"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// neighborBins is the number of possible neighbor counts, 0 through 8.
const neighborBins = 9

// Occupancy returns the fraction of live cells.
func Occupancy(g *life.Grid) float64 {
	return float64(g.Population()) / float64(g.Size())
}

// CenterOfMass returns the mean row and column index of live cells, or
// (NaN, NaN) for an empty grid.
func CenterOfMass(g *life.Grid) (row, col float64) {
	rows := make([]float64, 0, g.Population())
	cols := make([]float64, 0, cap(rows))
	g.Each(func(i, j int, alive bool) {
		if alive {
			rows = append(rows, float64(i))
			cols = append(cols, float64(j))
		}
	})
	if len(rows) == 0 {
		return math.NaN(), math.NaN()
	}
	return stat.Mean(rows, nil), stat.Mean(cols, nil)
}

// NeighborHistogram returns how many cells have 0..8 live toroidal
// neighbors.
func NeighborHistogram(g *life.Grid) []float64 {
	hist := make([]float64, neighborBins)
	for _, n := range g.NeighborCounts() {
		hist[n]++
	}
	return hist
}

// Entropy returns the base-2 Shannon entropy of the neighbor-count
// distribution over every cell. Empty grids have entropy 0. The result lies
// in [0, log2(9)].
func Entropy(g *life.Grid) float64 {
	if g.Population() == 0 {
		return 0
	}
	p := NeighborHistogram(g)
	floats.Scale(1/floats.Sum(p), p)
	// stat.Entropy skips zero-probability bins and uses the natural log
	h := stat.Entropy(p) / math.Ln2
	if h <= 0 {
		return 0
	}
	return h
}

// Activity returns the number of cells that differ between prev and cur.
// A nil prev marks the first frame, which has no activity.
func Activity(prev, cur *life.Grid) (int, error) {
	if prev == nil {
		return 0, nil
	}
	return cur.Changed(prev)
}

// Displacement returns the Euclidean distance between two centers of mass,
// or 0 when either is undefined.
func Displacement(row0, col0, row1, col1 float64) float64 {
	if math.IsNaN(row0) || math.IsNaN(col0) || math.IsNaN(row1) || math.IsNaN(col1) {
		return 0
	}
	return math.Hypot(row1-row0, col1-col0)
}

// Heatmap counts, per cell, how many frames had that cell alive.
type Heatmap struct {
	Rows, Cols int
	Counts     []int
}

func NewHeatmap(rows, cols int) *Heatmap {
	return &Heatmap{Rows: rows, Cols: cols, Counts: make([]int, rows*cols)}
}

// Add accumulates one frame. Frames of a different shape are ignored.
func (h *Heatmap) Add(g *life.Grid) {
	if g.Rows() != h.Rows || g.Cols() != h.Cols {
		return
	}
	g.Each(func(i, j int, alive bool) {
		if alive {
			h.Counts[i*h.Cols+j]++
		}
	})
}

// At returns the count for cell (i, j).
func (h *Heatmap) At(i, j int) int { return h.Counts[i*h.Cols+j] }

// Max returns the largest count.
func (h *Heatmap) Max() int {
	m := 0
	for _, c := range h.Counts {
		if c > m {
			m = c
		}
	}
	return m
}
