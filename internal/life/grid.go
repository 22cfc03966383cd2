package life

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Grid is a fixed-size boolean field with toroidal topology. Cells are stored
// in row-major order. Dimensions never change after construction.
type Grid struct {
	rows, cols int
	cells      []bool
}

// Number is the set of numeric cell types accepted by [FromValues].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// New returns an all-dead grid with the given dimensions.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(rows, cols int) *Grid {
	g, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// FromBools builds a grid from a rectangular boolean matrix.
func FromBools(m [][]bool) (*Grid, error) {
	rows, cols, err := shape(m)
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for i, row := range m {
		copy(g.cells[i*cols:(i+1)*cols], row)
	}
	return g, nil
}

// FromValues builds a grid from a rectangular numeric matrix. Any nonzero
// value is alive. Values other than 0 and 1 are still accepted but each one
// yields a CoercionWarning.
func FromValues[T Number](m [][]T) (*Grid, []CoercionWarning, error) {
	rows, cols, err := shape(m)
	if err != nil {
		return nil, nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	var warnings []CoercionWarning
	for i, row := range m {
		for j, v := range row {
			if v == 0 {
				continue
			}
			g.cells[i*cols+j] = true
			if v != 1 {
				warnings = append(warnings, CoercionWarning{Row: i, Col: j, Value: float64(v)})
			}
		}
	}
	return g, warnings, nil
}

// Random returns a grid where each cell is alive with the given probability.
// The fill is deterministic for a given seed.
func Random(rows, cols int, seed int64, density float64) (*Grid, error) {
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidArgument, density)
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
	return g, nil
}

func shape[T any](m [][]T) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: empty matrix", ErrInvalidDimension)
	}
	rows, cols = len(m), len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimension, i, len(row), cols)
		}
	}
	return rows, cols, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows*cols.
func (g *Grid) Size() int { return len(g.cells) }

func (g *Grid) validate() error {
	if g == nil || g.rows < 1 || g.cols < 1 || len(g.cells) != g.rows*g.cols {
		return ErrInvalidDimension
	}
	return nil
}

// index maps possibly out-of-range coordinates onto the torus.
func (g *Grid) index(i, j int) int {
	i = (i%g.rows + g.rows) % g.rows
	j = (j%g.cols + g.cols) % g.cols
	return i*g.cols + j
}

// Alive reports whether the cell at (i, j) is alive. Coordinates wrap.
func (g *Grid) Alive(i, j int) bool { return g.cells[g.index(i, j)] }

// Set assigns the cell at (i, j). Coordinates wrap.
func (g *Grid) Set(i, j int, alive bool) { g.cells[g.index(i, j)] = alive }

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(i, j int, alive bool)) {
	for idx, c := range g.cells {
		fn(idx/g.cols, idx%g.cols, c)
	}
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether g and o have the same dimensions and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Changed returns the number of cells whose state differs between g and o.
func (g *Grid) Changed(o *Grid) (int, error) {
	if g.validate() != nil || o.validate() != nil || g.rows != o.rows || g.cols != o.cols {
		return 0, fmt.Errorf("%w: cannot compare grids of different shape", ErrInvalidDimension)
	}
	n := 0
	for i, c := range g.cells {
		if o.cells[i] != c {
			n++
		}
	}
	return n, nil
}

// Stamp sets the live cells of pattern into g with the pattern's top-left
// corner at (row, col). Placement wraps on both axes, so any origin is valid.
// Dead pattern cells leave the grid untouched.
func (g *Grid) Stamp(pattern [][]bool, row, col int) {
	for r, line := range pattern {
		for c, alive := range line {
			if alive {
				g.Set(row+r, col+c, true)
			}
		}
	}
}

// Cells returns a copy of the grid as a boolean matrix.
func (g *Grid) Cells() [][]bool {
	m := make([][]bool, g.rows)
	for i := range m {
		m[i] = make([]bool, g.cols)
		copy(m[i], g.cells[i*g.cols:(i+1)*g.cols])
	}
	return m
}

// Neighbors counts live cells over the eight toroidal neighbor offsets of
// (i, j) using modular indexing.
func (g *Grid) Neighbors(i, j int) int {
	n := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			if g.Alive(i+di, j+dj) {
				n++
			}
		}
	}
	return n
}

// NeighborCounts returns the live-neighbor count of every cell in row-major
// order. The grid is copied into a halo buffer padded by one wrapped row and
// column on each side, which avoids modular arithmetic in the inner loop. The
// result matches Neighbors for every cell.
func (g *Grid) NeighborCounts() []uint8 {
	pr, pc := g.rows+2, g.cols+2
	halo := make([]uint8, pr*pc)
	for h := 0; h < pr; h++ {
		src := ((h-1+g.rows)%g.rows)*g.cols
		for k := 0; k < pc; k++ {
			if g.cells[src+(k-1+g.cols)%g.cols] {
				halo[h*pc+k] = 1
			}
		}
	}

	counts := make([]uint8, len(g.cells))
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			// cell (i,j) sits at (i+1,j+1) in the halo
			top := i*pc + j
			mid := top + pc
			bot := mid + pc
			counts[i*g.cols+j] = halo[top] + halo[top+1] + halo[top+2] +
				halo[mid] + halo[mid+2] +
				halo[bot] + halo[bot+1] + halo[bot+2]
		}
	}
	return counts
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if g.cells[i*g.cols+j] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
