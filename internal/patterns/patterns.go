// Package patterns holds the static library of named seed patterns and the
// helpers that place them on a grid.
//
// Library entries are built once at init and never modified: every accessor
// and transform works on a copy.
package patterns

import (
	"errors"
	"fmt"

	"github.com/san-kum/lifesim/internal/life"
)

// ErrPatternNotFound indicates an unknown (category, name) pair.
var ErrPatternNotFound = errors.New("patterns: pattern not found")

// Pattern is an immutable named seed.
type Pattern struct {
	category string
	name     string
	cells    [][]bool
}

func (p Pattern) Category() string { return p.category }
func (p Pattern) Name() string     { return p.name }

// Rows returns the pattern height.
func (p Pattern) Rows() int { return len(p.cells) }

// Cols returns the pattern width.
func (p Pattern) Cols() int {
	if len(p.cells) == 0 {
		return 0
	}
	return len(p.cells[0])
}

// Cells returns a copy of the pattern matrix.
func (p Pattern) Cells() [][]bool { return clone(p.cells) }

// Population returns the number of live cells in the pattern.
func (p Pattern) Population() int {
	n := 0
	for _, row := range p.cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// Placement controls how a pattern is transformed before insertion.
// Rotate counts quarter turns anticlockwise and is taken modulo 4; Flip
// mirrors the pattern horizontally and is applied before rotation.
type Placement struct {
	Rotate int
	Flip   bool
}

// Lookup returns the library entry for (category, name).
func Lookup(category, name string) (Pattern, bool) {
	byName, ok := library[category]
	if !ok {
		return Pattern{}, false
	}
	p, ok := byName[name]
	return p, ok
}

// Categories lists the library categories in a stable order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Names lists the patterns of a category in registration order, or nil for
// an unknown category.
func Names(category string) []string {
	names, ok := nameOrder[category]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Transform returns a flipped and rotated copy of cells.
func Transform(cells [][]bool, rotate int, flip bool) [][]bool {
	out := clone(cells)
	if flip {
		out = flipHorizontal(out)
	}
	for k := ((rotate % 4) + 4) % 4; k > 0; k-- {
		out = rotateLeft(out)
	}
	return out
}

// Insert places the named pattern on g with its top-left corner at
// (row, col), wrapping on both axes. An unknown pattern leaves g unchanged
// and returns an error wrapping ErrPatternNotFound.
func Insert(g *life.Grid, category, name string, row, col int, p Placement) error {
	pat, ok := Lookup(category, name)
	if !ok {
		return fmt.Errorf("%w: %q in category %q", ErrPatternNotFound, name, category)
	}
	if g == nil {
		return fmt.Errorf("insert %q: %w", name, life.ErrInvalidDimension)
	}
	g.Stamp(Transform(pat.cells, p.Rotate, p.Flip), row, col)
	return nil
}

func clone(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for i, row := range m {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

func flipHorizontal(m [][]bool) [][]bool {
	for _, row := range m {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return m
}

// rotateLeft turns m a quarter turn anticlockwise.
func rotateLeft(m [][]bool) [][]bool {
	if len(m) == 0 {
		return m
	}
	rows, cols := len(m), len(m[0])
	out := blank(cols, rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			out[i][j] = m[j][cols-1-i]
		}
	}
	return out
}
