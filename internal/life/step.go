package life

import "fmt"

// Rule applies Conway's B3/S23 transition to a single cell with n live
// neighbors.
func Rule(alive bool, n int) bool {
	return n == 3 || (alive && n == 2)
}

// Step computes the next generation of g. The input is never modified; the
// result is a freshly allocated grid of the same dimensions.
func Step(g *Grid) (*Grid, error) {
	if err := g.validate(); err != nil {
		if g == nil {
			return nil, fmt.Errorf("%w: nil grid", err)
		}
		return nil, fmt.Errorf("%w: %dx%d", err, g.rows, g.cols)
	}

	counts := g.NeighborCounts()
	next := &Grid{rows: g.rows, cols: g.cols, cells: make([]bool, len(g.cells))}
	for idx, alive := range g.cells {
		next.cells[idx] = Rule(alive, int(counts[idx]))
	}
	return next, nil
}
