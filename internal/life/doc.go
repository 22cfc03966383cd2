// Package life implements Conway's Game of Life on a fixed-size toroidal grid.
//
// The package provides the evolution engine:
//
//   - [Grid]: rows × cols boolean field whose edges wrap around
//   - [Step]: one generation transition, a pure function of its input
//   - [Runner]: drives N steps and materializes every generation
//   - [Trajectory]: the ordered, immutable sequence of snapshots
//
// # Example
//
//	g, _ := life.New(50, 50)
//	g.Stamp(blinker, 25, 25)
//	traj, _ := life.NewRunner().Run(ctx, g, 100)
//	last := traj.Last()
//
// # Small grids
//
// Neighbor indices are taken modulo the grid dimensions. On grids with one or
// two rows (or columns) several of the eight offsets land on the same physical
// cell, the cell itself included on 1-wide axes. Every offset is counted, so a
// single live cell on a 1×1 grid sees eight live neighbors.
//
// # Thread Safety
//
// Grids are not synchronized. Frames stored in a [Trajectory] are never
// written after the run returns and may be read concurrently.
package life
