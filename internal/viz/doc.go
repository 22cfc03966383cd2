// Package viz renders Life grids and analysis reports in the terminal.
//
// The package provides:
//
//   - [ReportCard] and [Charts]: lipgloss summary and asciigraph series
//   - [Canvas]: braille canvas packing 2x4 cells per character
//   - [Model]: the Bubble Tea live viewer behind `lifesim watch`
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	R     - Reset to the starting grid
//	X     - Reseed with a random grid
//	+/-   - Faster/slower
//	T     - Cycle color themes
//	B     - Toggle braille rendering
//	Q     - Quit
package viz
