// Package export writes analysis reports and trajectories to files:
// PNG charts via gonum/plot, SVG snapshots and GIF animations.
package export
