// Package analysis reduces a Game of Life trajectory into descriptive
// statistics.
//
// Per-frame metrics are computed independently for every generation:
//
//   - [CenterOfMass]: mean (row, col) of live cells, NaN when empty
//   - [Entropy]: Shannon entropy of the neighbor-count histogram
//   - [Activity]: cells that changed since the previous generation
//
// Post-hoc metrics need the whole trajectory:
//
//   - [DetectPeriod]: distance to the most recent exact repeat of the last frame
//   - [Displacement]: center-of-mass drift between first and last frame
//   - [Classify]: behavior label derived from the above
//
// # Example
//
//	traj, _ := life.NewRunner().Run(ctx, seed, 150)
//	rep, err := analysis.Analyze(ctx, traj)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rep.Behavior)
//
// [Analyze] computes per-frame metrics in parallel across frames once the
// trajectory is fully materialized.
package analysis
