package analysis

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/san-kum/lifesim/internal/life"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyTrajectory indicates analysis of a trajectory with no frames.
var ErrEmptyTrajectory = errors.New("analysis: empty trajectory")

// Report holds the per-frame series and post-hoc metrics of a trajectory.
// Series are indexed by generation.
type Report struct {
	Rows, Cols int
	Frames     int

	Population []int
	Occupancy  []float64
	CenterRow  []float64
	CenterCol  []float64
	Entropy    []float64
	Activity   []int

	Heatmap *Heatmap

	Period          int
	Displacement    float64
	Behavior        Behavior
	StartPopulation int
	EndPopulation   int

	PeakOccupancy float64
	PeakEntropy   float64
	MeanActivity  float64
}

type options struct {
	lookback int
	workers  int
}

// Option configures Analyze.
type Option func(*options)

// WithLookback overrides the period detection window.
func WithLookback(n int) Option {
	return func(o *options) { o.lookback = n }
}

// WithWorkers limits how many frames are measured concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Analyze computes the full report for traj. All frames must share the
// dimensions of frame 0.
func Analyze(ctx context.Context, traj *life.Trajectory, opts ...Option) (*Report, error) {
	o := options{lookback: MaxLookback, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	if traj.Len() == 0 {
		return nil, ErrEmptyTrajectory
	}
	frames := traj.Frames
	rows, cols := frames[0].Rows(), frames[0].Cols()
	for k, f := range frames {
		if f == nil || f.Rows() != rows || f.Cols() != cols {
			return nil, fmt.Errorf("analysis: frame %d: %w", k, life.ErrInvalidDimension)
		}
	}

	n := len(frames)
	rep := &Report{
		Rows:       rows,
		Cols:       cols,
		Frames:     n,
		Population: make([]int, n),
		Occupancy:  make([]float64, n),
		CenterRow:  make([]float64, n),
		CenterCol:  make([]float64, n),
		Entropy:    make([]float64, n),
		Activity:   make([]int, n),
		Heatmap:    NewHeatmap(rows, cols),
	}

	// each goroutine writes only its own index
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for k := range frames {
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			return rep.measure(k, frames)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, f := range frames {
		rep.Heatmap.Add(f)
	}

	rep.StartPopulation = rep.Population[0]
	rep.EndPopulation = rep.Population[n-1]
	rep.Period = DetectPeriodWindow(frames, o.lookback)
	rep.Displacement = Displacement(rep.CenterRow[0], rep.CenterCol[0], rep.CenterRow[n-1], rep.CenterCol[n-1])
	rep.Behavior = Classify(rep.Period, rep.Displacement, rep.StartPopulation, rep.EndPopulation)

	rep.PeakOccupancy = floats.Max(rep.Occupancy)
	rep.PeakEntropy = floats.Max(rep.Entropy)
	rep.MeanActivity = stat.Mean(intsToFloats(rep.Activity), nil)

	return rep, nil
}

func (r *Report) measure(k int, frames []*life.Grid) error {
	g := frames[k]
	r.Population[k] = g.Population()
	r.Occupancy[k] = Occupancy(g)
	r.CenterRow[k], r.CenterCol[k] = CenterOfMass(g)
	r.Entropy[k] = Entropy(g)

	var prev *life.Grid
	if k > 0 {
		prev = frames[k-1]
	}
	act, err := Activity(prev, g)
	if err != nil {
		return fmt.Errorf("analysis: frame %d: %w", k, err)
	}
	r.Activity[k] = act
	return nil
}

// HasPeriod reports whether a repeat of the final frame was found.
func (r *Report) HasPeriod() bool { return r.Period > 0 }

// PopulationSeries returns the population series as float64 for plotting.
func (r *Report) PopulationSeries() []float64 { return intsToFloats(r.Population) }

// ActivitySeries returns the activity series as float64 for plotting.
func (r *Report) ActivitySeries() []float64 { return intsToFloats(r.Activity) }

func intsToFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
