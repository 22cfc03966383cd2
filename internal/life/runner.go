package life

import (
	"context"
	"fmt"

	"github.com/san-kum/lifesim/internal/monitoring"
)

// Trajectory is the ordered sequence of generations produced by a run.
// Frames[0] is generation 0 and Frames[k] the state after k steps.
type Trajectory struct {
	Frames   []*Grid
	Warnings []CoercionWarning
}

// Len returns the number of frames.
func (t *Trajectory) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Frames)
}

// At returns generation k.
func (t *Trajectory) At(k int) *Grid { return t.Frames[k] }

// First returns generation 0.
func (t *Trajectory) First() *Grid { return t.Frames[0] }

// Last returns the final generation.
func (t *Trajectory) Last() *Grid { return t.Frames[len(t.Frames)-1] }

// Observer is notified of every frame appended to a trajectory, in order.
// Frames passed to observers are the stored snapshots and must not be
// modified.
type Observer interface {
	OnGeneration(gen int, g *Grid)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(gen int, g *Grid)

func (f ObserverFunc) OnGeneration(gen int, g *Grid) { f(gen, g) }

// Runner drives repeated Step applications.
type Runner struct {
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{observers: make([]Observer, 0)}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run produces timesteps+1 frames starting from a copy of g. Each step
// consumes the frame produced by the previous one. If ctx is canceled the
// frames produced so far are returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context, g *Grid, timesteps int) (*Trajectory, error) {
	if timesteps < 0 {
		return nil, fmt.Errorf("%w: timesteps must be non-negative, got %d", ErrInvalidArgument, timesteps)
	}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("seed grid: %w", err)
	}

	traj := &Trajectory{Frames: make([]*Grid, 0, timesteps+1)}
	cur := g.Clone()
	r.emit(traj, cur)

	for i := 1; i <= timesteps; i++ {
		select {
		case <-ctx.Done():
			return traj, ctx.Err()
		default:
		}

		next, err := Step(cur)
		if err != nil {
			return traj, &StepError{Generation: i, Err: err}
		}
		cur = next
		r.emit(traj, cur)
	}

	return traj, nil
}

func (r *Runner) emit(traj *Trajectory, g *Grid) {
	gen := len(traj.Frames)
	traj.Frames = append(traj.Frames, g)
	for _, o := range r.observers {
		o.OnGeneration(gen, g)
	}
}

// RunValues seeds a run from a numeric matrix. Nonzero values are alive;
// values other than 0 and 1 are logged and recorded in the trajectory's
// Warnings instead of failing the run.
func RunValues[T Number](ctx context.Context, r *Runner, values [][]T, timesteps int) (*Trajectory, error) {
	g, warnings, err := FromValues(values)
	if err != nil {
		return nil, fmt.Errorf("seed grid: %w", err)
	}
	for _, w := range warnings {
		monitoring.Logf("%v", w)
	}

	traj, err := r.Run(ctx, g, timesteps)
	if traj != nil {
		traj.Warnings = warnings
	}
	return traj, err
}
