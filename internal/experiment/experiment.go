package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
)

// Result bundles everything one experiment produced.
type Result struct {
	Config     config.Config
	Trajectory *life.Trajectory
	Report     *analysis.Report
	Elapsed    time.Duration
}

type Experiment struct {
	cfg      config.Config
	registry *Registry
	runner   *life.Runner
	opts     []analysis.Option
}

func New(cfg config.Config) *Experiment {
	return &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
		runner:   life.NewRunner(),
	}
}

// WithRegistry swaps the seeder registry.
func (e *Experiment) WithRegistry(r *Registry) *Experiment {
	e.registry = r
	return e
}

// WithAnalysis sets options passed through to analysis.Analyze.
func (e *Experiment) WithAnalysis(opts ...analysis.Option) *Experiment {
	e.opts = opts
	return e
}

// AddObserver attaches o to the underlying runner.
func (e *Experiment) AddObserver(o life.Observer) {
	e.runner.AddObserver(o)
}

func (e *Experiment) Config() config.Config { return e.cfg }

// Seed builds generation 0 without running anything.
func (e *Experiment) Seed() (*life.Grid, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	return e.registry.GetSeeder(e.cfg.Category)(&e.cfg)
}

// Run seeds, evolves and analyzes the experiment.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	g, err := e.Seed()
	if err != nil {
		return nil, fmt.Errorf("%s: seed: %w", e.cfg.Name, err)
	}

	traj, err := e.runner.Run(ctx, g, e.cfg.Steps)
	if err != nil {
		return nil, fmt.Errorf("%s: run: %w", e.cfg.Name, err)
	}

	rep, err := analysis.Analyze(ctx, traj, e.opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: analyze: %w", e.cfg.Name, err)
	}

	return &Result{
		Config:     e.cfg,
		Trajectory: traj,
		Report:     rep,
		Elapsed:    time.Since(start),
	}, nil
}
