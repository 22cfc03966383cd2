package experiment

import (
	"context"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/monitoring"
)

// Outcome is the result of one suite entry. Exactly one of Result and Err
// is set.
type Outcome struct {
	Name   string
	Result *Result
	Err    error
}

// RunSuite runs each experiment in order. A failing experiment is logged
// and recorded; the remaining experiments still run. fn, if non-nil, is
// called after each experiment, typically to persist it.
func RunSuite(ctx context.Context, cfgs []config.Config, fn func(Outcome) error) []Outcome {
	outcomes := make([]Outcome, 0, len(cfgs))
	for _, cfg := range cfgs {
		if ctx.Err() != nil {
			outcomes = append(outcomes, Outcome{Name: cfg.Name, Err: ctx.Err()})
			continue
		}

		res, err := New(cfg).Run(ctx)
		out := Outcome{Name: cfg.Name, Result: res, Err: err}
		if err == nil && fn != nil {
			if ferr := fn(out); ferr != nil {
				out.Result, out.Err = nil, ferr
			}
		}
		if out.Err != nil {
			monitoring.Logf("experiment %s failed: %v", cfg.Name, out.Err)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// Failed counts outcomes with an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
