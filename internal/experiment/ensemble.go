package experiment

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
)

// Ensemble runs one experiment over consecutive seeds. It is meant for
// random seeding, where the seed changes the starting grid.
type Ensemble struct {
	cfg       config.Config
	numRuns   int
	seedStart int64
	workers   int
}

func NewEnsemble(cfg config.Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart, workers: runtime.GOMAXPROCS(0)}
}

// SetWorkers limits how many runs execute concurrently.
func (e *Ensemble) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

// Run executes every member. Results are indexed by seed offset. The first
// failure cancels the remaining runs. A negative run count is rejected.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	if e.numRuns < 0 {
		return nil, fmt.Errorf("%w: runs %d", life.ErrInvalidArgument, e.numRuns)
	}
	results := make([]*Result, e.numRuns)

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(e.workers)
	for i := 0; i < e.numRuns; i++ {
		eg.Go(func() error {
			cfg := e.cfg
			cfg.Seed = e.seedStart + int64(i)

			// analysis runs serially inside each member; the ensemble
			// already fills the workers
			res, err := New(cfg).WithAnalysis(analysis.WithWorkers(1)).Run(ectx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BehaviorCount is how many ensemble members ended in one behavior kind.
type BehaviorCount struct {
	Kind  analysis.BehaviorKind
	Count int
}

// Tally counts behaviors across results, most frequent first.
func Tally(results []*Result) []BehaviorCount {
	counts := make(map[analysis.BehaviorKind]int)
	for _, r := range results {
		if r == nil {
			continue
		}
		counts[r.Report.Behavior.Kind]++
	}

	out := make([]BehaviorCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, BehaviorCount{Kind: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
