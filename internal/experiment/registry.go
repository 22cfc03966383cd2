package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/monitoring"
	"github.com/san-kum/lifesim/internal/patterns"
)

// Seeder builds the generation-0 grid for an experiment.
type Seeder func(cfg *config.Config) (*life.Grid, error)

// Registry maps seeding categories to seeders. Categories without an
// explicit entry fall back to pattern insertion.
type Registry struct {
	seeders  map[string]Seeder
	fallback Seeder
}

func NewRegistry() *Registry {
	r := &Registry{
		seeders:  make(map[string]Seeder),
		fallback: seedPattern,
	}
	r.seeders[config.RandomCategory] = seedRandom
	return r
}

// Register adds or replaces the seeder for category.
func (r *Registry) Register(category string, s Seeder) {
	r.seeders[category] = s
}

func (r *Registry) GetSeeder(category string) Seeder {
	if s, ok := r.seeders[category]; ok {
		return s
	}
	return r.fallback
}

// ListCategories returns every seedable category: registered seeders plus
// the pattern library.
func (r *Registry) ListCategories() []string {
	names := make([]string, 0, len(r.seeders))
	for name := range r.seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(patterns.Categories(), names...)
}

func seedRandom(cfg *config.Config) (*life.Grid, error) {
	return life.Random(cfg.Rows, cfg.Cols, cfg.Seed, cfg.Density)
}

// seedPattern inserts the configured pattern into an empty grid. A pattern
// missing from the library is logged and the run continues from the empty
// grid.
func seedPattern(cfg *config.Config) (*life.Grid, error) {
	g, err := life.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	err = patterns.Insert(g, cfg.Category, cfg.Pattern, cfg.Row, cfg.Col,
		patterns.Placement{Rotate: cfg.Rotate, Flip: cfg.Flip})
	if errors.Is(err, patterns.ErrPatternNotFound) {
		monitoring.Logf("experiment %s: %v", cfg.Name, err)
		return g, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert pattern: %w", err)
	}
	return g, nil
}
