package storage

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

func analyze(t *testing.T, cfg *config.Config) *analysis.Report {
	t.Helper()
	g, err := life.New(cfg.Rows, cfg.Cols)
	require.NoError(t, err)
	require.NoError(t, patterns.Insert(g, cfg.Category, cfg.Pattern, cfg.Row, cfg.Col, patterns.Placement{}))
	traj, err := life.NewRunner().Run(context.Background(), g, cfg.Steps)
	require.NoError(t, err)
	rep, err := analysis.Analyze(context.Background(), traj)
	require.NoError(t, err)
	return rep
}

func TestStore_SaveLoad(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Init())

	cfg := config.GetPreset("Blinker_Oscillation")
	rep := analyze(t, cfg)

	id, err := s.Save(cfg, rep)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "blinker_oscillation_"), id)

	for _, name := range []string{metadataFile, metricsFile, heatmapFile} {
		_, err := os.Stat(filepath.Join(s.RunDir(id), name))
		assert.NoError(t, err, name)
	}

	meta, err := s.Load(id)
	require.NoError(t, err)
	assert.Equal(t, id, meta.ID)
	assert.Equal(t, *cfg, meta.Config)
	assert.Equal(t, "Oscillator (Period 2)", meta.Behavior)
	assert.Equal(t, 51, meta.Frames)
	assert.InDelta(t, rep.MeanActivity, meta.Metrics["mean_activity"], 1e-12)
}

func TestStore_LoadReport(t *testing.T) {
	s := New(t.TempDir())
	cfg := config.GetPreset("Block_Stability")
	cfg.Steps = 10
	rep := analyze(t, cfg)

	id, err := s.Save(cfg, rep)
	require.NoError(t, err)

	got, err := s.LoadReport(id)
	require.NoError(t, err)
	assert.Equal(t, rep.Frames, got.Frames)
	assert.Equal(t, rep.Population, got.Population)
	assert.Equal(t, rep.Activity, got.Activity)
	assert.Equal(t, rep.Occupancy, got.Occupancy)
	assert.Equal(t, rep.Entropy, got.Entropy)
	assert.Equal(t, rep.CenterRow, got.CenterRow)
	assert.Equal(t, rep.CenterCol, got.CenterCol)
	assert.Equal(t, rep.Heatmap.Counts, got.Heatmap.Counts)
	assert.Equal(t, rep.Behavior, got.Behavior)
	assert.Equal(t, rep.Period, got.Period)
}

func TestStore_LoadReportKeepsFullPrecision(t *testing.T) {
	s := New(t.TempDir())
	cfg := config.GetPreset("Random_Entropy")
	cfg.Rows, cfg.Cols, cfg.Steps = 7, 9, 5

	g, err := life.Random(cfg.Rows, cfg.Cols, cfg.Seed, cfg.Density)
	require.NoError(t, err)
	traj, err := life.NewRunner().Run(context.Background(), g, cfg.Steps)
	require.NoError(t, err)
	rep, err := analysis.Analyze(context.Background(), traj)
	require.NoError(t, err)

	id, err := s.Save(cfg, rep)
	require.NoError(t, err)
	got, err := s.LoadReport(id)
	require.NoError(t, err)

	// 1/63 and friends need more than six decimals
	assert.Equal(t, rep.Occupancy, got.Occupancy)
	assert.Equal(t, rep.Entropy, got.Entropy)
}

func TestStore_SaveFailureLeavesNoRun(t *testing.T) {
	s := New(t.TempDir())
	cfg := config.GetPreset("Block_Stability")
	cfg.Steps = 3
	rep := analyze(t, cfg)
	rep.Entropy = rep.Entropy[:1]

	_, err := s.Save(cfg, rep)
	require.Error(t, err)

	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
	entries, err := os.ReadDir(s.baseDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_NaNCenterRoundTrips(t *testing.T) {
	s := New(t.TempDir())
	cfg := config.DefaultConfig()
	cfg.Name = "empty"
	cfg.Pattern = "Nope"
	cfg.Steps = 2

	g := life.MustNew(cfg.Rows, cfg.Cols)
	traj, err := life.NewRunner().Run(context.Background(), g, cfg.Steps)
	require.NoError(t, err)
	rep, err := analysis.Analyze(context.Background(), traj)
	require.NoError(t, err)

	id, err := s.Save(cfg, rep)
	require.NoError(t, err)

	got, err := s.LoadReport(id)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.CenterRow[0]))
	assert.Equal(t, analysis.Extinction, got.Behavior.Kind)
}

func TestStore_List(t *testing.T) {
	s := New(t.TempDir())

	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	cfg := config.GetPreset("Block_Stability")
	cfg.Steps = 3
	rep := analyze(t, cfg)
	a, err := s.Save(cfg, rep)
	require.NoError(t, err)
	b, err := s.Save(cfg, rep)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	require.NoError(t, os.MkdirAll(filepath.Join(s.RunDir("junk")), 0755))

	runs, err = s.List()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_Delete(t *testing.T) {
	s := New(t.TempDir())
	cfg := config.GetPreset("Block_Stability")
	cfg.Steps = 1
	id, err := s.Save(cfg, analyze(t, cfg))
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))
	_, err = s.Load(id)
	assert.True(t, os.IsNotExist(err))
	assert.Error(t, s.Delete("missing"))
}

func TestStore_ListMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "gosper_gun_growth", slug("Gosper_Gun_Growth"))
	assert.Equal(t, "my_glider_run", slug("My  Glider run"))
	assert.Equal(t, "run", slug(""))
}
