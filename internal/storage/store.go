package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/config"
)

const (
	metadataFile = "metadata.json"
	metricsFile  = "metrics.csv"
	heatmapFile  = "heatmap.csv"
)

var metricsHeader = []string{"generation", "population", "occupancy", "com_row", "com_col", "entropy", "activity"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunDir returns the directory holding a stored run.
func (s *Store) RunDir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

// RunMetadata is the JSON summary written next to each run's series.
type RunMetadata struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Timestamp       time.Time          `json:"timestamp"`
	Config          config.Config      `json:"config"`
	Rows            int                `json:"rows"`
	Cols            int                `json:"cols"`
	Frames          int                `json:"frames"`
	Behavior        string             `json:"behavior"`
	Period          int                `json:"period"`
	Displacement    float64            `json:"displacement"`
	StartPopulation int                `json:"start_population"`
	EndPopulation   int                `json:"end_population"`
	Metrics         map[string]float64 `json:"metrics"`
}

// Save writes the report of one experiment and returns the new run ID.
func (s *Store) Save(cfg *config.Config, rep *analysis.Report) (_ string, err error) {
	if rep == nil {
		return "", errors.New("storage: nil report")
	}
	runID := fmt.Sprintf("%s_%s", slug(cfg.Name), uuid.NewString()[:8])
	runDir := s.RunDir(runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	// no partial run directories
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := RunMetadata{
		ID:              runID,
		Name:            cfg.Name,
		Timestamp:       time.Now(),
		Config:          *cfg,
		Rows:            rep.Rows,
		Cols:            rep.Cols,
		Frames:          rep.Frames,
		Behavior:        rep.Behavior.String(),
		Period:          rep.Period,
		Displacement:    rep.Displacement,
		StartPopulation: rep.StartPopulation,
		EndPopulation:   rep.EndPopulation,
		Metrics: map[string]float64{
			"peak_occupancy": rep.PeakOccupancy,
			"peak_entropy":   rep.PeakEntropy,
			"mean_activity":  rep.MeanActivity,
		},
	}

	if err = writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err = writeMetrics(filepath.Join(runDir, metricsFile), rep); err != nil {
		return "", err
	}
	if err = writeHeatmap(filepath.Join(runDir, heatmapFile), rep.Heatmap); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeMetrics(path string, rep *analysis.Report) error {
	for _, n := range []int{len(rep.Population), len(rep.Occupancy), len(rep.CenterRow), len(rep.CenterCol), len(rep.Entropy), len(rep.Activity)} {
		if n != rep.Frames {
			return fmt.Errorf("storage: series of length %d in a %d-frame report", n, rep.Frames)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(metricsHeader); err != nil {
		return err
	}
	for k := 0; k < rep.Frames; k++ {
		row := []string{
			strconv.Itoa(k),
			strconv.Itoa(rep.Population[k]),
			formatFloat(rep.Occupancy[k]),
			formatFloat(rep.CenterRow[k]),
			formatFloat(rep.CenterCol[k]),
			formatFloat(rep.Entropy[k]),
			strconv.Itoa(rep.Activity[k]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeHeatmap(path string, h *analysis.Heatmap) error {
	if h == nil {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := make([]string, h.Cols)
	for i := 0; i < h.Rows; i++ {
		for j := 0; j < h.Cols; j++ {
			row[j] = strconv.Itoa(h.At(i, j))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns all stored runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.RunDir(runID), metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadReport rebuilds a report from a stored run's metadata and series.
func (s *Store) LoadReport(runID string) (*analysis.Report, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	records, err := readCSV(filepath.Join(s.RunDir(runID), metricsFile))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("storage: run %s has no frames: %w", runID, analysis.ErrEmptyTrajectory)
	}

	n := len(records) - 1
	rep := &analysis.Report{
		Rows:       meta.Rows,
		Cols:       meta.Cols,
		Frames:     n,
		Population: make([]int, n),
		Occupancy:  make([]float64, n),
		CenterRow:  make([]float64, n),
		CenterCol:  make([]float64, n),
		Entropy:    make([]float64, n),
		Activity:   make([]int, n),
	}
	for k, rec := range records[1:] {
		if len(rec) != len(metricsHeader) {
			return nil, fmt.Errorf("storage: %s line %d: expected %d fields, got %d", metricsFile, k+2, len(metricsHeader), len(rec))
		}
		if rep.Population[k], err = strconv.Atoi(rec[1]); err != nil {
			return nil, err
		}
		floatsAt := []*float64{&rep.Occupancy[k], &rep.CenterRow[k], &rep.CenterCol[k], &rep.Entropy[k]}
		for i, dst := range floatsAt {
			if *dst, err = strconv.ParseFloat(rec[2+i], 64); err != nil {
				return nil, err
			}
		}
		if rep.Activity[k], err = strconv.Atoi(rec[6]); err != nil {
			return nil, err
		}
	}

	rep.Heatmap, err = s.loadHeatmap(runID, meta.Rows, meta.Cols)
	if err != nil {
		return nil, err
	}

	rep.Period = meta.Period
	rep.Displacement = meta.Displacement
	rep.StartPopulation = meta.StartPopulation
	rep.EndPopulation = meta.EndPopulation
	rep.Behavior = analysis.Classify(meta.Period, meta.Displacement, meta.StartPopulation, meta.EndPopulation)
	rep.PeakOccupancy = meta.Metrics["peak_occupancy"]
	rep.PeakEntropy = meta.Metrics["peak_entropy"]
	rep.MeanActivity = meta.Metrics["mean_activity"]
	return rep, nil
}

func (s *Store) loadHeatmap(runID string, rows, cols int) (*analysis.Heatmap, error) {
	h := analysis.NewHeatmap(rows, cols)
	records, err := readCSV(filepath.Join(s.RunDir(runID), heatmapFile))
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, err
	}
	for i, rec := range records {
		if i >= rows {
			break
		}
		for j := 0; j < cols && j < len(rec); j++ {
			v, err := strconv.Atoi(rec[j])
			if err != nil {
				return nil, err
			}
			h.Counts[i*cols+j] = v
		}
	}
	return h, nil
}

// Delete removes a stored run.
func (s *Store) Delete(runID string) error {
	if _, err := s.Load(runID); err != nil {
		return err
	}
	return os.RemoveAll(s.RunDir(runID))
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func slug(name string) string {
	if name == "" {
		return "run"
	}
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}
