package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows    = 50
	DefaultCols    = 50
	DefaultSteps   = 50
	DefaultSeed    = 200
	DefaultDensity = 0.5

	// RandomCategory selects a random fill instead of a library pattern.
	RandomCategory = "Random"
)

var ErrInvalidConfig = errors.New("config: invalid experiment")

// Config describes one experiment: a seeded grid evolved for Steps
// generations.
type Config struct {
	Name     string  `yaml:"name" json:"name"`
	Category string  `yaml:"category" json:"category"`
	Pattern  string  `yaml:"pattern" json:"pattern"`
	Row      int     `yaml:"row" json:"row"`
	Col      int     `yaml:"col" json:"col"`
	Rotate   int     `yaml:"rotate,omitempty" json:"rotate"`
	Flip     bool    `yaml:"flip,omitempty" json:"flip"`
	Steps    int     `yaml:"steps" json:"steps"`
	Rows     int     `yaml:"rows" json:"rows"`
	Cols     int     `yaml:"cols" json:"cols"`
	Seed     int64   `yaml:"seed" json:"seed"`
	Density  float64 `yaml:"density" json:"density"`
}

// Suite is a list of experiments sharing an output directory.
type Suite struct {
	OutputDir   string   `yaml:"output_dir"`
	Experiments []Config `yaml:"experiments"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "Block_Stability",
		Category: "Still Life",
		Pattern:  "Block",
		Row:      25,
		Col:      25,
		Steps:    DefaultSteps,
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		Seed:     DefaultSeed,
		Density:  DefaultDensity,
	}
}

// IsRandom reports whether the experiment seeds a random grid.
func (c *Config) IsRandom() bool {
	return c.Category == RandomCategory
}

// Validate checks the fields the runner cannot recover from. Unknown
// patterns are not an error here; seeding is best effort.
func (c *Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps %d", ErrInvalidConfig, c.Steps)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v", ErrInvalidConfig, c.Density)
	case c.Category == "":
		return fmt.Errorf("%w: missing category", ErrInvalidConfig)
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSuite reads a suite file. Fields missing from an experiment take
// their values from DefaultConfig.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw struct {
		OutputDir   string      `yaml:"output_dir"`
		Experiments []yaml.Node `yaml:"experiments"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	suite := &Suite{OutputDir: raw.OutputDir}
	for i := range raw.Experiments {
		cfg := DefaultConfig()
		if err := raw.Experiments[i].Decode(cfg); err != nil {
			return nil, fmt.Errorf("experiment %d: %w", i, err)
		}
		suite.Experiments = append(suite.Experiments, *cfg)
	}
	if suite.OutputDir == "" {
		suite.OutputDir = DefaultOutputDir
	}
	return suite, nil
}

func SaveSuite(path string, s *Suite) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
