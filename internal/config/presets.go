package config

import "sort"

// DefaultOutputDir is where suite reports are written.
const DefaultOutputDir = "analysis_results"

// suiteOrder is the run order of the built-in analysis suite.
var suiteOrder = []string{
	"Block_Stability",
	"Blinker_Oscillation",
	"Pulsar_Oscillation",
	"Glider_Trajectory",
	"Gosper_Gun_Growth",
	"Random_Entropy",
}

var Presets = map[string]*Config{
	"Block_Stability": {
		Name: "Block_Stability", Category: "Still Life", Pattern: "Block",
		Row: 25, Col: 25, Steps: 50, Rows: 50, Cols: 50, Seed: DefaultSeed, Density: DefaultDensity,
	},
	"Blinker_Oscillation": {
		Name: "Blinker_Oscillation", Category: "Oscillator", Pattern: "Blinker",
		Row: 25, Col: 25, Steps: 50, Rows: 50, Cols: 50, Seed: DefaultSeed, Density: DefaultDensity,
	},
	"Pulsar_Oscillation": {
		Name: "Pulsar_Oscillation", Category: "Oscillator", Pattern: "Pulsar",
		Row: 20, Col: 20, Steps: 100, Rows: 60, Cols: 60, Seed: DefaultSeed, Density: DefaultDensity,
	},
	"Glider_Trajectory": {
		Name: "Glider_Trajectory", Category: "Spaceship", Pattern: "Glider",
		Row: 5, Col: 5, Steps: 100, Rows: 60, Cols: 60, Seed: DefaultSeed, Density: DefaultDensity,
	},
	"Gosper_Gun_Growth": {
		Name: "Gosper_Gun_Growth", Category: "Complex", Pattern: "Glider Gun",
		Row: 5, Col: 5, Steps: 150, Rows: 60, Cols: 80, Seed: DefaultSeed, Density: DefaultDensity,
	},
	"Random_Entropy": {
		Name: "Random_Entropy", Category: RandomCategory, Pattern: "Random",
		Row: 0, Col: 0, Steps: 200, Rows: 80, Cols: 80, Seed: DefaultSeed, Density: DefaultDensity,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultSuite returns the built-in analysis suite in run order.
func DefaultSuite() *Suite {
	s := &Suite{OutputDir: DefaultOutputDir}
	for _, name := range suiteOrder {
		s.Experiments = append(s.Experiments, *GetPreset(name))
	}
	return s
}
