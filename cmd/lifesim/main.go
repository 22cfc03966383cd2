package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/experiment"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/storage"
	"github.com/san-kum/lifesim/internal/viz"
)

var (
	dataDir string
	// Experiment
	name     string
	category string
	pattern  string
	row      int
	col      int
	rotate   int
	flip     bool
	steps    int
	rows     int
	cols     int
	seed     int64
	density  float64
	// Config file
	configFile string
	// Preset name
	preset string
	// Outputs
	charts    bool
	gifPath   string
	gifScale  int
	outDir    string
	format    string
	showShape bool
	// Ensemble
	numRuns int
	workers int
)

// main registers commands and flags and executes the root command. It
// exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "lifesim",
		Short:        "toroidal game of life lab",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run and analyze one experiment",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExperiment,
	}
	experimentFlags(runCmd)
	runCmd.Flags().BoolVar(&charts, "charts", false, "write PNG charts into the run directory")
	runCmd.Flags().StringVar(&gifPath, "gif", "", "write the trajectory as an animated GIF")
	runCmd.Flags().IntVar(&gifScale, "gif-scale", 4, "GIF pixels per cell")

	suiteCmd := &cobra.Command{
		Use:   "suite [file]",
		Short: "run an experiment suite (built-in suite when no file given)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSuite,
	}
	suiteCmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides the suite file)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run metrics in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run (json, png, svg)",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "json, png or svg")
	exportCmd.Flags().StringVar(&outDir, "out", "", "output directory (default: the run directory)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "report card and population spectrum of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [preset]",
		Short: "watch a grid evolve live",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchExperiment,
	}
	experimentFlags(watchCmd)

	patternsCmd := &cobra.Command{
		Use:   "patterns [category]",
		Short: "list library patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPatterns,
	}
	patternsCmd.Flags().BoolVar(&showShape, "show", false, "draw each pattern")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in experiments",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tPATTERN\tGRID\tSTEPS")
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\n", cfg.Name, cfg.Category, cfg.Pattern, cfg.Rows, cfg.Cols, cfg.Steps)
			}
			return w.Flush()
		},
	}

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [preset]",
		Short: "run one experiment over many seeds and tally behaviors",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEnsemble,
	}
	experimentFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 16, "number of seeds")
	ensembleCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (default GOMAXPROCS)")

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.New(dataDir).Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step and analysis throughput",
		RunE:  bench,
	}

	rootCmd.AddCommand(runCmd, suiteCmd, listCmd, plotCmd, exportCmd, analyzeCmd, watchCmd, patternsCmd, presetsCmd, ensembleCmd, deleteCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func experimentFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().StringVar(&name, "name", def.Name, "experiment name")
	cmd.Flags().StringVar(&category, "category", def.Category, "pattern category, or Random")
	cmd.Flags().StringVar(&pattern, "pattern", def.Pattern, "pattern name")
	cmd.Flags().IntVar(&row, "row", def.Row, "pattern origin row")
	cmd.Flags().IntVar(&col, "col", def.Col, "pattern origin column")
	cmd.Flags().IntVar(&rotate, "rotate", 0, "quarter turns anticlockwise")
	cmd.Flags().BoolVar(&flip, "flip", false, "mirror the pattern before rotating")
	cmd.Flags().IntVar(&steps, "steps", def.Steps, "generations to run")
	cmd.Flags().IntVar(&rows, "rows", def.Rows, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", def.Cols, "grid columns")
	cmd.Flags().Int64Var(&seed, "seed", def.Seed, "random seed")
	cmd.Flags().Float64Var(&density, "density", def.Density, "random fill density")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig applies preset, then config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if len(args) > 0 {
		preset = args[0]
	}

	cfg := &config.Config{
		Name: name, Category: category, Pattern: pattern, Row: row, Col: col,
		Rotate: rotate, Flip: flip, Steps: steps, Rows: rows, Cols: cols,
		Seed: seed, Density: density,
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.Name = name
	}
	if flags.Changed("category") {
		cfg.Category = category
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("row") {
		cfg.Row = row
	}
	if flags.Changed("col") {
		cfg.Col = col
	}
	if flags.Changed("rotate") {
		cfg.Rotate = rotate
	}
	if flags.Changed("flip") {
		cfg.Flip = flip
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Cols = cols
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("density") {
		cfg.Density = density
	}

	return cfg, cfg.Validate()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %s (%dx%d, %d generations)...\n", cfg.Name, cfg.Rows, cfg.Cols, cfg.Steps)

	res, err := experiment.New(*cfg).Run(ctx)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, res.Report)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", res.Elapsed)
	fmt.Printf("run id: %s\n\n", runID)
	fmt.Println(viz.ReportCard(cfg.Name, res.Report))

	if charts {
		paths, err := export.WriteCharts(st.RunDir(runID), cfg.Name, res.Report)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("wrote %s\n", p)
		}
	}

	if gifPath != "" {
		f, err := os.Create(gifPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.EncodeGIF(f, res.Trajectory, gifScale, 8); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", gifPath)
	}

	return nil
}

func runSuite(cmd *cobra.Command, args []string) error {
	suite := config.DefaultSuite()
	if len(args) > 0 {
		loaded, err := config.LoadSuite(args[0])
		if err != nil {
			return fmt.Errorf("failed to load suite: %w", err)
		}
		suite = loaded
	}
	if outDir != "" {
		suite.OutputDir = outDir
	}

	st := storage.New(suite.OutputDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	total := len(suite.Experiments)
	done := 0
	runIDs := make(map[string]string)

	fmt.Printf("running %d experiments into %s\n\n", total, suite.OutputDir)
	outcomes := experiment.RunSuite(ctx, suite.Experiments, func(o experiment.Outcome) error {
		cfg := o.Result.Config
		runID, err := st.Save(&cfg, o.Result.Report)
		if err != nil {
			return err
		}
		if _, err := export.WriteCharts(st.RunDir(runID), cfg.Name, o.Result.Report); err != nil {
			return err
		}
		runIDs[o.Name] = runID
		done++
		fmt.Printf("%s %d/%d %s\n", viz.ProgressBar(float64(done)/float64(total), 30), done, total, o.Name)
		return nil
	})

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXPERIMENT\tRUN\tBEHAVIOR\tTIME")
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%s\t-\tFAILED: %v\t-\n", o.Name, o.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", o.Name, runIDs[o.Name], o.Result.Report.Behavior, o.Result.Elapsed.Round(time.Millisecond))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if n := experiment.Failed(outcomes); n > 0 {
		return fmt.Errorf("%d of %d experiments failed", n, total)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tGRID\tGENS\tBEHAVIOR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\n",
			run.ID,
			run.Config.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
			run.Cols,
			run.Frames-1,
			run.Behavior,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	rep, err := st.LoadReport(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("frames: %d\n\n", rep.Frames)
	fmt.Println(viz.Charts(rep, 80, 10))
	fmt.Println()
	fmt.Println(viz.SeriesChart(rep.CenterRow, "center of mass row", 80, 6))
	fmt.Println()
	fmt.Println(viz.SeriesChart(rep.CenterCol, "center of mass column", 80, 6))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	dir := outDir
	if dir == "" {
		dir = st.RunDir(runID)
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	case "png":
		rep, err := st.LoadReport(runID)
		if err != nil {
			return err
		}
		paths, err := export.WriteCharts(dir, meta.Name, rep)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("wrote %s\n", p)
		}
		return nil
	case "svg":
		rep, err := st.LoadReport(runID)
		if err != nil {
			return err
		}
		svg := export.TrajectorySVG(rep, 600, 600, "#00ffff")
		if svg == "" {
			return export.ErrNoData
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		path := filepath.Join(dir, "trajectory.svg")
		if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown format: %s (json, png, svg)", format)
	}
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rep, err := st.LoadReport(runID)
	if err != nil {
		return err
	}

	fmt.Println(viz.ReportCard(meta.Name, rep))
	fmt.Println()

	ps := analysis.PowerSpectrum(rep.PopulationSeries())
	if len(ps) < 2 {
		fmt.Println("too few frames for a spectrum")
		return nil
	}
	fmt.Println(viz.SeriesChart(ps[1:], "population power spectrum", 80, 12))
	fmt.Println()

	if p := analysis.DominantPeriod(rep.PopulationSeries()); p > 0 {
		fmt.Printf("dominant population period: %.2f generations\n", p)
	} else {
		fmt.Println("population is constant")
	}
	return nil
}

func watchExperiment(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	g, err := experiment.New(*cfg).Seed()
	if err != nil {
		return err
	}
	return viz.RunWatch(cfg.Name, g, cfg.Seed, cfg.Density)
}

func listPatterns(cmd *cobra.Command, args []string) error {
	cats := patterns.Categories()
	if len(args) > 0 {
		if patterns.Names(args[0]) == nil {
			return fmt.Errorf("unknown category: %s (available: %v)", args[0], cats)
		}
		cats = []string{args[0]}
	}

	for _, c := range cats {
		fmt.Println(viz.Title.Render(c))
		for _, n := range patterns.Names(c) {
			p, _ := patterns.Lookup(c, n)
			fmt.Printf("  %-16s %dx%d, %d cells\n", n, p.Rows(), p.Cols(), p.Population())
			if showShape {
				g, err := life.FromBools(p.Cells())
				if err != nil {
					return err
				}
				for _, line := range strings.Split(g.String(), "\n") {
					fmt.Printf("    %s\n", line)
				}
			}
		}
		fmt.Println()
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if !cfg.IsRandom() {
		fmt.Println("note: pattern seeding ignores the seed, every run will match")
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %d seeds of %s from %d...\n\n", numRuns, cfg.Name, cfg.Seed)
	start := time.Now()

	e := experiment.NewEnsemble(*cfg, numRuns, cfg.Seed)
	e.SetWorkers(workers)
	results, err := e.Run(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BEHAVIOR\tRUNS\tSHARE")
	for _, c := range experiment.Tally(results) {
		share := float64(c.Count) / float64(len(results))
		fmt.Fprintf(w, "%s\t%d\t%s\n", c.Kind, c.Count, viz.ProgressBar(share, 20))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func bench(cmd *cobra.Command, args []string) error {
	sizes := []int{64, 128, 256, 512}
	const gens = 100

	fmt.Printf("benchmarking %d generations per size\n\n", gens)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tSTEP\tCELLS/SEC\tANALYZE")

	for _, n := range sizes {
		g, err := life.Random(n, n, config.DefaultSeed, config.DefaultDensity)
		if err != nil {
			return err
		}

		start := time.Now()
		traj, err := life.NewRunner().Run(context.Background(), g, gens)
		if err != nil {
			return err
		}
		stepTime := time.Since(start)

		start = time.Now()
		if _, err := analysis.Analyze(context.Background(), traj); err != nil {
			return err
		}
		analyzeTime := time.Since(start)

		cellsPerSec := float64(n*n*gens) / stepTime.Seconds()
		fmt.Fprintf(w, "%dx%d\t%v\t%.3g\t%v\n", n, n, stepTime.Round(time.Microsecond), cellsPerSec, analyzeTime.Round(time.Microsecond))
	}

	return w.Flush()
}
