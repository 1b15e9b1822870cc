package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/automation"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/optim"
	"github.com/san-kum/trajsim/internal/projectile"
	"github.com/san-kum/trajsim/internal/report"
	"github.com/san-kum/trajsim/internal/storage"
	"github.com/san-kum/trajsim/internal/stream"
	"github.com/san-kum/trajsim/internal/sweep"
	"github.com/san-kum/trajsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	scheme     string
	maxSteps   int
	verbose    bool
	printEvery int
	noSave     bool
	showPlot   bool
	// sweep
	sweepStart   float64
	sweepStep    float64
	sweepCount   int
	sweepWorkers int
	listEvery    int
	// compare
	reference string
	// plot and export
	figures []string
	outFile string
	outDir  string
	theme   string
	braille bool
	// serve
	addr     string
	interval time.Duration
	// param-sweep / dispersion
	paramName   string
	paramMin    float64
	paramMax    float64
	paramSteps  int
	speedJitter float64
	angleJitter float64
	trials      int
	seed        int64
	// optimize
	gridAxes []string
	metric   string
	minimize bool
)

// launch flags and the config parameter each one sets
var launchFlags = []struct {
	flag, param, usage string
}{
	{"dt", "dt", "timestep (s)"},
	{"speed", "speed", "launch speed (m/s)"},
	{"angle", "angle", "launch angle (degrees)"},
	{"mass", "mass", "mass (kg)"},
	{"area", "area", "reference area (m²)"},
	{"cd", "drag_coefficient", "drag coefficient"},
	{"density", "density", "air density (kg/m³)"},
	{"gravity", "gravity", "gravitational acceleration (m/s²)"},
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "trajsim",
		Short:        "projectile motion with quadratic drag",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".trajsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one trajectory and save it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addLaunchFlags(runCmd)
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every recorded state")
	runCmd.Flags().IntVar(&printEvery, "every", 1, "with --verbose, print every n-th state")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "chart the trajectory after the run")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "search launch angles for the longest range",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addLaunchFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepStart, "start", 25, "first angle (degrees)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 0.001, "angle increment (radians)")
	sweepCmd.Flags().IntVar(&sweepCount, "count", 350, "number of angles")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 1, "concurrent runs")
	sweepCmd.Flags().IntVar(&listEvery, "list", 0, "list every n-th sample")
	sweepCmd.Flags().BoolVar(&showPlot, "plot", false, "chart range against angle")

	compareCmd := &cobra.Command{
		Use:   "compare [scheme...]",
		Short: "run several schemes on the same launch",
		RunE:  compareSchemes,
	}
	addLaunchFlags(compareCmd)
	compareCmd.Flags().StringVar(&reference, "reference", "rk4", "scheme the others are measured against")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).Delete(args[0])
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&figures, "figure", nil, "figures to draw (position, trajectory, angle, vx, vy, ax, ay)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the trajectory as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().BoolVar(&braille, "braille", false, "render the terminal braille canvas instead of a vector path")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "render every figure of a run to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVar(&outDir, "dir", ".", "output directory")
	exportPNGCmd.Flags().StringSliceVar(&figures, "figure", nil, "only these figures")

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "play a run back in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, _, err := storage.New(dataDir).LoadTrace(args[0])
			if err != nil {
				return err
			}
			return viz.RunReplay(trace, theme)
		},
	}
	replayCmd.Flags().StringVar(&theme, "theme", "night", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream runs over websocket",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	addLaunchFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	serveCmd.Flags().DurationVar(&interval, "interval", 0, "delay between step frames")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	paramSweepCmd := &cobra.Command{
		Use:   "param-sweep",
		Short: "vary one parameter and report range",
		Args:  cobra.NoArgs,
		RunE:  runParamSweep,
	}
	addLaunchFlags(paramSweepCmd)
	paramSweepCmd.Flags().StringVar(&paramName, "param", "drag_coefficient", "parameter ("+strings.Join(config.ParamNames(), ", ")+")")
	paramSweepCmd.Flags().Float64Var(&paramMin, "min", 0, "first value")
	paramSweepCmd.Flags().Float64Var(&paramMax, "max", 1, "last value")
	paramSweepCmd.Flags().IntVar(&paramSteps, "steps", 11, "number of values")

	dispersionCmd := &cobra.Command{
		Use:   "dispersion",
		Short: "monte carlo spread of range under launch jitter",
		Args:  cobra.NoArgs,
		RunE:  runDispersion,
	}
	addLaunchFlags(dispersionCmd)
	dispersionCmd.Flags().Float64Var(&speedJitter, "speed-jitter", 0.5, "max speed perturbation (m/s)")
	dispersionCmd.Flags().Float64Var(&angleJitter, "angle-jitter", 1, "max angle perturbation (degrees)")
	dispersionCmd.Flags().IntVar(&trials, "trials", 100, "number of trials")
	dispersionCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "grid search parameters for the best metric value",
		Args:  cobra.NoArgs,
		RunE:  runOptimize,
	}
	addLaunchFlags(optimizeCmd)
	optimizeCmd.Flags().StringArrayVar(&gridAxes, "grid", []string{"angle=20:60:41"}, "grid axis as name=min:max:n (repeatable)")
	optimizeCmd.Flags().StringVar(&metric, "metric", "range", "metric to optimize")
	optimizeCmd.Flags().BoolVar(&minimize, "minimize", false, "minimize instead of maximize")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PRESET\tSCHEME\tSPEED\tANGLE\tMASS\tAREA\tCD\tDT")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%g\t%g\t%g\n",
					name, p.Scheme, p.Launch.Speed, p.Launch.Angle, p.Body.Mass, p.Body.Area, p.Body.DragCoefficient, p.Dt)
			}
			return tw.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, sweepCmd, compareCmd, listCmd, deleteCmd, plotCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, exportPNGCmd, replayCmd,
		serveCmd, batchCmd, paramSweepCmd, dispersionCmd, optimizeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLaunchFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	for _, f := range launchFlags {
		v, _ := defaults.Get(f.param)
		cmd.Flags().Float64(f.flag, v, f.usage)
	}
	cmd.Flags().StringVar(&scheme, "scheme", config.DefaultScheme, "advancer (euler, analytic, ode-euler, rk4, rk45)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step cap (0 = 100000)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers the preset, then the config file, then any flag the
// user set explicitly. fallback names the preset used when neither a preset
// nor a file is given.
func resolveConfig(cmd *cobra.Command, fallback string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := preset
	if name == "" && configFile == "" {
		name = fallback
	}
	if name != "" {
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	if configFile != "" {
		var err error
		cfg, err = config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	for _, f := range launchFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(f.flag)
		if err != nil {
			return nil, err
		}
		if err := cfg.Set(f.param, v); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("scheme") {
		cfg.Scheme = scheme
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}

	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	pc := cfg.Projectile()

	registry := experiment.NewRegistry()
	exp, err := registry.Build(cfg.Scheme, pc)
	if err != nil {
		return err
	}
	if verbose {
		exp.GetSimulator().AddObserver(report.NewConsole(os.Stdout, printEvery))
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %s simulation...\n", cfg.Scheme)
	start := time.Now()

	trace, runErr := exp.Run(ctx)
	if trace == nil {
		return runErr
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(pc, trace)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	fmt.Println()

	if err := report.Summary(os.Stdout, pc, metrics.Summarize(trace, pc), runErr); err != nil {
		return err
	}
	if showPlot {
		for _, chart := range report.Charts(trace, 80, 10, "trajectory") {
			fmt.Println()
			fmt.Println(chart)
		}
	}

	if runErr != nil && !errors.Is(runErr, projectile.ErrRunaway) {
		return runErr
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "heavy")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("start") {
		cfg.Sweep.Start = sweepStart
	}
	if cmd.Flags().Changed("step") {
		cfg.Sweep.Step = sweepStep
	}
	if cmd.Flags().Changed("count") {
		cfg.Sweep.Count = sweepCount
	}
	if cmd.Flags().Changed("workers") {
		cfg.Sweep.Workers = sweepWorkers
	}

	factory, err := experiment.NewRegistry().Factory(cfg.Scheme)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	spec := cfg.SweepSpec()
	fmt.Printf("sweeping %d angles from %.2f° (%s)...\n", spec.Count, cfg.Sweep.Start, cfg.Scheme)
	start := time.Now()

	res, err := spec.Run(ctx, cfg.Projectile(), sweep.Factory(factory))
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	if err := report.Sweep(os.Stdout, res, listEvery); err != nil {
		return err
	}

	incomplete := 0
	ranges := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		ranges[i] = s.Range
		if !s.Complete {
			incomplete++
		}
	}
	if incomplete > 0 {
		fmt.Printf("warning: %d angles hit the step cap\n", incomplete)
	}

	if showPlot && len(ranges) > 1 {
		last := res.Samples[len(res.Samples)-1].Angle
		graph := asciigraph.Plot(ranges,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("range vs angle, %.2f° to %.2f°", spec.Start*180/math.Pi, last*180/math.Pi)),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	pc := cfg.Projectile()

	registry := experiment.NewRegistry()
	schemes := args
	if len(schemes) == 0 {
		schemes = registry.ListAdvancers()
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("comparing schemes at %.2f m/s, %.2f°, dt=%g\n\n", cfg.Launch.Speed, cfg.Launch.Angle, cfg.Dt)

	rows := make([]report.CompareRow, 0, len(schemes))
	for _, name := range schemes {
		trace, err := registry.RunScheme(ctx, name, pc)
		row := report.CompareRow{Err: err, Summary: metrics.Summary{Scheme: name}}
		if trace != nil {
			row.Summary = metrics.Summarize(trace, pc)
		}
		rows = append(rows, row)
	}

	return report.Compare(os.Stdout, rows, reference)
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
	fmt.Fprintln(w, "ID\tSCHEME\tTIME\tSTEPS\tANGLE\tRANGE\tSTATUS")
	for _, run := range runs {
		status := "landed"
		if !run.Complete {
			status = "incomplete"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.4f\t%s\n",
			run.ID,
			run.Scheme,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Config.Angle*180/math.Pi,
			run.Metrics["range"],
			status,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	trace, meta, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run %s (%s, %d steps)\n\n", meta.ID, meta.Scheme, meta.Steps)
	charts := report.Charts(trace, 80, 10, figures...)
	if len(charts) == 0 {
		return fmt.Errorf("nothing to plot")
	}
	for _, c := range charts {
		fmt.Println(c)
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	trace, meta, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta.Config, trace)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	trace, _, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, trace)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	trace, _, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}

	var svg string
	if braille {
		canvas := viz.NewCanvas(80, 20)
		canvas.Plot(viz.BoundsOf(trace.Points()).Pad(0.05), trace.Points())
		svg = export.CanvasToSVG(canvas, 4)
	} else {
		svg = export.TrajectoryToSVG(trace, 800, 400, "#4fc3f7")
	}
	if outFile == "" {
		_, err := fmt.Print(svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	trace, meta, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if len(figures) == 0 {
		paths, err := export.SavePNGs(outDir, meta.ID, trace)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("wrote %s\n", filepath.Clean(p))
		}
		return nil
	}

	for _, name := range figures {
		fig, ok := export.Lookup(trace, name)
		if !ok {
			return fmt.Errorf("unknown figure: %s", name)
		}
		path := filepath.Join(outDir, fmt.Sprintf("%s_%s.png", meta.ID, name))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := export.WritePNG(f, fig, export.DefaultWidth, export.DefaultHeight); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	srv := stream.NewServer(experiment.NewRegistry(), cfg)
	srv.Interval = interval

	ctx, cancel := signalContext()
	defer cancel()
	return srv.ListenAndServe(ctx, addr)
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if scenario.Description != "" {
		fmt.Printf("%s: %s\n", scenario.Name, scenario.Description)
	}
	results, err := automation.RunScenario(ctx, scenario, experiment.NewRegistry(), st, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tSCHEME\tSTEPS\tRANGE\tFLIGHT\tMAX_H\tRUN ID\tSTATUS")
	for _, r := range results {
		status := "landed"
		if r.Err != nil {
			status = "incomplete"
		}
		id := r.RunID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.4f\t%.4f\t%s\t%s\n",
			r.Name, r.Summary.Scheme, r.Summary.Steps, r.Summary.Range,
			r.Summary.FlightTime, r.Summary.MaxHeight, id, status)
	}
	return w.Flush()
}

func runParamSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	ps := &automation.ParameterSweep{
		Base:      cfg,
		ParamName: paramName,
		ParamMin:  paramMin,
		ParamMax:  paramMax,
		NumSteps:  paramSteps,
	}
	results, err := automation.RunSweep(ctx, ps, experiment.NewRegistry(), nil)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tRANGE\tFLIGHT\tMAX_H\tIMPACT\tSTATUS\n", strings.ToUpper(paramName))
	for _, r := range results {
		status := "landed"
		if !r.Complete {
			status = "incomplete"
		}
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%s\n",
			r.ParamValue, r.Summary.Range, r.Summary.FlightTime, r.Summary.MaxHeight, r.Summary.ImpactSpeed, status)
	}
	return w.Flush()
}

func runDispersion(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	mc := &automation.MonteCarloConfig{
		Base:        cfg,
		SpeedJitter: speedJitter,
		AngleJitter: angleJitter,
		NumTrials:   trials,
		Seed:        seed,
	}
	results, err := automation.RunMonteCarlo(ctx, mc, experiment.NewRegistry(), os.Stdout)
	if err != nil {
		return err
	}

	mean, stddev, landed, incomplete := automation.MonteCarloStats(results)
	fmt.Printf("\ntrials: %d (landed %d, incomplete %d)\n", len(results), landed, incomplete)
	fmt.Printf("range: mean %.4f m, stddev %.4f m\n", mean, stddev)
	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(gridAxes))
	ranges := make([][]float64, 0, len(gridAxes))
	for _, spec := range gridAxes {
		name, vals, err := optim.ParseAxis(spec)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}

	registry := experiment.NewRegistry()
	build := func(params map[string]float64) (*experiment.Experiment, error) {
		c := cfg.Clone()
		for k, v := range params {
			if err := c.Set(k, v); err != nil {
				return nil, err
			}
		}
		return registry.Build(c.Scheme, c.Projectile())
	}

	ctx, cancel := signalContext()
	defer cancel()

	gs := optim.NewGridSearch(names, ranges, !minimize)
	fmt.Printf("searching %d grid points (%s)...\n", gs.Evaluated(), cfg.Scheme)
	start := time.Now()

	params, best, err := gs.Search(ctx, build, metric)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	fmt.Printf("best %s: %.6f\n", metric, best)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, params[name])
	}
	return nil
}
