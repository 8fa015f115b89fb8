package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/flowstation/internal/config"
	"github.com/san-kum/flowstation/internal/experiment"
	"github.com/san-kum/flowstation/internal/flow"
	"github.com/san-kum/flowstation/internal/logging"
	"github.com/san-kum/flowstation/internal/storage"
	"github.com/san-kum/flowstation/internal/sweep"
	"github.com/san-kum/flowstation/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logJSON    bool
	jsonOut    bool
	theme      string

	inlet  streamFlags
	static staticFlags

	// burn
	fuelName string
	fuelW    float64
	fuelH    float64

	// mix
	other        streamFlags
	keepPressure bool

	// run
	withSweep  bool
	exportPath string

	// curve
	machFrom float64
	machTo   float64
	points   int
	workers  int

	logger = logging.Nop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "flowstation",
		Short:         "thermodynamic flow station calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logging.Config{Level: logLevel, JSON: logJSON})
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultOutDir, "run directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")

	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "set a total state and print the station",
		RunE:  runTotal,
	}
	scenarioFlags(totalCmd)
	inlet.register(totalCmd, "")

	staticCmd := &cobra.Command{
		Use:   "static",
		Short: "solve the static state by Mach, area or static pressure",
		RunE:  runStatic,
	}
	scenarioFlags(staticCmd)
	inlet.register(staticCmd, "")
	static.register(staticCmd)

	burnCmd := &cobra.Command{
		Use:   "burn",
		Short: "burn a fuel into the inlet stream",
		RunE:  runBurn,
	}
	scenarioFlags(burnCmd)
	inlet.register(burnCmd, "")
	burnCmd.Flags().StringVar(&fuelName, "fuel", "cxhy", "fuel name (see presets)")
	burnCmd.Flags().Float64Var(&fuelW, "fuel-w", 2.5, "fuel mass flow [lbm/s]")
	burnCmd.Flags().Float64Var(&fuelH, "fuel-h", -642, "fuel enthalpy [BTU/lbm]")

	mixCmd := &cobra.Command{
		Use:   "mix",
		Short: "mix a second stream into the inlet stream",
		RunE:  runMix,
	}
	scenarioFlags(mixCmd)
	inlet.register(mixCmd, "")
	other.register(mixCmd, "mix-")
	mixCmd.Flags().BoolVar(&keepPressure, "keep-pressure", false, "keep the primary pressure instead of requiring equal pressures")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario and save the result",
		RunE:  runScenario,
	}
	scenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&withSweep, "sweep", false, "also run the configured Mach sweep")
	runCmd.Flags().StringVar(&exportPath, "export", "", "write the result as JSON to this path")

	presetsCmd := &cobra.Command{
		Use:   "presets [category]",
		Short: "list scenario presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot area against Mach number",
		RunE:  plotCurve,
	}
	scenarioFlags(curveCmd)
	inlet.register(curveCmd, "")
	curveCmd.Flags().Float64Var(&machFrom, "from", 0.05, "first Mach number")
	curveCmd.Flags().Float64Var(&machTo, "to", 2.5, "last Mach number")
	curveCmd.Flags().IntVar(&points, "points", 60, "number of points")
	curveCmd.Flags().IntVar(&workers, "workers", 0, "parallel solves (0 = GOMAXPROCS)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "explore a station interactively",
		RunE:  runTUI,
	}
	scenarioFlags(tuiCmd)
	inlet.register(tuiCmd, "")
	tuiCmd.Flags().StringVar(&theme, "theme", "", "initial theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	rootCmd.AddCommand(totalCmd, staticCmd, burnCmd, mixCmd, runCmd, presetsCmd, listCmd, showCmd, curveCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func scenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "scenario preset as category/name")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON instead of panels")
}

// loadScenario resolves the scenario from --config, then --preset, then
// defaults, and applies any inlet flags given on the command line.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	case preset != "":
		category, name, _ := strings.Cut(preset, "/")
		cfg = config.GetPreset(category, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(category))
		}
	default:
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Lookup("tt") != nil {
		inlet.apply(cmd, "", &cfg.Inlet)
	}
	return cfg, nil
}

func stationOptions(cfg *config.Config) ([]flow.Option, error) {
	policy, err := experiment.ParseMixPolicy(cfg.Solver.MixPolicy)
	if err != nil {
		return nil, err
	}
	return []flow.Option{
		flow.WithLogger(logger.Logger),
		flow.WithSolver(cfg.Solver.XTol, cfg.Solver.MaxIter),
		flow.WithMixPolicy(policy),
	}, nil
}

func inletStation(cfg *config.Config) (*flow.Station, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := stationOptions(cfg)
	if err != nil {
		return nil, err
	}
	return experiment.Stream(cfg.Inlet, opts...)
}

func execute(cfg *config.Config, opts ...experiment.Option) (*experiment.Result, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	opts = append([]experiment.Option{experiment.WithLogger(logger.Logger)}, opts...)
	return experiment.New(cfg, opts...).Run(ctx)
}

func printStation(st *flow.Station) error {
	snap := st.Snapshot()
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	fmt.Println(viz.StationView(snap, viz.NewStyles(viz.GetTheme(theme))))
	return nil
}

func runTotal(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	st, err := inletStation(cfg)
	if err != nil {
		return err
	}
	return printStation(st)
}

func runStatic(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	static.apply(cmd, &cfg.Static)

	st, err := inletStation(cfg)
	if err != nil {
		return err
	}
	if _, err := experiment.SetStatic(st, cfg.Static); err != nil {
		return err
	}
	return printStation(st)
}

func runBurn(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fuel") || cmd.Flags().Changed("fuel-w") || cmd.Flags().Changed("fuel-h") || len(cfg.Burns) == 0 {
		cfg.Burns = []config.BurnConfig{{Fuel: fuelName, W: fuelW, H: fuelH}}
	}

	res, err := execute(cfg)
	if err != nil {
		return err
	}
	return printStation(res.Station)
}

func runMix(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Mixes) == 0 || other.changed(cmd, "mix-") {
		sc := cfg.Inlet
		other.apply(cmd, "mix-", &sc)
		cfg.Mixes = []config.StreamConfig{sc}
	}
	if keepPressure {
		cfg.Solver.MixPolicy = flow.MixKeepPressure.String()
	}

	res, err := execute(cfg)
	if err != nil {
		return err
	}
	return printStation(res.Station)
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	// The scenario's own logging section applies unless overridden.
	if !cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("log-json") {
		l, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		_ = logger.Close()
		logger = l
	}

	dir := dataDir
	if !cmd.Flags().Changed("data") && cfg.Output.Dir != "" {
		dir = cfg.Output.Dir
	}
	st := storage.New(dir)
	if err := st.Init(); err != nil {
		return err
	}

	var opts []experiment.Option
	if withSweep {
		opts = append(opts, experiment.WithSweep())
	}
	fmt.Printf("running scenario %s...\n", cfg.Name)
	res, err := execute(cfg, opts...)
	if err != nil {
		return err
	}

	runID, err := st.Save(res)
	if err != nil {
		return err
	}
	if exportPath != "" {
		if err := storage.ExportJSON(exportPath, res); err != nil {
			return err
		}
	}

	fmt.Printf("completed in %v\n", res.Elapsed)
	fmt.Printf("run id: %s\n\n", runID)
	if err := printSteps(res.Steps); err != nil {
		return err
	}
	if len(res.Sweep) > 0 {
		fmt.Printf("\nsweep: %d/%d points solved\n", len(sweep.Valid(res.Sweep)), len(res.Sweep))
	}
	return nil
}

func printSteps(steps []experiment.Step) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tW\tFAR\tTt\tPt\tht\tMACH\tTs\tPs\tAREA")
	for _, s := range steps {
		snap := s.Snapshot
		fmt.Fprintf(w, "%s\t%.4f\t%.5f", s.Label, snap.W, snap.FAR)
		if t := snap.Total; t != nil {
			fmt.Fprintf(w, "\t%.3f\t%.4f\t%.5f", t.Tt, t.Pt, t.Ht)
		} else {
			fmt.Fprint(w, "\t-\t-\t-")
		}
		if st := snap.Static; st != nil {
			fmt.Fprintf(w, "\t%.5f\t%.3f\t%.4f\t%.4f\n", st.Mach, st.Ts, st.Ps, st.Area)
		} else {
			fmt.Fprint(w, "\t-\t-\t-\t-\n")
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	categories := config.Categories()
	if len(args) == 1 {
		if config.ListPresets(args[0]) == nil {
			fmt.Printf("no presets in category: %s\n", args[0])
			return nil
		}
		categories = []string{args[0]}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tDESCRIPTION")
	for _, c := range categories {
		for _, name := range config.ListPresets(c) {
			fmt.Fprintf(w, "%s/%s\t%s\n", c, name, config.Presets[c][name].Description)
		}
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSTEPS\tSWEEP\tTt\tELAPSED")
	for _, run := range runs {
		tt := "-"
		if run.Final.Total != nil {
			tt = fmt.Sprintf("%.2f", run.Final.Total.Tt)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%.2fms\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.SweepSize,
			tt,
			run.ElapsedMs,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	labels, rows, err := st.LoadStations(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("name: %s\n", meta.Name)
	fmt.Printf("time: %s\n\n", meta.Timestamp.Format("2006-01-02 15:04:05"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\t"+strings.ToUpper(strings.Join(storage.StationColumns, "\t")))
	for i, row := range rows {
		fmt.Fprint(w, labels[i])
		for _, v := range row {
			fmt.Fprintf(w, "\t%.5g", v)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.StationView(meta.Final, viz.NewStyles(viz.GetTheme(theme))))
	return nil
}

// finalStation runs the scenario without its static stage and returns the
// resulting station.
func finalStation(cmd *cobra.Command) (*flow.Station, *config.Config, error) {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return nil, nil, err
	}
	cfg.Static = config.StaticConfig{}
	res, err := execute(cfg)
	if err != nil {
		return nil, nil, err
	}
	return res.Station, cfg, nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	st, _, err := finalStation(cmd)
	if err != nil {
		return err
	}

	pts, err := sweep.New(workers).Mach(cmd.Context(), st, sweep.Linspace(machFrom, machTo, points))
	if err != nil {
		return err
	}
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sweep.Valid(pts))
	}

	graph, err := viz.AreaMachCurve(pts, 80, 15)
	if err != nil {
		return err
	}
	fmt.Println(graph)

	if throat, err := st.Throat(); err == nil {
		fmt.Printf("\nthroat: area %.4f in², Ts %.3f °R, Ps %.4f psia\n", throat.Area, throat.Ts, throat.Ps)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	st, cfg, err := finalStation(cmd)
	if err != nil {
		return err
	}
	sc := cfg.Sweep
	pts, err := sweep.New(sc.Workers).Mach(cmd.Context(), st, sweep.Linspace(sc.MachFrom, sc.MachTo, sc.Points))
	if err != nil {
		return err
	}
	return viz.RunExplorer(st, pts, theme)
}
