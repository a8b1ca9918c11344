package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cubelife/internal/app"
	"github.com/san-kum/cubelife/internal/automation"
	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/export"
	"github.com/san-kum/cubelife/internal/gui"
	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/tui"
	"github.com/san-kum/cubelife/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// headlessWidth keeps headless sessions on the desktop layout.
const headlessWidth = 1280

var (
	configFile string
	preset     string
	debug      bool
	logFile    io.Closer

	width      int
	height     int
	pattern    string
	seed       int64
	noiseScale float64
	intervalMs int
	colorize   bool
	theme      string

	runGenerations   int
	statsGenerations int
	snapGenerations  int
	trials           int
	workers          int

	outFile string
	imgW    int
	imgH    int
)

// main registers the cubelife commands and runs the terminal front end when
// no subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "cubelife",
		Short: "game of life on a rotatable cube scene",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.BoolVar(&debug, "debug", false, "write a debug log to cubelife-debug.log")
	pf.IntVar(&width, "width", config.DefaultWidth, "board columns")
	pf.IntVar(&height, "height", config.DefaultHeight, "board rows")
	pf.StringVar(&pattern, "pattern", "", "seed pattern: random, noise or a pattern name")
	pf.Int64Var(&seed, "seed", 0, "noise seed")
	pf.Float64Var(&noiseScale, "noise-scale", life.DefaultNoiseScale, "noise sampling scale")
	pf.IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "auto-play interval in ms")
	pf.BoolVar(&colorize, "colorize", false, "start with colorized cubes")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal front end",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "3D window front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run generations headless and chart the population",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVarP(&runGenerations, "generations", "n", 50, "generations to run")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "measure random boards over many trials",
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&trials, "trials", 200, "number of random boards")
	statsCmd.Flags().IntVar(&workers, "workers", 4, "parallel workers")
	statsCmd.Flags().IntVarP(&statsGenerations, "generations", "n", 0, "generations to run per board")

	patternsCmd := &cobra.Command{
		Use:     "patterns",
		Aliases: []string{"presets"},
		Short:   "list seed patterns and presets",
		RunE:    listPatterns,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write an svg of the cube scene",
		RunE:  writeSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "cubelife.svg", "output file")
	snapshotCmd.Flags().IntVarP(&snapGenerations, "generations", "n", 0, "generations to run first")
	snapshotCmd.Flags().IntVar(&imgW, "img-width", 800, "image width")
	snapshotCmd.Flags().IntVar(&imgH, "img-height", 600, "image height")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a yaml scenario of board commands",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, statsCmd, patternsCmd, snapshotCmd, scriptCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging sends the session log to a file under --debug and discards it
// otherwise; the terminal front end owns stdout.
func setupLogging() error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile("cubelife-debug.log", "cubelife")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	logFile = f
	return nil
}

// resolveConfig layers defaults, a preset, the config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("noise-scale") {
		cfg.NoiseScale = noiseScale
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("colorize") {
		cfg.Colorize = colorize
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := app.NewSession(cfg, headlessWidth)
	if err != nil {
		return err
	}

	fmt.Printf("board: %dx%d  pattern: %s  generations: %d\n\n", cfg.Width, cfg.Height, patternName(cfg.Pattern), runGenerations)
	for i := 0; i < runGenerations; i++ {
		s.StepOnce()
	}

	fmt.Print(s.Grid().String())
	fmt.Println()

	hist := s.History()
	if len(hist) > 1 {
		graph := asciigraph.Plot(hist,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("population"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	printMetrics(s.Metrics())
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.3f\n", name, m[name])
	}
	w.Flush()
}

// trialResult is one random board's alive fraction before and after stepping.
type trialResult struct {
	initial float64
	final   float64
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", trials)
	}

	results := make([]trialResult, trials)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(workers, 1))

	for i := 0; i < trials; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := runTrial(cfg, uint64(cfg.Seed), uint64(i))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var initial, final float64
	for _, r := range results {
		initial += r.initial
		final += r.final
	}
	n := float64(trials)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "board\t%dx%d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(w, "trials\t%d\n", trials)
	fmt.Fprintf(w, "mean alive after randomize\t%.4f\n", initial/n)
	if statsGenerations > 0 {
		fmt.Fprintf(w, "mean alive after %d generations\t%.4f\n", statsGenerations, final/n)
	}
	return w.Flush()
}

// runTrial owns a private grid, so trials share nothing.
func runTrial(cfg *config.Config, seed, stream uint64) (trialResult, error) {
	grid, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return trialResult{}, err
	}
	cells := float64(cfg.Width * cfg.Height)

	grid.Randomize(rand.New(rand.NewPCG(seed, stream)))
	r := trialResult{initial: float64(grid.Population()) / cells}
	for i := 0; i < statsGenerations; i++ {
		grid.Step()
	}
	r.final = float64(grid.Population()) / cells
	return r, nil
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tSIZE\tPERIOD")
	for _, name := range life.PatternNames() {
		p, _ := life.LookupPattern(name)
		pw, ph := p.Size()
		fmt.Fprintf(w, "%s\t%dx%d\t%d\n", name, pw, ph, p.Period)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PRESET\tBOARD\tSEED\tTHEME")
	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\n", name, c.Width, c.Height, patternName(c.Pattern), c.Theme)
	}
	fmt.Fprintf(w, "\nthemes: %s\n", strings.Join(viz.ThemeNames(), ", "))
	return w.Flush()
}

func writeSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := app.NewSession(cfg, headlessWidth)
	if err != nil {
		return err
	}
	for i := 0; i < snapGenerations; i++ {
		s.StepOnce()
	}

	cam := viz.NewCamera()
	cam.SetAngles(s.Rotation().Angles())
	svg := export.SceneToSVG(s.Scene(), cam, imgW, imgH, viz.GetTheme(cfg.Theme).Floor)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Printf("wrote %s (generation %d, %d cubes)\n", outFile, s.Grid().Generation(), s.Scene().VisibleCount())
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	s, err := app.NewSession(sc.Config(), headlessWidth)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	results, runErr := automation.RunScenario(cmd.Context(), sc, s)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tGEN\tPOP\tCUBES\tANGLES\tLAYOUT")
	for _, r := range results {
		layout := "desktop"
		if r.Mobile {
			layout = "mobile"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%.0f/%.0f/%.0f\t%s\n",
			r.Step, r.Action, r.Generation, r.Population, r.Visible, r.Angles.X, r.Angles.Y, r.Angles.Z, layout)
	}
	w.Flush()
	fmt.Println()
	fmt.Print(s.Grid().String())
	return runErr
}

func patternName(p string) string {
	if p == "" {
		return "none"
	}
	return p
}
