package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cartsim/cartsim/sim"
	"github.com/cartsim/cartsim/sim/trace"
)

var (
	// CLI flags for the run command
	inputPath      string // Track file; empty or "-" reads stdin
	configPath     string // Optional YAML run config
	resultsPath    string // Optional JSON results file
	logLevel       string // Log verbosity level
	maxTicks       int    // Tick limit (0 = run until a terminal state)
	cartCells      string // What the grid stores under a cart's starting glyph
	strictTrack    bool   // Treat blank cells as off-track
	traceLevel     string // Collision / tick recording
	printSnapshots bool   // Print alive cart positions after every tick
	renderEvery    int    // Log the rendered track every N ticks at trace level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cartsim",
	Short: "Tick-based cart collision simulator for grid tracks",
}

// runOptions is the resolved configuration of one run, after merging the
// YAML config file with explicitly set flags.
type runOptions struct {
	MaxTicks       int
	CartCells      sim.CartCellPolicy
	StrictTrack    bool
	TraceLevel     trace.TraceLevel
	PrintSnapshots bool
	RenderEvery    int
	ResultsPath    string
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cart simulation on a track",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		opts, err := resolveOptions(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		in := io.Reader(os.Stdin)
		if inputPath != "" && inputPath != "-" {
			f, err := os.Open(inputPath)
			if err != nil {
				logrus.Fatalf("Failed to open track file: %v", err)
			}
			defer func() { _ = f.Close() }()
			in = f
		}

		if err := runSimulation(opts, in, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// resolveOptions starts from the YAML config (if any) and lets flags the
// user set explicitly override it.
func resolveOptions(cmd *cobra.Command) (runOptions, error) {
	opts := runOptions{
		MaxTicks:       maxTicks,
		CartCells:      sim.CartCellPolicy(cartCells),
		StrictTrack:    strictTrack,
		TraceLevel:     trace.TraceLevel(traceLevel),
		PrintSnapshots: printSnapshots,
		RenderEvery:    renderEvery,
		ResultsPath:    resultsPath,
	}
	if configPath != "" {
		cfg, err := sim.LoadRunConfig(configPath)
		if err != nil {
			return opts, err
		}
		if err := cfg.Validate(); err != nil {
			return opts, err
		}
		applyRunConfig(&opts, cfg, cmd.Flags().Changed)
	}

	if !sim.ValidCartCellPolicies[opts.CartCells] {
		return opts, fmt.Errorf("unknown cart cell policy %q", opts.CartCells)
	}
	if !trace.IsValidTraceLevel(string(opts.TraceLevel)) {
		return opts, fmt.Errorf("unknown trace level %q", opts.TraceLevel)
	}
	if opts.MaxTicks < 0 {
		return opts, fmt.Errorf("max-ticks must be non-negative, got %d", opts.MaxTicks)
	}
	return opts, nil
}

// applyRunConfig copies values set in cfg into opts, skipping any flag
// for which changed reports true.
func applyRunConfig(opts *runOptions, cfg *sim.RunConfig, changed func(string) bool) {
	if cfg.MaxTicks != nil && !changed("max-ticks") {
		opts.MaxTicks = *cfg.MaxTicks
	}
	if cfg.CartCells != "" && !changed("cart-cells") {
		opts.CartCells = sim.CartCellPolicy(cfg.CartCells)
	}
	if cfg.StrictTrack != nil && !changed("strict-track") {
		opts.StrictTrack = *cfg.StrictTrack
	}
	if cfg.TraceLevel != "" && !changed("trace") {
		opts.TraceLevel = trace.TraceLevel(cfg.TraceLevel)
	}
	if cfg.PrintSnapshots != nil && !changed("snapshots") {
		opts.PrintSnapshots = *cfg.PrintSnapshots
	}
	if cfg.RenderEvery != nil && !changed("render-every") {
		opts.RenderEvery = *cfg.RenderEvery
	}
}

// runSimulation parses the track from in, runs it to the end and prints the
// per-tick snapshots and final results to out.
func runSimulation(opts runOptions, in io.Reader, out io.Writer) error {
	grid, carts, err := sim.ParseGrid(in, opts.CartCells)
	if err != nil {
		return err
	}
	logrus.Infof("Loaded %dx%d track with %d carts", grid.Width(), grid.Height(), len(carts))

	cfg := sim.NewConfig(opts.MaxTicks, opts.StrictTrack, opts.RenderEvery, opts.TraceLevel)
	if opts.PrintSnapshots {
		cfg.OnSnapshot = func(snap sim.Snapshot) {
			fmt.Fprintln(out, snap)
		}
	}

	s := sim.NewSimulator(grid, carts, cfg)
	res, err := s.Run()
	if err != nil {
		return err
	}

	printResults(out, res)
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		s.Metrics.Print(out)
	}
	if opts.ResultsPath != "" {
		if err := SaveResults(opts.ResultsPath, res, s.Metrics, s.Trace); err != nil {
			return err
		}
		logrus.Infof("Results written to %s", opts.ResultsPath)
	}
	return nil
}

func formatCoord(c *sim.Coord) string {
	if c == nil {
		return "none"
	}
	return c.String()
}

func printResults(out io.Writer, res *sim.Result) {
	fmt.Fprintf(out, "first collision: %s\n", formatCoord(res.FirstCollision))
	fmt.Fprintf(out, "last cart: %s\n", formatCoord(res.LastSurvivor))
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "", "Track file to read (default: stdin)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration file")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write results, metrics and trace summary as JSON to this file")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "Stop after this many ticks (0 = run until one or no carts remain)")
	runCmd.Flags().StringVar(&cartCells, "cart-cells", string(sim.CartCellRaw), "Grid symbol under a cart's start cell: raw (keep the cart glyph) or track (implied straight track)")
	runCmd.Flags().BoolVar(&strictTrack, "strict-track", false, "Abort when a cart lands on a blank cell")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Trace level (none, collisions, ticks)")
	runCmd.Flags().BoolVar(&printSnapshots, "snapshots", true, "Print alive cart positions after every tick")
	runCmd.Flags().IntVar(&renderEvery, "render-every", 0, "Log the rendered track every N ticks at trace log level (0 = never)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
