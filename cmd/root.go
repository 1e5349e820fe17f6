package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/queueing-sim/sim"
	"github.com/inference-sim/queueing-sim/sim/analysis"
	"github.com/inference-sim/queueing-sim/sim/experiment"
	"github.com/inference-sim/queueing-sim/sim/trace"
)

var (
	// CLI flags for the queueing model
	configPath        string  // Optional YAML run config
	seed              int64   // Seed for the variate stream
	logLevel          string  // Log verbosity level
	meanInterarrival  float64 // Mean time between arrivals
	meanService       float64 // Mean service time
	numDelaysRequired int     // Customers that must begin service
	queueCapacity     int     // Max customers in the waiting line
	maxTime           float64 // Optional clock bound (0 = none)
	maxEvents         int     // Optional event-count bound (0 = none)

	// CLI flags for experiments and output
	replications int    // Number of independent replications
	parallelism  int    // Concurrent replications (0 = GOMAXPROCS)
	outputFormat string // "text" or "json"
	showTheory   bool   // Include M/M/1 closed-form results
	traceSummary bool   // Record events and print a trace summary
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queueing-sim",
	Short: "Discrete-event simulator for a single-server queue",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the single-server queue simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		rc, err := resolveRunConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Starting simulation: mean_interarrival=%g mean_service=%g customers=%d capacity=%d seed=%d replications=%d",
			rc.MeanInterarrival, rc.MeanService, rc.NumDelaysRequired, rc.QueueCapacity, rc.Seed, rc.Replications)
		startTime := time.Now()

		if err := execute(cmd.Context(), rc, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// resolveRunConfig layers defaults, the optional --config file, and any
// flags the user explicitly set, in that order.
func resolveRunConfig(cmd *cobra.Command) (RunConfig, error) {
	rc := defaultRunConfig()
	if configPath != "" {
		loaded, err := loadRunConfig(configPath)
		if err != nil {
			return rc, err
		}
		rc = loaded
	}

	// Flags override YAML only when set, so file values are not clobbered by flag defaults.
	flags := cmd.Flags()
	if flags.Changed("seed") {
		rc.Seed = seed
	}
	if flags.Changed("mean-interarrival") {
		rc.MeanInterarrival = meanInterarrival
	}
	if flags.Changed("mean-service") {
		rc.MeanService = meanService
	}
	if flags.Changed("num-delays") {
		rc.NumDelaysRequired = numDelaysRequired
	}
	if flags.Changed("queue-capacity") {
		rc.QueueCapacity = queueCapacity
	}
	if flags.Changed("max-time") {
		rc.MaxTime = maxTime
	}
	if flags.Changed("max-events") {
		rc.MaxEvents = maxEvents
	}
	if flags.Changed("replications") {
		rc.Replications = replications
	}
	if flags.Changed("parallelism") {
		rc.Parallelism = parallelism
	}
	if traceSummary {
		rc.TraceLevel = string(trace.TraceLevelEvents)
	}

	if outputFormat != "text" && outputFormat != "json" {
		return rc, fmt.Errorf("unknown output format %q (want text or json)", outputFormat)
	}
	if err := rc.Validate(); err != nil {
		return rc, err
	}
	return rc, nil
}

// execute runs one simulation, or an experiment when more than one
// replication is requested, and writes the report to w.
func execute(ctx context.Context, rc RunConfig, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var theory *analysis.MM1
	if showTheory {
		m, err := analysis.NewMM1(rc.MeanInterarrival, rc.MeanService)
		if err != nil {
			return err
		}
		// +Inf measures cannot be encoded as JSON
		if m.Stable || outputFormat == "text" {
			theory = m
		}
	}

	if rc.Replications > 1 {
		res, err := experiment.Run(ctx, rc.Config, experiment.Options{
			Replications: rc.Replications,
			Parallelism:  rc.Parallelism,
		})
		if err != nil {
			return err
		}
		if outputFormat == "json" {
			return writeJSON(w, experimentReport{Config: rc, Result: res, Theory: theory})
		}
		writeExperimentText(w, rc, res, theory)
		return nil
	}

	s, err := sim.NewSimulator(rc.Config)
	if err != nil {
		return err
	}
	stats, err := s.Run()
	if err != nil {
		return fmt.Errorf("run %s: %w", s.ID(), err)
	}

	var summary *trace.TraceSummary
	if s.Trace() != nil {
		summary = trace.Summarize(s.Trace())
	}
	if outputFormat == "json" {
		return writeJSON(w, singleRunReport{Config: rc.Config, Statistics: stats, Theory: theory, Trace: summary})
	}
	writeTextReport(w, rc.Config, stats, theory, summary)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerRunFlags binds the run flags to cmd, resetting every flag
// variable to its default.
func registerRunFlags(cmd *cobra.Command) {
	defaults := sim.DefaultConfig()

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run config")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for the random variate stream")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Queueing model
	cmd.Flags().Float64Var(&meanInterarrival, "mean-interarrival", defaults.MeanInterarrival, "Mean time between customer arrivals")
	cmd.Flags().Float64Var(&meanService, "mean-service", defaults.MeanService, "Mean service time")
	cmd.Flags().IntVar(&numDelaysRequired, "num-delays", defaults.NumDelaysRequired, "Number of customers that must begin service")
	cmd.Flags().IntVar(&queueCapacity, "queue-capacity", defaults.QueueCapacity, "Maximum number of customers in the waiting line")
	cmd.Flags().Float64Var(&maxTime, "max-time", 0, "Stop once the clock reaches this time (0 = no limit)")
	cmd.Flags().IntVar(&maxEvents, "max-events", 0, "Stop after this many events (0 = no limit)")

	// Experiments and output
	cmd.Flags().IntVar(&replications, "replications", 1, "Number of independent replications")
	cmd.Flags().IntVar(&parallelism, "parallelism", 0, "Replications run concurrently (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&outputFormat, "output", "text", "Report format (text or json)")
	cmd.Flags().BoolVar(&showTheory, "theory", false, "Compare with M/M/1 closed-form results")
	cmd.Flags().BoolVar(&traceSummary, "trace-summary", false, "Record every event and print a trace summary")
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
