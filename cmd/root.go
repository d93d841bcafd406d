package cmd

import (
	"os"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/sweep"
	"github.com/inference-sim/queue-sim/sim/trace"
	"github.com/inference-sim/queue-sim/sim/workload"
)

var (
	// CLI flags for the waiting-line model
	configPath       string  // Optional YAML config file
	seed             int64   // Seed for interarrival, service and server selection draws
	logLevel         string  // Log verbosity level
	meanInterarrival float64 // Mean time between arrivals
	meanService      float64 // Mean service duration
	customerCount    int     // Number of customers to generate
	distribution     string  // Distribution family for both streams
	serverCount      int     // Number of servers
	serverSelection  string  // Policy for choosing among idle servers
	maxQueueLength   int     // Wait queue capacity
	queueBound       string  // Capacity comparison rule
	traceLevel       string  // Event trace verbosity

	// run-only flags
	replications int    // Number of independent replications
	metricsOut   string // Optional YAML metrics output path

	// sweep-only flags
	sweepAxis    string    // Parameter to vary
	sweepValues  []float64 // Values for the swept parameter
	sweepServers []int     // Server counts to sweep over
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queue-sim",
	Short: "Discrete-event simulator for multi-server waiting lines",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes one simulation (or several replications) using parameters
// from the config file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the waiting-line simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)
		logrus.Infof("Starting simulation: servers=%d customers=%d mean_interarrival=%.3f mean_service=%.3f max_queue=%d (%s) dist=%s seed=%d",
			cfg.Pool.ServerCount, cfg.Arrival.CustomerCount, cfg.Arrival.MeanInterarrival, cfg.Arrival.MeanService,
			cfg.Queue.MaxLength, cfg.Queue.Bound, cfg.Arrival.Distribution, cfg.Seed)

		if err := checkRunFlags(cfg, replications); err != nil {
			logrus.Fatalf("%v", err)
		}

		if replications > 1 {
			summary, err := sweep.Replicate(cfg, replications)
			if err != nil {
				logrus.Fatalf("Replications failed: %v", err)
			}
			printReplications(summary)
			if metricsOut != "" {
				if err := writeReplications(metricsOut, summary); err != nil {
					logrus.Fatalf("Unable to write metrics: %v", err)
				}
			}
			return
		}

		customers, err := workload.GenerateCustomers(cfg.Arrival, cfg.Seed)
		if err != nil {
			logrus.Fatalf("Unable to generate customers: %v", err)
		}
		s, err := sim.NewSimulator(cfg, customers)
		if err != nil {
			logrus.Fatalf("Unable to build simulator: %v", err)
		}
		runID := xid.New().String()
		if err := s.Run(); err != nil {
			logrus.WithField("run", runID).Fatalf("Simulation failed: %v", err)
		}

		m := s.Metrics()
		m.RunID = runID
		m.Print()
		if s.Trace.Enabled() {
			printTraceSummary(trace.Summarize(s.Trace))
		}
		if metricsOut != "" {
			if err := writeMetrics(metricsOut, m); err != nil {
				logrus.Fatalf("Unable to write metrics: %v", err)
			}
		}
		logrus.WithField("run", runID).Info("Simulation complete.")
	},
}

// sweepCmd varies one parameter across a list of values for each server count
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep one parameter over a list of values",
	Run: func(cmd *cobra.Command, args []string) {
		if !sweep.IsValidAxis(sweepAxis) {
			logrus.Fatalf("Unknown sweep axis %q; valid: service-mean, arrival-mean, queue-size", sweepAxis)
		}
		if len(sweepValues) == 0 {
			logrus.Fatalf("--values must list at least one value")
		}
		cfg := resolveConfig(cmd)
		points, err := sweep.Run(cfg, sweep.Axis(sweepAxis), sweepValues, sweepServers)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		printSweep(sweep.Axis(sweepAxis), points)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerModelFlags adds the flags shared by run and sweep.
func registerModelFlags(cmd *cobra.Command) {
	def := sim.DefaultConfig()
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file; explicit flags override its values")
	cmd.Flags().Int64Var(&seed, "seed", def.Seed, "Seed for random draws")
	cmd.Flags().Float64Var(&meanInterarrival, "mean-interarrival", def.Arrival.MeanInterarrival, "Mean time between arrivals")
	cmd.Flags().Float64Var(&meanService, "mean-service", def.Arrival.MeanService, "Mean service duration")
	cmd.Flags().IntVar(&customerCount, "customers", def.Arrival.CustomerCount, "Number of customers")
	cmd.Flags().StringVar(&distribution, "distribution", def.Arrival.Distribution, "Distribution family (exponential, poisson)")
	cmd.Flags().IntVar(&serverCount, "servers", def.Pool.ServerCount, "Number of servers")
	cmd.Flags().StringVar(&serverSelection, "server-selection", string(def.Pool.Selection), "Idle server choice (first-idle, random)")
	cmd.Flags().IntVar(&maxQueueLength, "max-queue", def.Queue.MaxLength, "Wait queue capacity")
	cmd.Flags().StringVar(&queueBound, "queue-bound", string(def.Queue.Bound), "Capacity rule (strict: len >= max rejects, lenient: len > max rejects)")
	cmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Event trace level (none, events)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	registerModelFlags(runCmd)
	runCmd.Flags().IntVar(&replications, "replications", 1, "Number of independent replications (seed, seed+1, ...)")
	runCmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write run metrics as YAML to this path (a list, one entry per replication, when --replications > 1)")

	registerModelFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepAxis, "axis", string(sweep.AxisServiceMean), "Parameter to sweep (service-mean, arrival-mean, queue-size)")
	sweepCmd.Flags().Float64SliceVar(&sweepValues, "values", nil, "Comma-separated values for the swept parameter")
	sweepCmd.Flags().IntSliceVar(&sweepServers, "servers-list", nil, "Comma-separated server counts (default: --servers)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
