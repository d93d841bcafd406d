package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/sweep"
	"github.com/inference-sim/queue-sim/sim/trace"
)

// LoadConfig reads a YAML config file on top of sim.DefaultConfig.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadConfig(path string) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// applyFlagOverrides copies every explicitly set flag into cfg.
// Flags left at their defaults never override file values.
func applyFlagOverrides(cmd *cobra.Command, cfg *sim.Config) {
	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Seed = seed
	}
	if changed("mean-interarrival") {
		cfg.Arrival.MeanInterarrival = meanInterarrival
	}
	if changed("mean-service") {
		cfg.Arrival.MeanService = meanService
	}
	if changed("customers") {
		cfg.Arrival.CustomerCount = customerCount
	}
	if changed("distribution") {
		cfg.Arrival.Distribution = distribution
	}
	if changed("servers") {
		cfg.Pool.ServerCount = serverCount
	}
	if changed("server-selection") {
		cfg.Pool.Selection = sim.ServerSelection(serverSelection)
	}
	if changed("max-queue") {
		cfg.Queue.MaxLength = maxQueueLength
	}
	if changed("queue-bound") {
		cfg.Queue.Bound = sim.QueueBound(queueBound)
	}
	if changed("trace-level") {
		cfg.TraceLevel = traceLevel
	}
}

// resolveConfig builds the effective config: defaults, then the config file,
// then explicit flags. Invalid configs are fatal.
func resolveConfig(cmd *cobra.Command) sim.Config {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Failed to load config %s: %v", configPath, err)
		}
		cfg = loaded
	}
	applyFlagOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("%v", err)
	}
	return cfg
}

// checkRunFlags rejects flag combinations the run command cannot honor.
// Replications share one simulator, so no single event trace exists.
func checkRunFlags(cfg sim.Config, replications int) error {
	if replications < 1 {
		return fmt.Errorf("--replications must be >= 1, got %d", replications)
	}
	if replications > 1 && trace.TraceLevel(cfg.TraceLevel) == trace.TraceLevelEvents {
		return fmt.Errorf("--trace-level %s is not supported with --replications %d", cfg.TraceLevel, replications)
	}
	return nil
}

// writeMetrics saves m as YAML.
func writeMetrics(path string, m sim.Metrics) error {
	return writeYAML(path, m)
}

// writeReplications saves every replication's metrics as a YAML list, in run order.
func writeReplications(path string, s *sweep.ReplicationSummary) error {
	return writeYAML(path, s.Runs)
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
