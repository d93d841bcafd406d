package sim

import (
	"fmt"
	"math"

	"github.com/inference-sim/queue-sim/sim/trace"
)

// Distribution families supported by the arrival generator.
const (
	DistExponential = "exponential"
	DistPoisson     = "poisson"
)

var validDistributions = map[string]bool{
	DistExponential: true,
	DistPoisson:     true,
}

// IsValidDistribution reports whether name is a supported distribution family.
func IsValidDistribution(name string) bool {
	return validDistributions[name]
}

// ArrivalConfig groups arrival generation parameters.
type ArrivalConfig struct {
	MeanInterarrival float64 `yaml:"mean_interarrival"` // must be > 0
	MeanService      float64 `yaml:"mean_service"`      // must be > 0
	CustomerCount    int     `yaml:"customer_count"`    // must be > 0
	Distribution     string  `yaml:"distribution"`      // "exponential" or "poisson"
}

// PoolConfig groups server pool parameters.
type PoolConfig struct {
	ServerCount int             `yaml:"server_count"`     // must be > 0
	Selection   ServerSelection `yaml:"server_selection"` // "first-idle" (default) or "random"
}

// QueueConfig groups wait queue parameters.
type QueueConfig struct {
	MaxLength int        `yaml:"max_queue_length"` // must be >= 0
	Bound     QueueBound `yaml:"queue_bound"`      // "strict" (default) or "lenient"
}

// Config is the full simulation configuration.
type Config struct {
	Arrival    ArrivalConfig `yaml:",inline"`
	Pool       PoolConfig    `yaml:",inline"`
	Queue      QueueConfig   `yaml:",inline"`
	Seed       int64         `yaml:"seed"`
	TraceLevel string        `yaml:"trace_level"`
}

// DefaultConfig mirrors the reference scenario: one server, mean interarrival 5,
// mean service 10, 50 customers, queue capacity 10, exponential draws.
func DefaultConfig() Config {
	return Config{
		Arrival: ArrivalConfig{
			MeanInterarrival: 5,
			MeanService:      10,
			CustomerCount:    50,
			Distribution:     DistExponential,
		},
		Pool:  PoolConfig{ServerCount: 1, Selection: SelectFirstIdle},
		Queue: QueueConfig{MaxLength: 10, Bound: BoundStrict},
		Seed:  42,
	}
}

// Validate checks every field. All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.Arrival.Validate(); err != nil {
		return err
	}
	if c.Pool.ServerCount <= 0 {
		return fmt.Errorf("%w: server_count must be positive, got %d", ErrInvalidConfig, c.Pool.ServerCount)
	}
	if !IsValidServerSelection(string(c.Pool.Selection)) {
		return fmt.Errorf("%w: unknown server_selection %q; valid: first-idle, random", ErrInvalidConfig, c.Pool.Selection)
	}
	if c.Queue.MaxLength < 0 {
		return fmt.Errorf("%w: max_queue_length must be non-negative, got %d", ErrInvalidConfig, c.Queue.MaxLength)
	}
	if !IsValidQueueBound(string(c.Queue.Bound)) {
		return fmt.Errorf("%w: unknown queue_bound %q; valid: strict, lenient", ErrInvalidConfig, c.Queue.Bound)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("%w: unknown trace_level %q; valid: none, events", ErrInvalidConfig, c.TraceLevel)
	}
	return nil
}

// Validate checks the arrival parameters.
func (a ArrivalConfig) Validate() error {
	if err := validateFinitePositive("mean_interarrival", a.MeanInterarrival); err != nil {
		return err
	}
	if err := validateFinitePositive("mean_service", a.MeanService); err != nil {
		return err
	}
	if a.CustomerCount <= 0 {
		return fmt.Errorf("%w: customer_count must be positive, got %d", ErrInvalidConfig, a.CustomerCount)
	}
	if !IsValidDistribution(a.Distribution) {
		return fmt.Errorf("%w: unknown distribution %q; valid: exponential, poisson", ErrInvalidConfig, a.Distribution)
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %f", ErrInvalidConfig, name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %f", ErrInvalidConfig, name, val)
	}
	return nil
}
