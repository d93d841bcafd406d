package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero mean interarrival", func(c *Config) { c.Arrival.MeanInterarrival = 0 }},
		{"negative mean service", func(c *Config) { c.Arrival.MeanService = -1 }},
		{"NaN mean service", func(c *Config) { c.Arrival.MeanService = math.NaN() }},
		{"infinite mean interarrival", func(c *Config) { c.Arrival.MeanInterarrival = math.Inf(1) }},
		{"zero customers", func(c *Config) { c.Arrival.CustomerCount = 0 }},
		{"unknown distribution", func(c *Config) { c.Arrival.Distribution = "uniform" }},
		{"zero servers", func(c *Config) { c.Pool.ServerCount = 0 }},
		{"unknown selection", func(c *Config) { c.Pool.Selection = "round-robin" }},
		{"negative queue", func(c *Config) { c.Queue.MaxLength = -1 }},
		{"unknown bound", func(c *Config) { c.Queue.Bound = "loose" }},
		{"unknown trace level", func(c *Config) { c.TraceLevel = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestConfig_Validate_AcceptsBoundaryValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Queue.MaxLength = 0
	cfg.Arrival.Distribution = DistPoisson
	cfg.Pool.Selection = ""
	cfg.Queue.Bound = ""
	assert.NoError(t, cfg.Validate())
}
