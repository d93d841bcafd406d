package sweep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/queue-sim/sim"
)

func smallConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Arrival.CustomerCount = 20
	return cfg
}

func TestApply_SetsOnlyTheAxisParameter(t *testing.T) {
	base := smallConfig()
	tests := []struct {
		axis  Axis
		value float64
		check func(t *testing.T, cfg sim.Config)
	}{
		{AxisServiceMean, 3.5, func(t *testing.T, cfg sim.Config) {
			assert.Equal(t, 3.5, cfg.Arrival.MeanService)
			assert.Equal(t, base.Arrival.MeanInterarrival, cfg.Arrival.MeanInterarrival)
		}},
		{AxisArrivalMean, 2, func(t *testing.T, cfg sim.Config) {
			assert.Equal(t, 2.0, cfg.Arrival.MeanInterarrival)
			assert.Equal(t, base.Arrival.MeanService, cfg.Arrival.MeanService)
		}},
		{AxisQueueSize, 4, func(t *testing.T, cfg sim.Config) {
			assert.Equal(t, 4, cfg.Queue.MaxLength)
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.axis), func(t *testing.T) {
			cfg, err := Apply(base, tt.axis, tt.value)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestApply_FractionalQueueSize_Rejected(t *testing.T) {
	_, err := Apply(smallConfig(), AxisQueueSize, 2.5)
	assert.True(t, errors.Is(err, sim.ErrInvalidConfig), "got %v", err)
}

func TestApply_UnknownAxis_Rejected(t *testing.T) {
	_, err := Apply(smallConfig(), Axis("seed"), 1)
	assert.True(t, errors.Is(err, sim.ErrInvalidConfig), "got %v", err)
	assert.False(t, IsValidAxis("seed"))
	assert.True(t, IsValidAxis("queue-size"))
}

func TestRun_OneRowPerServerCountAndValue(t *testing.T) {
	// GIVEN two server counts and three service means
	values := []float64{2, 5, 8}
	servers := []int{1, 3}

	// WHEN the sweep runs
	points, err := Run(smallConfig(), AxisServiceMean, values, servers)
	require.NoError(t, err)

	// THEN rows are grouped by server count, values in input order
	require.Len(t, points, 6)
	for i, p := range points {
		assert.Equal(t, servers[i/len(values)], p.Servers)
		assert.Equal(t, values[i%len(values)], p.Value)
		assert.NotEmpty(t, p.RunID)
		assert.GreaterOrEqual(t, p.BalkRatio, 0.0)
		assert.LessOrEqual(t, p.BalkRatio, 1.0)
	}
}

func TestRun_NoServerCounts_UsesBase(t *testing.T) {
	base := smallConfig()
	base.Pool.ServerCount = 2
	points, err := Run(base, AxisArrivalMean, []float64{4}, nil)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 2, points[0].Servers)
}

func TestRun_InvalidValue_ReturnsError(t *testing.T) {
	_, err := Run(smallConfig(), AxisServiceMean, []float64{-1}, []int{1})
	assert.True(t, errors.Is(err, sim.ErrInvalidConfig), "got %v", err)
}

func TestReplicate_RunsNAndIsDeterministic(t *testing.T) {
	// GIVEN a config replicated 3 times twice
	cfg := smallConfig()
	a, err := Replicate(cfg, 3)
	require.NoError(t, err)
	b, err := Replicate(cfg, 3)
	require.NoError(t, err)

	// THEN both summaries hold 3 runs with identical statistics
	require.Len(t, a.Runs, 3)
	assert.Equal(t, a.MeanSojourn, b.MeanSojourn)
	assert.Equal(t, a.StdDevSojourn, b.StdDevSojourn)
	assert.Equal(t, a.MeanBalkRatio, b.MeanBalkRatio)
	for i := range a.Runs {
		assert.Equal(t, cfg.Arrival.CustomerCount, a.Runs[i].Customers)
		assert.Equal(t, a.Runs[i].FinalClock, b.Runs[i].FinalClock)
		assert.NotEmpty(t, a.Runs[i].RunID)
	}
}

func TestReplicate_FirstRunMatchesSingleRun(t *testing.T) {
	cfg := smallConfig()
	single, err := Replicate(cfg, 1)
	require.NoError(t, err)
	multi, err := Replicate(cfg, 2)
	require.NoError(t, err)
	assert.Equal(t, single.Runs[0].FinalClock, multi.Runs[0].FinalClock)
	assert.Equal(t, 0.0, single.StdDevSojourn)
}

func TestReplicate_ZeroRuns_Rejected(t *testing.T) {
	_, err := Replicate(smallConfig(), 0)
	assert.True(t, errors.Is(err, sim.ErrInvalidConfig), "got %v", err)
}
