package workload

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/queue-sim/sim"
)

func TestExponentialSampler_MeanMatches(t *testing.T) {
	// GIVEN an exponential sampler with mean 5
	s, err := NewSampler(sim.DistExponential, 5, rand.NewPCG(42, 1))
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.Mean())

	// WHEN 20000 samples are drawn
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := s.Sample()
		require.GreaterOrEqual(t, v, 0.0)
		sum += v
	}

	// THEN the sample mean is within 5% of 5
	mean := sum / float64(n)
	if math.Abs(mean-5)/5 > 0.05 {
		t.Errorf("exponential mean = %.3f, want ≈ 5 (within 5%%)", mean)
	}
}

func TestPoissonSampler_IntegralDrawsWithMatchingMean(t *testing.T) {
	// GIVEN a Poisson sampler with mean 10
	s, err := NewSampler(sim.DistPoisson, 10, rand.NewPCG(42, 2))
	require.NoError(t, err)

	// WHEN 20000 samples are drawn
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := s.Sample()
		require.Equal(t, math.Trunc(v), v, "Poisson draws are whole numbers")
		sum += v
	}

	// THEN the sample mean is within 5% of 10
	mean := sum / float64(n)
	if math.Abs(mean-10)/10 > 0.05 {
		t.Errorf("poisson mean = %.3f, want ≈ 10 (within 5%%)", mean)
	}
}

func TestNewSampler_Rejects(t *testing.T) {
	tests := []struct {
		name string
		dist string
		mean float64
	}{
		{"unknown family", "uniform", 5},
		{"zero mean", sim.DistExponential, 0},
		{"negative mean", sim.DistPoisson, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSampler(tt.dist, tt.mean, rand.NewPCG(1, 1))
			assert.True(t, errors.Is(err, sim.ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestSampler_SameSourceSeed_SameDraws(t *testing.T) {
	a, err := NewSampler(sim.DistExponential, 3, rand.NewPCG(9, 9))
	require.NoError(t, err)
	b, err := NewSampler(sim.DistExponential, 3, rand.NewPCG(9, 9))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Sample(), b.Sample())
	}
}
