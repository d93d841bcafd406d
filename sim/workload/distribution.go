package workload

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inference-sim/queue-sim/sim"
)

// Sampler draws non-negative time values with a fixed mean.
type Sampler interface {
	Sample() float64
	Mean() float64
}

// ExponentialSampler draws exponentially-distributed times.
type ExponentialSampler struct {
	dist distuv.Exponential
}

func (s *ExponentialSampler) Sample() float64 { return s.dist.Rand() }
func (s *ExponentialSampler) Mean() float64   { return s.dist.Mean() }

// PoissonSampler draws Poisson-distributed counts, used as integral times.
// Zero is a legal draw.
type PoissonSampler struct {
	dist distuv.Poisson
}

func (s *PoissonSampler) Sample() float64 { return s.dist.Rand() }
func (s *PoissonSampler) Mean() float64   { return s.dist.Mean() }

// NewSampler creates a Sampler for the named distribution family.
// Unknown families and non-positive means fail with sim.ErrInvalidConfig.
func NewSampler(distribution string, mean float64, src rand.Source) (Sampler, error) {
	if mean <= 0 {
		return nil, fmt.Errorf("%w: distribution mean must be positive, got %f", sim.ErrInvalidConfig, mean)
	}
	switch distribution {
	case sim.DistExponential:
		return &ExponentialSampler{dist: distuv.Exponential{Rate: 1 / mean, Src: src}}, nil
	case sim.DistPoisson:
		return &PoissonSampler{dist: distuv.Poisson{Lambda: mean, Src: src}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown distribution type %q", sim.ErrInvalidConfig, distribution)
	}
}
