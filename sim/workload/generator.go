package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim"
)

// ArrivalGenerator produces customers with cumulative arrival times and
// independently drawn service durations. Interarrival gaps and service
// durations come from separate RNG subsystems, so changing one never shifts
// the other's stream.
type ArrivalGenerator struct {
	config       sim.ArrivalConfig
	interarrival *SamplePool
	service      *SamplePool
}

// NewArrivalGenerator validates cfg and provisions one pool of
// cfg.CustomerCount samples per stream. Configuration errors surface here,
// never at draw time.
func NewArrivalGenerator(cfg sim.ArrivalConfig, rng *sim.PartitionedRNG) (*ArrivalGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	interSampler, err := NewSampler(cfg.Distribution, cfg.MeanInterarrival, rng.ForSubsystem(sim.SubsystemInterarrival))
	if err != nil {
		return nil, fmt.Errorf("interarrival: %w", err)
	}
	serviceSampler, err := NewSampler(cfg.Distribution, cfg.MeanService, rng.ForSubsystem(sim.SubsystemService))
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return &ArrivalGenerator{
		config:       cfg,
		interarrival: NewSamplePool("interarrival", interSampler, cfg.CustomerCount),
		service:      NewSamplePool("service", serviceSampler, cfg.CustomerCount),
	}, nil
}

// Generate returns exactly CustomerCount customers in arrival order with
// sequential IDs starting at 0. Customer i arrives at the sum of the first
// i+1 interarrival draws.
func (g *ArrivalGenerator) Generate() []*sim.Customer {
	customers := make([]*sim.Customer, g.config.CustomerCount)
	now := 0.0
	for i := range customers {
		gap := g.interarrival.Next()
		service := g.service.Next()
		now += gap
		customers[i] = sim.NewCustomer(i, now, gap, service)
		logrus.Debugf("Customer %d arrival %.5f service %.5f", i, now, service)
	}
	return customers
}

// Regenerations returns the total pool regenerations across both streams.
func (g *ArrivalGenerator) Regenerations() int {
	return g.interarrival.Regenerations + g.service.Regenerations
}

// GenerateCustomers is a convenience wrapper: build a generator for cfg and
// seed, and draw one batch of customers.
func GenerateCustomers(cfg sim.ArrivalConfig, seed int64) ([]*sim.Customer, error) {
	gen, err := NewArrivalGenerator(cfg, sim.NewPartitionedRNG(sim.NewSimulationKey(seed)))
	if err != nil {
		return nil, err
	}
	return gen.Generate(), nil
}
