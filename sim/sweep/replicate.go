package sweep

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/workload"
)

// ReplicationSummary aggregates n independent replications of one configuration.
type ReplicationSummary struct {
	Runs            []sim.Metrics
	MeanSojourn     float64
	StdDevSojourn   float64
	MeanBalkRatio   float64
	StdDevBalkRatio float64
	MeanQueueLength float64
}

// Replicate runs n replications of cfg on one Simulator, reset between runs.
// Replication i uses seed cfg.Seed+i for both customer generation and server
// selection.
func Replicate(cfg sim.Config, n int) (*ReplicationSummary, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: replications must be >= 1, got %d", sim.ErrInvalidConfig, n)
	}
	customers, err := workload.GenerateCustomers(cfg.Arrival, cfg.Seed)
	if err != nil {
		return nil, err
	}
	s, err := sim.NewSimulator(cfg, customers)
	if err != nil {
		return nil, err
	}

	summary := &ReplicationSummary{Runs: make([]sim.Metrics, 0, n)}
	sojourns := make([]float64, 0, n)
	balks := make([]float64, 0, n)
	queues := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			seed := cfg.Seed + int64(i)
			next, err := workload.GenerateCustomers(cfg.Arrival, seed)
			if err != nil {
				return nil, err
			}
			s.Reset(seed, next)
		}
		runID := xid.New().String()
		logrus.WithField("run", runID).Infof("replication %d/%d (seed %d)", i+1, n, s.Config().Seed)
		if err := s.Run(); err != nil {
			return nil, err
		}
		m := s.Metrics()
		m.RunID = runID
		summary.Runs = append(summary.Runs, m)
		sojourns = append(sojourns, m.MeanSojourn)
		balks = append(balks, m.BalkRatio)
		queues = append(queues, m.AvgQueueLength)
	}

	summary.MeanSojourn, summary.StdDevSojourn = meanStdDev(sojourns)
	summary.MeanBalkRatio, summary.StdDevBalkRatio = meanStdDev(balks)
	summary.MeanQueueLength = stat.Mean(queues, nil)
	return summary, nil
}

// meanStdDev returns the sample mean and standard deviation; the deviation
// is zero for fewer than two values.
func meanStdDev(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	if len(x) < 2 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
