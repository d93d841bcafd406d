// Package sweep runs a family of independent simulations that vary one
// parameter across a list of values, for each of several server counts.
package sweep

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/workload"
)

// Axis names the parameter being swept.
type Axis string

const (
	AxisServiceMean Axis = "service-mean"
	AxisArrivalMean Axis = "arrival-mean"
	AxisQueueSize   Axis = "queue-size"
)

var validAxes = map[Axis]bool{
	AxisServiceMean: true,
	AxisArrivalMean: true,
	AxisQueueSize:   true,
}

// IsValidAxis reports whether name is a recognized sweep axis.
func IsValidAxis(name string) bool {
	return validAxes[Axis(name)]
}

// Point is the outcome of one simulation in a sweep.
type Point struct {
	RunID          string
	Value          float64
	Servers        int
	MeanSojourn    float64
	BalkRatio      float64
	AvgQueueLength float64
}

// Apply returns a copy of base with the axis parameter set to v.
func Apply(base sim.Config, axis Axis, v float64) (sim.Config, error) {
	cfg := base
	switch axis {
	case AxisServiceMean:
		cfg.Arrival.MeanService = v
	case AxisArrivalMean:
		cfg.Arrival.MeanInterarrival = v
	case AxisQueueSize:
		if v != float64(int(v)) {
			return cfg, fmt.Errorf("%w: queue size %v is not an integer", sim.ErrInvalidConfig, v)
		}
		cfg.Queue.MaxLength = int(v)
	default:
		return cfg, fmt.Errorf("%w: unknown sweep axis %q", sim.ErrInvalidConfig, axis)
	}
	return cfg, nil
}

// Run simulates every (server count, value) pair with base as the starting
// configuration. Each point is a fresh simulator seeded with base.Seed, so
// points differ only in the swept parameter. Rows are ordered by server count
// and then by value, following the input order.
func Run(base sim.Config, axis Axis, values []float64, serverCounts []int) ([]Point, error) {
	if len(serverCounts) == 0 {
		serverCounts = []int{base.Pool.ServerCount}
	}
	points := make([]Point, 0, len(values)*len(serverCounts))
	for _, servers := range serverCounts {
		for _, v := range values {
			cfg, err := Apply(base, axis, v)
			if err != nil {
				return nil, err
			}
			cfg.Pool.ServerCount = servers
			p, err := runPoint(cfg)
			if err != nil {
				return nil, fmt.Errorf("%s=%v servers=%d: %w", axis, v, servers, err)
			}
			p.Value = v
			points = append(points, p)
		}
	}
	return points, nil
}

func runPoint(cfg sim.Config) (Point, error) {
	customers, err := workload.GenerateCustomers(cfg.Arrival, cfg.Seed)
	if err != nil {
		return Point{}, err
	}
	s, err := sim.NewSimulator(cfg, customers)
	if err != nil {
		return Point{}, err
	}
	runID := xid.New().String()
	log := logrus.WithField("run", runID)
	log.Debugf("sweep point: servers=%d mean_interarrival=%.3f mean_service=%.3f max_queue=%d",
		cfg.Pool.ServerCount, cfg.Arrival.MeanInterarrival, cfg.Arrival.MeanService, cfg.Queue.MaxLength)
	if err := s.Run(); err != nil {
		return Point{}, err
	}
	m := s.Metrics()
	log.Debugf("sweep point done: sojourn=%.3f balk=%.3f", m.MeanSojourn, m.BalkRatio)
	return Point{
		RunID:          runID,
		Servers:        cfg.Pool.ServerCount,
		MeanSojourn:    m.MeanSojourn,
		BalkRatio:      m.BalkRatio,
		AvgQueueLength: m.AvgQueueLength,
	}, nil
}
