// Aggregates per-customer, per-server and wait-queue records into the
// run's summary statistics once the simulator has drained.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	RunID               string    `yaml:"run_id,omitempty"`
	Customers           int       `yaml:"customers"`
	Served              int       `yaml:"served"`
	Balked              int       `yaml:"balked"`
	BalkRatio           float64   `yaml:"balk_ratio"`
	Waited              int       `yaml:"waited"` // served customers that passed through the wait queue
	MeanWait            float64   `yaml:"mean_wait"`
	MeanService         float64   `yaml:"mean_service"`
	MeanSojourn         float64   `yaml:"mean_sojourn"` // wait + service, served customers only
	AvgQueueLength      float64   `yaml:"avg_queue_length"`
	PeakQueueLength     int       `yaml:"peak_queue_length"`
	ServerUtilization   []float64 `yaml:"server_utilization"`
	ConsistencyWarnings int       `yaml:"consistency_warnings"`
	FinalClock          float64   `yaml:"final_clock"`
}

// Metrics computes summary statistics at the current clock time.
// Meaningful once the simulator is DRAINED.
func (sim *Simulator) Metrics() Metrics {
	now := sim.Clock.Current()
	m := Metrics{
		Customers:           len(sim.Customers),
		Balked:              sim.balked,
		AvgQueueLength:      sim.WaitQ.TimeWeightedAverage(now),
		PeakQueueLength:     sim.WaitQ.Peak(),
		ConsistencyWarnings: sim.ConsistencyWarnings(),
		FinalClock:          now,
	}

	var waits, services, sojourns []float64
	for _, c := range sim.Customers {
		sojourn, ok := c.Sojourn()
		if !ok {
			continue
		}
		if _, waited := c.WaitStart(); waited {
			m.Waited++
		}
		waits = append(waits, c.WaitLength())
		services = append(services, c.ServiceDuration)
		sojourns = append(sojourns, sojourn)
	}
	m.Served = len(sojourns)
	if m.Served > 0 {
		m.MeanWait = stat.Mean(waits, nil)
		m.MeanService = stat.Mean(services, nil)
		m.MeanSojourn = stat.Mean(sojourns, nil)
	}
	if m.Customers > 0 {
		m.BalkRatio = float64(m.Balked) / float64(m.Customers)
	}

	m.ServerUtilization = make([]float64, sim.Pool.Len())
	for i, s := range sim.Pool.Servers() {
		m.ServerUtilization[i] = s.Utilization(now)
	}
	return m
}

// Print displays aggregated metrics at the end of the simulation.
func (m Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	if m.RunID != "" {
		fmt.Printf("Run ID               : %s\n", m.RunID)
	}
	fmt.Printf("Customers            : %d\n", m.Customers)
	fmt.Printf("Served               : %d\n", m.Served)
	fmt.Printf("Balked               : %d (%.3f)\n", m.Balked, m.BalkRatio)
	fmt.Printf("Final Clock          : %.5f\n", m.FinalClock)
	if m.Served > 0 {
		fmt.Printf("Waited               : %d\n", m.Waited)
		fmt.Printf("Average Wait         : %.5f\n", m.MeanWait)
		fmt.Printf("Average Service      : %.5f\n", m.MeanService)
		fmt.Printf("Average Sojourn      : %.5f\n", m.MeanSojourn)
	}
	fmt.Printf("Average Queue Length : %.5f\n", m.AvgQueueLength)
	fmt.Printf("Peak Queue Length    : %d\n", m.PeakQueueLength)
	for i, u := range m.ServerUtilization {
		fmt.Printf("Server %-3d Usage     : %.3f\n", i, u)
	}
	if m.ConsistencyWarnings > 0 {
		fmt.Printf("Consistency Warnings : %d\n", m.ConsistencyWarnings)
	}
}
