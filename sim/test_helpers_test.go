package sim

import "testing"

// makeCustomers builds customers with the given absolute arrival times and
// service durations. Interarrival gaps are derived from consecutive arrivals.
func makeCustomers(arrivals, services []float64) []*Customer {
	if len(arrivals) != len(services) {
		panic("makeCustomers: arrivals and services differ in length")
	}
	customers := make([]*Customer, len(arrivals))
	prev := 0.0
	for i := range arrivals {
		customers[i] = NewCustomer(i, arrivals[i], arrivals[i]-prev, services[i])
		prev = arrivals[i]
	}
	return customers
}

// testConfig returns a valid config with the given pool and queue sizes.
func testConfig(servers, maxQueue int) Config {
	cfg := DefaultConfig()
	cfg.Pool.ServerCount = servers
	cfg.Queue.MaxLength = maxQueue
	return cfg
}

// mustRun builds and drains a simulator, failing the test on any error.
func mustRun(t testing.TB, cfg Config, customers []*Customer) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, customers)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return s
}
