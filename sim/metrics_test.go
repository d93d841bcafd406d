package sim

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_KnownScenario(t *testing.T) {
	// GIVEN one server, queue capacity 1:
	//   c0 arrives 0.5, served [0.5, 4.5]
	//   c1 arrives 1, waits [1, 4.5], served [4.5, 6.5]
	//   c2 arrives 2, queue full → balks
	customers := makeCustomers([]float64{0.5, 1, 2}, []float64{4, 2, 1})

	// WHEN simulated
	s := mustRun(t, testConfig(1, 1), customers)
	m := s.Metrics()

	// THEN
	assert.Equal(t, 3, m.Customers)
	assert.Equal(t, 2, m.Served)
	assert.Equal(t, 1, m.Balked)
	assert.InDelta(t, 1.0/3.0, m.BalkRatio, 1e-12)
	assert.Equal(t, 1, m.Waited)
	assert.InDelta(t, 1.75, m.MeanWait, 1e-12)    // (0 + 3.5) / 2
	assert.InDelta(t, 3.0, m.MeanService, 1e-12)  // (4 + 2) / 2
	assert.InDelta(t, 4.75, m.MeanSojourn, 1e-12) // (4 + 5.5) / 2
	assert.Equal(t, 6.5, m.FinalClock)
	assert.InDelta(t, 3.5/6.5, m.AvgQueueLength, 1e-12)
	assert.Equal(t, 1, m.PeakQueueLength)
	require.Len(t, m.ServerUtilization, 1)
	assert.InDelta(t, 6.0/6.5, m.ServerUtilization[0], 1e-12)
	assert.Equal(t, 0, m.ConsistencyWarnings)
}

func TestMetrics_NoServedCustomers_ZeroMeans(t *testing.T) {
	s := mustRun(t, testConfig(1, 0), nil)
	m := s.Metrics()
	assert.Equal(t, 0, m.Served)
	assert.Equal(t, 0.0, m.MeanSojourn)
	assert.Equal(t, 0.0, m.BalkRatio)
	assert.Equal(t, 0.0, m.AvgQueueLength)
}

func TestMetrics_Print_WritesReport(t *testing.T) {
	// GIVEN metrics from a short run
	s := mustRun(t, testConfig(1, 1), makeCustomers([]float64{1}, []float64{1}))
	m := s.Metrics()
	m.RunID = "test-run"

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// WHEN printed
	m.Print()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	// THEN the report carries the header and key fields
	assert.Contains(t, output, "Simulation Metrics")
	assert.Contains(t, output, "test-run")
	assert.Contains(t, output, "Average Sojourn")
	assert.Contains(t, output, "Server 0")
}
