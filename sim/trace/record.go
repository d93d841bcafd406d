// Package trace provides event-trace recording for queueing simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// NoServer marks a record with no server involved.
const NoServer = -1

// DispatchRecord captures one dispatched event and its outcome.
type DispatchRecord struct {
	Clock      float64
	Kind       string // "ARRIVE" or "FINISH"
	CustomerID int    // customer arriving, or customer starting service on FINISH; -1 if none
	ServerID   int    // server assigned or finishing; NoServer if the arrival queued or balked
	QueueLen   int    // wait queue length after the event was handled
	FollowUp   *float64
}

// BalkRecord captures a customer turned away by a full wait queue.
type BalkRecord struct {
	Clock      float64
	CustomerID int
	QueueLen   int
}
