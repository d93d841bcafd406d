// Package sim provides the discrete-event simulation engine for a single-queue,
// multi-server waiting line.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (pending → waiting → served, or balked)
//   - event.go: the closed set of event kinds and the future event list
//   - simulator.go: the event loop and the ARRIVE / FINISH handlers
//
// # Architecture
//
// The Simulator owns one Clock, FutureEventList, ServerPool, WaitQueue and
// customer list per run. Time advances only when an event is dispatched.
// Sub-packages:
//   - sim/workload/: arrival generation (interarrival gaps and service durations)
//   - sim/trace/: per-event trace recording
//   - sim/sweep/: parameter sweeps over independent runs
//
// # Determinism
//
// Given a seed, a server selection policy and a queue bound rule, the full
// event trace is reproducible. At equal times FINISH events dispatch before
// ARRIVE events; same-kind ties dispatch in insertion order.
package sim
