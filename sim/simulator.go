// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim/trace"
)

// State is the Simulator's lifecycle state.
type State int

const (
	// StateSetup: servers and customers exist, nothing is scheduled.
	StateSetup State = iota
	// StateRunning: arrivals are scheduled and events are being dispatched.
	StateRunning
	// StateDrained: the future event list is exhausted.
	StateDrained
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "SETUP"
	case StateRunning:
		return "RUNNING"
	case StateDrained:
		return "DRAINED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Simulator is the core object that holds simulation time, system state, and the event loop.
// It owns the Clock, future event list, server pool, wait queue and customer list
// for the duration of a run. Construct one per run, or Reset it between replications.
type Simulator struct {
	Clock *Clock
	// FEL has all pending ARRIVE and FINISH events
	FEL   *FutureEventList
	Pool  *ServerPool
	WaitQ *WaitQueue
	// Customers in arrival order, retained after the run for statistics
	Customers []*Customer
	Trace     *trace.SimulationTrace

	config Config
	state  State
	rng    *PartitionedRNG
	balked int
}

// NewSimulator validates cfg and builds a simulator in StateSetup.
// customers must be ordered by arrival time, as produced by the arrival generator.
func NewSimulator(cfg Config, customers []*Customer) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clock := &Clock{}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	s := &Simulator{
		Clock:     clock,
		FEL:       NewFutureEventList(),
		Pool:      NewServerPool(cfg.Pool.ServerCount, clock, cfg.Pool.Selection, rng.ForSubsystem(SubsystemServerSelect)),
		WaitQ:     NewWaitQueue(clock, cfg.Queue.MaxLength, cfg.Queue.Bound),
		Customers: customers,
		config:    cfg,
		state:     StateSetup,
		rng:       rng,
	}
	if trace.TraceLevel(cfg.TraceLevel) == trace.TraceLevelEvents {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelEvents})
	}
	return s, nil
}

// Config returns the configuration the simulator was built with.
func (sim *Simulator) Config() Config {
	return sim.config
}

// State returns the current lifecycle state.
func (sim *Simulator) State() State {
	return sim.state
}

// Balked returns the number of customers turned away so far.
func (sim *Simulator) Balked() int {
	return sim.balked
}

// Reset returns the simulator to StateSetup with a fresh customer list and seed,
// reusing the same Clock, FEL, pool and queue.
func (sim *Simulator) Reset(seed int64, customers []*Customer) {
	sim.Clock.Reset()
	sim.FEL.Reset()
	sim.WaitQ.reset()
	sim.config.Seed = seed
	sim.rng = NewPartitionedRNG(NewSimulationKey(seed))
	sim.Pool.reset(sim.rng.ForSubsystem(SubsystemServerSelect))
	for _, c := range customers {
		c.reset()
	}
	sim.Customers = customers
	sim.balked = 0
	if sim.Trace != nil {
		sim.Trace.Reset()
	}
	sim.state = StateSetup
}

// Schedule pushes an event into the future event list.
func (sim *Simulator) Schedule(ev Event) {
	sim.FEL.Push(ev)
}

// Start moves SETUP → RUNNING by scheduling one ARRIVE per customer.
func (sim *Simulator) Start() error {
	if sim.state != StateSetup {
		return fmt.Errorf("start: simulator is %s, want %s", sim.state, StateSetup)
	}
	for _, c := range sim.Customers {
		sim.Schedule(NewArriveEvent(c))
		logrus.Debugf("[%.5f] event add ARRIVE %.5f", sim.Clock.Current(), c.ArrivalTime)
	}
	sim.state = StateRunning
	return nil
}

// Run starts the simulation if needed and dispatches events until the
// future event list is exhausted.
func (sim *Simulator) Run() error {
	if sim.state == StateSetup {
		if err := sim.Start(); err != nil {
			return err
		}
	}
	for sim.state == StateRunning {
		if err := sim.Step(); err != nil {
			return err
		}
	}
	logrus.Infof("[%.5f] Simulation ended: %d customers, %d balked", sim.Clock.Current(), len(sim.Customers), sim.balked)
	return nil
}

// Step dispatches the earliest pending event. When nothing is left to
// dispatch the simulator moves to StateDrained and Step returns nil.
func (sim *Simulator) Step() error {
	if sim.state != StateRunning {
		return fmt.Errorf("step: simulator is %s, want %s", sim.state, StateRunning)
	}
	if sim.FEL.Len() == 0 {
		sim.state = StateDrained
		return nil
	}
	ev, err := sim.FEL.PopMin()
	if err != nil {
		return err
	}
	if err := sim.Clock.Advance(ev.Time); err != nil {
		return err
	}
	logrus.Debugf("[%.5f] Executing %s", sim.Clock.Current(), ev)

	switch ev.Kind {
	case EventArrive:
		err = sim.handleArrive(ev.Customer)
	case EventFinish:
		err = sim.handleFinish(ev.Server)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownEvent, ev)
	}
	if err != nil {
		return err
	}
	if sim.FEL.Len() == 0 {
		sim.state = StateDrained
	}
	return nil
}

// handleArrive sends the customer to an idle server, the wait queue, or away.
func (sim *Simulator) handleArrive(c *Customer) error {
	now := sim.Clock.Current()
	if srv := sim.Pool.SelectIdle(); srv != nil {
		finish, err := srv.Assign(c)
		if err != nil {
			return err
		}
		sim.Schedule(NewFinishEvent(finish, srv))
		logrus.Debugf("[%.5f] event add FINISH %.5f", now, finish)
		sim.recordDispatch(EventArrive, c.ID, srv.ID, &finish)
		return nil
	}

	if sim.WaitQ.Full() {
		c.balk()
		sim.balked++
		logrus.Warnf("[%.5f] Waiting queue is full (%d/%d); %s balked", now, sim.WaitQ.Len(), sim.WaitQ.MaxLength(), c)
		if sim.Trace.Enabled() {
			sim.Trace.RecordBalk(trace.BalkRecord{Clock: now, CustomerID: c.ID, QueueLen: sim.WaitQ.Len()})
		}
		sim.recordDispatch(EventArrive, c.ID, trace.NoServer, nil)
		return nil
	}
	if err := sim.WaitQ.Enqueue(c); err != nil {
		return err
	}
	sim.recordDispatch(EventArrive, c.ID, trace.NoServer, nil)
	return nil
}

// handleFinish hands the server the next waiting customer, if any.
// An empty wait queue is the normal case and means the server goes idle.
func (sim *Simulator) handleFinish(srv *Server) error {
	var next *Customer
	if sim.WaitQ.Len() > 0 {
		c, err := sim.WaitQ.Dequeue()
		if err != nil {
			return err
		}
		next = c
	}
	finish, ok, err := srv.ReleaseAndReassign(next)
	if err != nil {
		return err
	}
	if !ok {
		sim.recordDispatch(EventFinish, -1, srv.ID, nil)
		return nil
	}
	sim.Schedule(NewFinishEvent(finish, srv))
	logrus.Debugf("[%.5f] event add FINISH %.5f", sim.Clock.Current(), finish)
	sim.recordDispatch(EventFinish, next.ID, srv.ID, &finish)
	return nil
}

func (sim *Simulator) recordDispatch(kind EventKind, customerID, serverID int, followUp *float64) {
	if !sim.Trace.Enabled() {
		return
	}
	sim.Trace.RecordDispatch(trace.DispatchRecord{
		Clock:      sim.Clock.Current(),
		Kind:       kind.String(),
		CustomerID: customerID,
		ServerID:   serverID,
		QueueLen:   sim.WaitQ.Len(),
		FollowUp:   followUp,
	})
}

// ServedCount returns the number of customers that started service.
func (sim *Simulator) ServedCount() int {
	n := 0
	for _, c := range sim.Customers {
		if c.Served() {
			n++
		}
	}
	return n
}

// ConsistencyWarnings sums finish-time mismatches across the pool.
func (sim *Simulator) ConsistencyWarnings() int {
	n := 0
	for _, s := range sim.Pool.Servers() {
		n += s.ConsistencyWarnings
	}
	return n
}
