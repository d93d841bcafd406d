package sim

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// finishTolerance bounds the allowed gap between a FINISH event's time and
// the completion time implied by the customer's service start and duration.
const finishTolerance = 1e-5

// ServiceRecord logs one customer's stay at a server.
// Exit is nil while the customer is still being served.
type ServiceRecord struct {
	Customer *Customer
	Entry    float64
	Exit     *float64
}

// Closed reports whether the record has an exit time.
func (r *ServiceRecord) Closed() bool {
	return r.Exit != nil
}

// Server is a single service channel. Busy iff current != nil.
type Server struct {
	ID int

	clock   *Clock
	current *ServiceRecord
	records []*ServiceRecord

	// ConsistencyWarnings counts FINISH times that did not match the
	// expected completion time within finishTolerance.
	ConsistencyWarnings int
}

// NewServer creates an idle server reading time from clock.
func NewServer(id int, clock *Clock) *Server {
	return &Server{ID: id, clock: clock}
}

// IsBusy reports whether the server is serving a customer.
func (s *Server) IsBusy() bool {
	return s.current != nil
}

// Current returns the customer in service, or nil.
func (s *Server) Current() *Customer {
	if s.current == nil {
		return nil
	}
	return s.current.Customer
}

// Records returns the append-only service log. Callers must not modify it.
func (s *Server) Records() []*ServiceRecord {
	return s.records
}

// Assign starts serving c at the current clock time and returns the time
// service will finish. The server must be idle.
func (s *Server) Assign(c *Customer) (float64, error) {
	if s.current != nil {
		return 0, fmt.Errorf("server %d: assign %s while serving %s", s.ID, c, s.current.Customer)
	}
	now := s.clock.Current()
	c.beginService(now)
	rec := &ServiceRecord{Customer: c, Entry: now}
	s.records = append(s.records, rec)
	s.current = rec
	return now + c.ServiceDuration, nil
}

// ReleaseAndReassign closes the active service record, then either goes idle
// (next == nil, returns ok=false) or immediately starts serving next.
func (s *Server) ReleaseAndReassign(next *Customer) (finish float64, ok bool, err error) {
	now := s.clock.Current()
	if s.current != nil {
		expected := s.current.Entry + s.current.Customer.ServiceDuration
		if math.Abs(now-expected) > finishTolerance {
			s.ConsistencyWarnings++
			logrus.Warnf("[%.5f] server %d: finish time does not match expected %.5f for %s",
				now, s.ID, expected, s.current.Customer)
		}
		t := now
		s.current.Exit = &t
		s.current = nil
		logrus.Debugf("[%.5f] server %d: service finished", now, s.ID)
	}
	if next == nil {
		return 0, false, nil
	}
	finish, err = s.Assign(next)
	if err != nil {
		return 0, false, err
	}
	return finish, true, nil
}

// Utilization returns the fraction of [0, at] this server spent busy.
// Returns 0 if at <= 0. Open records count as busy up to at.
func (s *Server) Utilization(at float64) float64 {
	if at <= 0 {
		return 0
	}
	busy := 0.0
	for _, r := range s.records {
		end := at
		if r.Exit != nil && *r.Exit < at {
			end = *r.Exit
		}
		if end > r.Entry {
			busy += end - r.Entry
		}
	}
	return busy / at
}

func (s *Server) reset() {
	s.current = nil
	s.records = nil
	s.ConsistencyWarnings = 0
}

func (s *Server) String() string {
	return fmt.Sprintf("server_%d", s.ID)
}

// ServerSelection names the policy used to pick among several idle servers.
type ServerSelection string

const (
	// SelectFirstIdle picks the idle server with the lowest ID.
	SelectFirstIdle ServerSelection = "first-idle"
	// SelectRandom picks uniformly among idle servers using the server_select RNG.
	SelectRandom ServerSelection = "random"
)

var validServerSelections = map[ServerSelection]bool{
	SelectFirstIdle: true,
	SelectRandom:    true,
	"":              true, // empty defaults to first-idle
}

// IsValidServerSelection reports whether name is a recognized selection policy.
func IsValidServerSelection(name string) bool {
	return validServerSelections[ServerSelection(name)]
}

// ServerPool is the fixed set of servers for a run.
type ServerPool struct {
	servers   []*Server
	selection ServerSelection
	rng       *rand.Rand
}

// NewServerPool creates n idle servers. rng is only consulted by SelectRandom
// and may be nil otherwise.
func NewServerPool(n int, clock *Clock, selection ServerSelection, rng *rand.Rand) *ServerPool {
	servers := make([]*Server, n)
	for i := range servers {
		servers[i] = NewServer(i, clock)
	}
	if selection == "" {
		selection = SelectFirstIdle
	}
	return &ServerPool{servers: servers, selection: selection, rng: rng}
}

// Servers returns the pool in ID order. Callers must not modify the slice.
func (p *ServerPool) Servers() []*Server {
	return p.servers
}

// Len returns the number of servers.
func (p *ServerPool) Len() int {
	return len(p.servers)
}

// SelectIdle returns an idle server per the pool's selection policy,
// or nil when every server is busy.
func (p *ServerPool) SelectIdle() *Server {
	var idle []*Server
	for _, s := range p.servers {
		if s.IsBusy() {
			continue
		}
		if p.selection == SelectFirstIdle {
			return s
		}
		idle = append(idle, s)
	}
	if len(idle) == 0 {
		return nil
	}
	return idle[p.rng.IntN(len(idle))]
}

// Busy returns the number of busy servers.
func (p *ServerPool) Busy() int {
	n := 0
	for _, s := range p.servers {
		if s.IsBusy() {
			n++
		}
	}
	return n
}

func (p *ServerPool) reset(rng *rand.Rand) {
	for _, s := range p.servers {
		s.reset()
	}
	p.rng = rng
}
