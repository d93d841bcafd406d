package sim

import "fmt"

// EventKind tags the closed set of simulation events.
type EventKind int

const (
	// EventArrive: a customer reaches the system.
	EventArrive EventKind = iota + 1
	// EventFinish: a server completes its current customer.
	EventFinish
)

func (k EventKind) String() string {
	switch k {
	case EventArrive:
		return "ARRIVE"
	case EventFinish:
		return "FINISH"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a scheduled state change. Exactly one of Customer (Arrive) or
// Server (Finish) is set. Events reference but never own these entities.
type Event struct {
	Time     float64
	Kind     EventKind
	Customer *Customer
	Server   *Server

	seq uint64 // insertion order, assigned by FutureEventList
}

func (e Event) String() string {
	switch e.Kind {
	case EventArrive:
		return fmt.Sprintf("%s(%s)@%.5f", e.Kind, e.Customer, e.Time)
	case EventFinish:
		return fmt.Sprintf("%s(%s)@%.5f", e.Kind, e.Server, e.Time)
	default:
		return fmt.Sprintf("%s@%.5f", e.Kind, e.Time)
	}
}

// NewArriveEvent creates an arrival event at the customer's arrival time.
func NewArriveEvent(c *Customer) Event {
	return Event{Time: c.ArrivalTime, Kind: EventArrive, Customer: c}
}

// NewFinishEvent creates a service-completion event for a server.
func NewFinishEvent(t float64, s *Server) Event {
	return Event{Time: t, Kind: EventFinish, Server: s}
}

// FutureEventList orders pending events by time. At equal times a FINISH
// dispatches before an ARRIVE, so a server completing at t is idle for every
// customer arriving at t. Remaining ties go to insertion order.
type FutureEventList struct {
	pq      *PriorityQueue[Event]
	nextSeq uint64
}

// NewFutureEventList creates an empty FEL.
func NewFutureEventList() *FutureEventList {
	return &FutureEventList{pq: NewPriorityQueue(eventBefore)}
}

// kindPriority ranks event kinds at equal times; lower dispatches first.
func kindPriority(k EventKind) int {
	switch k {
	case EventFinish:
		return 0
	case EventArrive:
		return 1
	default:
		return 2
	}
}

// eventBefore orders by (time, kind priority, seq).
func eventBefore(a, b Event) bool {
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	if pa, pb := kindPriority(a.Kind), kindPriority(b.Kind); pa != pb {
		return pa < pb
	}
	return a.seq < b.seq
}

// Push schedules an event.
func (f *FutureEventList) Push(e Event) {
	e.seq = f.nextSeq
	f.nextSeq++
	f.pq.Push(e)
}

// PopMin removes the earliest event; ErrEmpty when nothing is scheduled.
func (f *FutureEventList) PopMin() (Event, error) {
	e, err := f.pq.Pop()
	if err != nil {
		return Event{}, fmt.Errorf("future event list: %w", err)
	}
	return e, nil
}

// Len returns the number of pending events.
func (f *FutureEventList) Len() int {
	return f.pq.Len()
}

// Reset drops all pending events and restarts the sequence counter.
func (f *FutureEventList) Reset() {
	f.pq.Clear()
	f.nextSeq = 0
}
