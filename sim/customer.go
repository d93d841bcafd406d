// Customer lifecycle: pending → (waiting →) served, or pending → balked.

package sim

import "fmt"

// CustomerState is the lifecycle state of a customer.
type CustomerState int

const (
	CustomerPending CustomerState = iota // generated, not yet arrived
	CustomerWaiting                      // in the wait queue
	CustomerServed                       // service has started
	CustomerBalked                       // turned away by a full wait queue
)

func (s CustomerState) String() string {
	switch s {
	case CustomerPending:
		return "pending"
	case CustomerWaiting:
		return "waiting"
	case CustomerServed:
		return "served"
	case CustomerBalked:
		return "balked"
	default:
		return fmt.Sprintf("CustomerState(%d)", int(s))
	}
}

// Customer is one arrival in the waiting-line system. Customers are created
// by the arrival generator before the run and are only mutated by the
// Simulator when they enter the wait queue or begin service.
type Customer struct {
	ID              int
	ArrivalTime     float64 // absolute arrival time
	Interarrival    float64 // gap since the previous arrival
	ServiceDuration float64

	state        CustomerState
	waitStart    *float64
	serviceStart *float64
}

// NewCustomer creates a pending customer.
func NewCustomer(id int, arrival, interarrival, service float64) *Customer {
	return &Customer{
		ID:              id,
		ArrivalTime:     arrival,
		Interarrival:    interarrival,
		ServiceDuration: service,
	}
}

// WaitStart returns the time the customer entered the wait queue, if it did.
func (c *Customer) WaitStart() (float64, bool) {
	if c.waitStart == nil {
		return 0, false
	}
	return *c.waitStart, true
}

// ServiceStart returns the time service began, if it did.
func (c *Customer) ServiceStart() (float64, bool) {
	if c.serviceStart == nil {
		return 0, false
	}
	return *c.serviceStart, true
}

// WaitLength returns how long the customer spent in the wait queue.
// Zero for customers who never waited or were never served.
func (c *Customer) WaitLength() float64 {
	if c.waitStart == nil || c.serviceStart == nil {
		return 0
	}
	return *c.serviceStart - *c.waitStart
}

// Sojourn returns wait plus service for a served customer, and false otherwise.
func (c *Customer) Sojourn() (float64, bool) {
	if c.serviceStart == nil {
		return 0, false
	}
	return c.WaitLength() + c.ServiceDuration, true
}

// State returns the customer's lifecycle state.
func (c *Customer) State() CustomerState {
	return c.state
}

// Served reports whether service has started for this customer.
func (c *Customer) Served() bool {
	return c.state == CustomerServed
}

// Balked reports whether the customer left because the queue was full.
func (c *Customer) Balked() bool {
	return c.state == CustomerBalked
}

func (c *Customer) enterQueue(now float64) {
	t := now
	c.waitStart = &t
	c.state = CustomerWaiting
}

func (c *Customer) beginService(now float64) {
	t := now
	c.serviceStart = &t
	c.state = CustomerServed
}

func (c *Customer) balk() {
	c.state = CustomerBalked
}

// reset clears run-time state so the customer can be replayed.
func (c *Customer) reset() {
	c.waitStart = nil
	c.serviceStart = nil
	c.state = CustomerPending
}

func (c *Customer) String() string {
	return fmt.Sprintf("customer_%d", c.ID)
}
