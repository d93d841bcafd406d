// Implements the WaitQueue, which holds customers who arrived while every
// server was busy. Customers are enqueued on arrival and dequeued on FINISH.

package sim

import (
	"fmt"
	"strings"
)

// QueueBound selects how max_queue_length is compared against the current length.
type QueueBound string

const (
	// BoundStrict rejects when len >= max, so the queue never exceeds max.
	BoundStrict QueueBound = "strict"
	// BoundLenient rejects only when len > max, admitting up to max+1 customers.
	BoundLenient QueueBound = "lenient"
)

var validQueueBounds = map[QueueBound]bool{
	BoundStrict:  true,
	BoundLenient: true,
	"":           true, // empty defaults to strict
}

// IsValidQueueBound reports whether name is a recognized bound rule.
func IsValidQueueBound(name string) bool {
	return validQueueBounds[QueueBound(name)]
}

// WaitRecord is one customer's stay in the wait queue.
// Leave is nil while the customer is still waiting.
type WaitRecord struct {
	Customer *Customer
	Enter    float64
	Leave    *float64
}

// WaitQueue represents a bounded FIFO queue of customers waiting for a server.
// Every enqueue opens a WaitRecord; every dequeue closes the oldest open one.
type WaitQueue struct {
	clock     *Clock
	maxLength int
	bound     QueueBound

	queue   []*Customer   // FIFO queue of customers
	records []*WaitRecord // one per customer that ever waited, in enqueue order
	head    int           // index of the oldest open record
	peak    int
}

// NewWaitQueue creates an empty queue with the given capacity rule.
func NewWaitQueue(clock *Clock, maxLength int, bound QueueBound) *WaitQueue {
	if bound == "" {
		bound = BoundStrict
	}
	return &WaitQueue{clock: clock, maxLength: maxLength, bound: bound}
}

// Full reports whether an arriving customer must be turned away.
func (wq *WaitQueue) Full() bool {
	if wq.bound == BoundLenient {
		return len(wq.queue) > wq.maxLength
	}
	return len(wq.queue) >= wq.maxLength
}

// Enqueue adds a customer to the back of the queue at the current clock time.
// Callers check Full first; a full queue yields ErrOverflowRejected.
func (wq *WaitQueue) Enqueue(c *Customer) error {
	if wq.Full() {
		return fmt.Errorf("%w: %s at length %d (max %d)", ErrOverflowRejected, c, len(wq.queue), wq.maxLength)
	}
	now := wq.clock.Current()
	c.enterQueue(now)
	wq.queue = append(wq.queue, c)
	wq.records = append(wq.records, &WaitRecord{Customer: c, Enter: now})
	wq.peak = max(wq.peak, len(wq.queue))
	return nil
}

// Dequeue removes the customer at the front and closes its WaitRecord.
// Returns ErrEmpty if no customer is waiting.
func (wq *WaitQueue) Dequeue() (*Customer, error) {
	if len(wq.queue) == 0 {
		return nil, fmt.Errorf("wait queue: %w", ErrEmpty)
	}
	c := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]

	t := wq.clock.Current()
	wq.records[wq.head].Leave = &t
	wq.head++
	return c, nil
}

// Len returns the number of customers waiting.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peak returns the largest length the queue has reached.
func (wq *WaitQueue) Peak() int {
	return wq.peak
}

// MaxLength returns the configured capacity.
func (wq *WaitQueue) MaxLength() int {
	return wq.maxLength
}

// Records returns the wait log in enqueue order. Callers must not modify it.
func (wq *WaitQueue) Records() []*WaitRecord {
	return wq.records
}

// TimeWeightedAverage returns the average number of waiting customers over
// [0, at]: the summed overlap of every WaitRecord with [0, at], divided by at.
// Records still open count as waiting up to at. Returns 0 if at <= 0.
func (wq *WaitQueue) TimeWeightedAverage(at float64) float64 {
	if at <= 0 {
		return 0
	}
	area := 0.0
	for _, r := range wq.records {
		if r.Enter >= at {
			continue
		}
		end := at
		if r.Leave != nil && *r.Leave < at {
			end = *r.Leave
		}
		area += end - r.Enter
	}
	return area / at
}

func (wq *WaitQueue) reset() {
	wq.queue = nil
	wq.records = nil
	wq.head = 0
	wq.peak = 0
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
