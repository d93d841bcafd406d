package sim

import "errors"

var (
	// ErrInvalidConfig reports a configuration rejected before the run starts.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidAdvance reports an attempt to move the Clock backward.
	// It can only surface when event ordering is broken upstream.
	ErrInvalidAdvance = errors.New("invalid clock advance")

	// ErrEmpty is returned by Pop/Dequeue on an empty container.
	ErrEmpty = errors.New("empty")

	// ErrOverflowRejected reports an enqueue attempted while the wait queue is full.
	ErrOverflowRejected = errors.New("wait queue overflow")

	// ErrUnknownEvent reports an event whose kind the dispatcher does not handle.
	ErrUnknownEvent = errors.New("unknown event kind")
)
