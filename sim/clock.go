package sim

import "fmt"

// Clock holds the current simulation time. Time only moves forward,
// jumping to the timestamp of each dispatched event.
type Clock struct {
	now float64
}

// Current returns the current simulation time.
func (c *Clock) Current() float64 {
	return c.now
}

// Advance moves the clock to the given time. Advancing to the current
// time is a no-op; advancing to an earlier time fails with ErrInvalidAdvance.
func (c *Clock) Advance(to float64) error {
	if to < c.now {
		return fmt.Errorf("%w: from %.5f to %.5f", ErrInvalidAdvance, c.now, to)
	}
	c.now = to
	return nil
}

// Reset sets the clock back to zero.
func (c *Clock) Reset() {
	c.now = 0
}
