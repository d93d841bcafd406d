package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_OptionalTimesUnsetByDefault(t *testing.T) {
	c := NewCustomer(3, 10, 2, 4)
	_, waited := c.WaitStart()
	_, started := c.ServiceStart()
	assert.False(t, waited)
	assert.False(t, started)
	_, ok := c.Sojourn()
	assert.False(t, ok)
	assert.Equal(t, 0.0, c.WaitLength())
	assert.Equal(t, CustomerPending, c.State())
}

func TestCustomer_ZeroTimesAreStillSet(t *testing.T) {
	// A customer served at t=0 has a service start, even though it is zero.
	c := NewCustomer(0, 0, 0, 1)
	c.beginService(0)
	start, ok := c.ServiceStart()
	assert.True(t, ok)
	assert.Equal(t, 0.0, start)
	sojourn, ok := c.Sojourn()
	assert.True(t, ok)
	assert.Equal(t, 1.0, sojourn)
}

func TestCustomerState_String(t *testing.T) {
	assert.Equal(t, "balked", CustomerBalked.String())
	assert.Equal(t, "served", CustomerServed.String())
	assert.Equal(t, "CustomerState(9)", CustomerState(9).String())
}
