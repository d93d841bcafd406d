package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_Advance_MovesForward(t *testing.T) {
	c := &Clock{}
	require.NoError(t, c.Advance(3.5))
	assert.Equal(t, 3.5, c.Current())
}

func TestClock_Advance_SameTimeIsIdempotent(t *testing.T) {
	// GIVEN a clock at t=2
	c := &Clock{}
	require.NoError(t, c.Advance(2))

	// WHEN advanced to t=2 again
	err := c.Advance(2)

	// THEN nothing changes
	assert.NoError(t, err)
	assert.Equal(t, 2.0, c.Current())
}

func TestClock_Advance_Backward_ReturnsInvalidAdvance(t *testing.T) {
	// GIVEN a clock at t=5
	c := &Clock{}
	require.NoError(t, c.Advance(5))

	// WHEN asked to move back to t=4
	err := c.Advance(4)

	// THEN the advance is rejected and time is unchanged
	assert.True(t, errors.Is(err, ErrInvalidAdvance), "got %v", err)
	assert.Equal(t, 5.0, c.Current())
}

func TestClock_Reset_ReturnsToZero(t *testing.T) {
	c := &Clock{}
	require.NoError(t, c.Advance(10))
	c.Reset()
	assert.Equal(t, 0.0, c.Current())
	assert.NoError(t, c.Advance(1), "a reset clock accepts earlier times again")
}
