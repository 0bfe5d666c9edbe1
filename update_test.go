package progressor_test

import (
	"testing"

	"github.com/baxromumarov/progressor"
	"github.com/stretchr/testify/assert"
)

func TestNewUpdate(t *testing.T) {
	u := progressor.NewUpdate(100)

	assert.Equal(t, uint64(0), u.Current)
	assert.Equal(t, uint64(100), u.Total)
	assert.Equal(t, progressor.Working, u.State)
	assert.Empty(t, u.Message)
}

func TestCompletedFraction(t *testing.T) {
	u := progressor.NewUpdate(100)
	assert.Equal(t, 0.0, u.CompletedFraction())

	u.Current = 50
	assert.Equal(t, 0.5, u.CompletedFraction())

	u.Current = 100
	assert.Equal(t, 1.0, u.CompletedFraction())
}

func TestCompletedFraction_ZeroTotal(t *testing.T) {
	u := progressor.NewUpdate(0)
	assert.Equal(t, 0.0, u.CompletedFraction())

	// current may exceed a zero total without the fraction blowing up
	u.Current = 42
	assert.Equal(t, 0.0, u.CompletedFraction())
}

func TestCompletedFraction_Bounds(t *testing.T) {
	for _, total := range []uint64{1, 7, 100, 1 << 40} {
		for _, current := range []uint64{0, 1, total / 2, total} {
			u := progressor.Update{Current: current, Total: total}
			f := u.CompletedFraction()
			assert.GreaterOrEqual(t, f, 0.0)
			assert.LessOrEqual(t, f, 1.0)
		}
	}
}

func TestRemaining(t *testing.T) {
	u := progressor.NewUpdate(100)
	assert.Equal(t, uint64(100), u.Remaining())

	u.Current = 30
	assert.Equal(t, uint64(70), u.Remaining())

	u.Current = 100
	assert.Equal(t, uint64(0), u.Remaining())

	// overshoot saturates instead of wrapping around
	u.Current = 150
	assert.Equal(t, uint64(0), u.Remaining())
}

func TestIsComplete(t *testing.T) {
	u := progressor.NewUpdate(100)
	assert.False(t, u.IsComplete())

	u.Current = 100
	assert.True(t, u.IsComplete())

	u.Current = 150
	assert.True(t, u.IsComplete())
}

func TestStateTerminality(t *testing.T) {
	assert.False(t, progressor.Working.IsTerminal())
	assert.False(t, progressor.Paused.IsTerminal())
	assert.True(t, progressor.Completed.IsTerminal())
	assert.True(t, progressor.Cancelled.IsTerminal())

	assert.False(t, progressor.Update{State: progressor.Paused}.IsTerminal())
	assert.True(t, progressor.Update{State: progressor.Cancelled}.IsTerminal())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "working", progressor.Working.String())
	assert.Equal(t, "paused", progressor.Paused.String())
	assert.Equal(t, "completed", progressor.Completed.String())
	assert.Equal(t, "cancelled", progressor.Cancelled.String())
	assert.Equal(t, "unknown", progressor.State(99).String())
}
