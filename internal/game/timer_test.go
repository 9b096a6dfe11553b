package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerNaturalExpiry(t *testing.T) {
	tm := NewTimer()
	require.True(t, tm.Start(900))
	require.Equal(t, TimerRunning, tm.State())

	fired := 0
	for i := 0; i < 1000; i++ {
		if tm.Tick() {
			fired++
		}
	}
	assert.Equal(t, 1, fired, "expiry must fire exactly once")
	assert.Equal(t, TimerExpired, tm.State())
	assert.Equal(t, int64(0), tm.RemainingSecs())
}

func TestTimerStopFiresOnce(t *testing.T) {
	tm := NewTimer()
	require.True(t, tm.Start(60))
	for i := 0; i < 10; i++ {
		tm.Tick()
	}

	assert.True(t, tm.Stop(), "first stop fires expiry")
	assert.False(t, tm.Stop(), "second stop is a no-op")
	assert.False(t, tm.Tick(), "ticks after expiry do nothing")
	assert.Equal(t, TimerExpired, tm.State())
}

func TestTimerCancelDiscardsSilently(t *testing.T) {
	tm := NewTimer()
	require.True(t, tm.Start(60))
	tm.Cancel()

	assert.Equal(t, TimerIdle, tm.State())
	assert.False(t, tm.Tick(), "cancelled timer must not tick")
	assert.False(t, tm.Stop(), "cancelled timer must not fire")

	// A cancelled timer can be armed again for a fresh run.
	require.True(t, tm.Start(5))
	fired := 0
	for i := 0; i < 5; i++ {
		if tm.Tick() {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
}

func TestTimerStartGuards(t *testing.T) {
	tm := NewTimer()
	assert.False(t, tm.Start(0))
	assert.False(t, tm.Start(-5))
	require.True(t, tm.Start(10))
	assert.False(t, tm.Start(10), "cannot re-arm a running timer")
}
