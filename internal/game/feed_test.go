package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedReleasesInCatalogOrder(t *testing.T) {
	events := DefaultCatalog().Events
	f := NewFeed(events, 10)
	f.Start()

	var released []string
	for i := 0; i < 600; i++ {
		if ev, ok := f.Tick(); ok {
			released = append(released, ev.ID)
		}
	}

	require.Len(t, released, len(events))
	for i, ev := range events {
		assert.Equal(t, ev.ID, released[i], "catalog order must be preserved")
	}
	assert.True(t, f.Exhausted())
}

func TestFeedCadence(t *testing.T) {
	f := NewFeed(DefaultCatalog().Events, 10)
	f.Start()

	for i := 0; i < 9; i++ {
		_, ok := f.Tick()
		assert.False(t, ok, "nothing releases before the cadence window closes")
	}
	_, ok := f.Tick()
	assert.True(t, ok, "tenth second releases the first event")
}

func TestFeedNeverRepeats(t *testing.T) {
	f := NewFeed(DefaultCatalog().Events, 10)
	f.Start()

	seen := map[string]int{}
	for i := 0; i < 2000; i++ {
		if ev, ok := f.Tick(); ok {
			seen[ev.ID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "event %s released %d times", id, n)
	}
}

func TestFeedIdleWhenExhausted(t *testing.T) {
	f := NewFeed([]MarketEvent{{ID: "only", StartupID: "x", ImpactMultiplier: 1.1}}, 1)
	f.Start()

	_, ok := f.Tick()
	require.True(t, ok)
	for i := 0; i < 50; i++ {
		_, ok := f.Tick()
		assert.False(t, ok, "exhausted feed must stay idle")
	}
	assert.True(t, f.Exhausted())
}

func TestFeedStopAndRewind(t *testing.T) {
	f := NewFeed(DefaultCatalog().Events, 1)
	f.Start()

	_, ok := f.Tick()
	require.True(t, ok)
	f.Stop()
	_, ok = f.Tick()
	assert.False(t, ok, "stopped feed must not release")
	assert.Len(t, f.Released(), 1)

	f.Rewind()
	assert.Empty(t, f.Released())
	f.Start()
	ev, ok := f.Tick()
	require.True(t, ok)
	assert.Equal(t, "event_1", ev.ID, "rewound feed replays from the top")
}
