package game

// Feed walks the catalog's event reel in order, releasing one event per
// cadence window. A cursor, not a queue: nothing is ever re-released, and an
// exhausted feed stays idle until Rewind.
type Feed struct {
	events    []MarketEvent
	cursor    int
	everySecs int64
	elapsed   int64
	running   bool
}

func NewFeed(events []MarketEvent, everySecs int64) *Feed {
	if everySecs <= 0 {
		everySecs = 10
	}
	return &Feed{events: events, everySecs: everySecs}
}

func (f *Feed) Start() {
	f.running = true
	f.elapsed = 0
}

func (f *Feed) Stop() {
	f.running = false
}

// Rewind resets the cursor so a new round replays the reel from the top.
func (f *Feed) Rewind() {
	f.cursor = 0
	f.elapsed = 0
	f.running = false
}

func (f *Feed) Exhausted() bool {
	return f.cursor >= len(f.events)
}

// Released returns the events already emitted this round, oldest first.
func (f *Feed) Released() []MarketEvent {
	out := make([]MarketEvent, f.cursor)
	copy(out, f.events[:f.cursor])
	return out
}

// Tick advances one second of feed time. When a cadence window closes and an
// unreleased event remains, that event is returned exactly once.
func (f *Feed) Tick() (MarketEvent, bool) {
	if !f.running || f.Exhausted() {
		return MarketEvent{}, false
	}
	f.elapsed++
	if f.elapsed%f.everySecs != 0 {
		return MarketEvent{}, false
	}
	ev := f.events[f.cursor]
	f.cursor++
	return ev, true
}
