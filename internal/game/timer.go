package game

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerExpired TimerState = "expired"
)

// Timer counts a round down one second at a time. Expiry is reported exactly
// once per run, whether it happens naturally or through Stop.
type Timer struct {
	state         TimerState
	remainingSecs int64
	fired         bool
}

func NewTimer() *Timer {
	return &Timer{state: TimerIdle}
}

func (t *Timer) State() TimerState { return t.state }

func (t *Timer) RemainingSecs() int64 { return t.remainingSecs }

func (t *Timer) Start(durationSecs int64) bool {
	if t.state == TimerRunning || durationSecs <= 0 {
		return false
	}
	t.state = TimerRunning
	t.remainingSecs = durationSecs
	t.fired = false
	return true
}

// Tick burns one second. Returns true on the single tick that reaches zero.
func (t *Timer) Tick() bool {
	if t.state != TimerRunning {
		return false
	}
	t.remainingSecs--
	if t.remainingSecs > 0 {
		return false
	}
	t.remainingSecs = 0
	t.state = TimerExpired
	if t.fired {
		return false
	}
	t.fired = true
	return true
}

// Stop force-expires a running timer early. Returns true if this call is the
// one that fires expiry.
func (t *Timer) Stop() bool {
	if t.state != TimerRunning {
		return false
	}
	t.state = TimerExpired
	t.remainingSecs = 0
	if t.fired {
		return false
	}
	t.fired = true
	return true
}

// Cancel discards the run with no expiry signal.
func (t *Timer) Cancel() {
	t.state = TimerIdle
	t.remainingSecs = 0
	t.fired = false
}
