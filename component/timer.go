package component

import "time"

// Timer counts down a fixed duration against a caller-supplied clock.
// It never reads wall time; the simulation passes its own "now" to Arm and
// Tick so behaviour is deterministic.
type Timer struct {
	Duration time.Duration
	Repeat   bool
	OnExpire func()

	start  time.Duration
	active bool
}

// NewTimer builds an inert timer.
func NewTimer(d time.Duration, repeat bool, onExpire func()) *Timer {
	return &Timer{Duration: d, Repeat: repeat, OnExpire: onExpire}
}

// Arm starts (or restarts) the countdown at now.
func (t *Timer) Arm(now time.Duration) {
	if t == nil {
		return
	}
	t.start = now
	t.active = true
}

// Cancel deactivates the timer without firing.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.active = false
	t.start = 0
}

// Active reports whether the countdown is running.
func (t *Timer) Active() bool {
	return t != nil && t.active
}

// Remaining returns the time left before expiry, or zero when inactive.
func (t *Timer) Remaining(now time.Duration) time.Duration {
	if !t.Active() {
		return 0
	}
	if left := t.start + t.Duration - now; left > 0 {
		return left
	}
	return 0
}

// Tick checks for expiry and reports whether the timer expired during this
// call. A one-shot timer deactivates before OnExpire runs, so the callback
// may re-arm it. A repeating timer rearms at the previous deadline and fires
// once for every whole period that elapsed, which keeps its cadence
// independent of how coarsely the clock advances.
func (t *Timer) Tick(now time.Duration) bool {
	if !t.Active() {
		return false
	}
	if now-t.start < t.Duration {
		return false
	}
	if !t.Repeat || t.Duration <= 0 {
		t.active = false
		t.start = 0
		if t.OnExpire != nil {
			t.OnExpire()
		}
		return true
	}
	for t.active && now-t.start >= t.Duration {
		t.start += t.Duration
		if t.OnExpire != nil {
			t.OnExpire()
		}
	}
	return true
}
