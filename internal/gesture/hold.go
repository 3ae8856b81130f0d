package gesture

import "time"

// DefaultHoldDuration is how long a thumbs up/down must be sustained before
// a level adjustment fires.
const DefaultHoldDuration = 2 * time.Second

// HoldTimer debounces a gesture stream into discrete repeat events. While a
// repeatable gesture is sustained it fires once per hold duration; any other
// gesture (including Unknown and no-hand) resets it.
//
// The timer is driven once per processed frame and holds no goroutines of
// its own; callers pass the current time, which keeps tests deterministic.
type HoldTimer struct {
	duration time.Duration
	active   Gesture
	start    time.Time
}

// NewHoldTimer creates an idle HoldTimer with the given repeat interval.
// A non-positive duration falls back to DefaultHoldDuration.
func NewHoldTimer(d time.Duration) *HoldTimer {
	if d <= 0 {
		d = DefaultHoldDuration
	}
	return &HoldTimer{duration: d}
}

// Observe feeds the latest classified gesture into the timer.
//
// It returns fired=true when the active gesture has been sustained for a
// full hold duration; the timer then restarts from now, so a continuously
// held gesture fires at a fixed cadence. remaining is the time left until
// the next fire while holding, or zero when idle.
func (h *HoldTimer) Observe(g Gesture, now time.Time) (fired bool, remaining time.Duration) {
	if !Repeatable(g) {
		h.active = None
		return false, 0
	}

	if g != h.active {
		// New hold, or a direct switch between thumbs up and down:
		// restart immediately without firing.
		h.active = g
		h.start = now
		return false, h.duration
	}

	elapsed := now.Sub(h.start)
	if elapsed >= h.duration {
		h.start = now
		return true, h.duration
	}
	return false, h.duration - elapsed
}

// Active returns the gesture currently being held, or None when idle.
func (h *HoldTimer) Active() Gesture {
	return h.active
}

// Reset returns the timer to idle.
func (h *HoldTimer) Reset() {
	h.active = None
	h.start = time.Time{}
}
