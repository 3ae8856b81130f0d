package gesture

import (
	"sync"
	"time"
)

// Stats accumulates per-gesture observation counts and tracks how long the
// current gesture has been held. It is an explicit accumulator passed to the
// pipeline rather than ambient package state, so independent sessions keep
// independent numbers.
type Stats struct {
	mu      sync.Mutex
	counts  map[Gesture]int
	current Gesture
	since   time.Time
}

// NewStats creates an empty accumulator.
func NewStats() *Stats {
	return &Stats{counts: make(map[Gesture]int)}
}

// Record registers one observation of g at the given time. None (no hand)
// is not counted but still ends the current hold.
func (s *Stats) Record(g Gesture, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g != s.current {
		s.current = g
		s.since = now
	}
	if g != None {
		s.counts[g]++
	}
}

// Current returns the most recently recorded gesture.
func (s *Stats) Current() Gesture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// HeldFor returns how long the current gesture has been continuously
// observed, or zero when no hand is present.
func (s *Stats) HeldFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == None {
		return 0
	}
	return now.Sub(s.since)
}

// Counts returns a copy of the per-gesture observation counts.
func (s *Stats) Counts() map[Gesture]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[Gesture]int, len(s.counts))
	for g, n := range s.counts {
		out[g] = n
	}
	return out
}

// Total returns the total number of counted observations.
func (s *Stats) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Reset clears all counts and the current hold.
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts = make(map[Gesture]int)
	s.current = None
	s.since = time.Time{}
}
