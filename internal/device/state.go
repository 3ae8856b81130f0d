// Package device holds the controllable device state, the interaction
// controller that turns gesture labels into device commands, and the line
// protocol codec shared with the microcontroller peer.
package device

// Mode selects which device the interaction layer currently targets.
type Mode string

const (
	ModeLED   Mode = "LED"
	ModeMotor Mode = "MOTOR"
)

// Level bounds and the level a device resumes at when turned on from zero.
const (
	MinLevel       = 0
	MaxLevel       = 5
	DefaultOnLevel = 3
)

// State is the on/off and level state of one controllable device. The level
// is always within [MinLevel, MaxLevel] and is remembered across off
// periods.
type State struct {
	On    bool
	Level int
}

// TurnOn switches the device on, resuming at DefaultOnLevel if the stored
// level is zero. It reports whether the state changed, so callers can
// edge-trigger commands.
func (s *State) TurnOn() bool {
	if s.On {
		return false
	}
	s.On = true
	if s.Level == MinLevel {
		s.Level = DefaultOnLevel
	}
	return true
}

// TurnOff switches the device off, keeping the stored level for the next
// turn-on. It reports whether the state changed.
func (s *State) TurnOff() bool {
	if !s.On {
		return false
	}
	s.On = false
	return true
}

// SetLevel stores a clamped level. The level updates even while the device
// is off, so a later TurnOn resumes there.
func (s *State) SetLevel(n int) {
	s.Level = clampLevel(n)
}

// Increase raises the level by one step. It is a no-op while the device is
// off; the return value reports whether the level actually changed.
func (s *State) Increase() bool {
	if !s.On {
		return false
	}
	before := s.Level
	s.SetLevel(s.Level + 1)
	return s.Level != before
}

// Decrease lowers the level by one step, no-op while off.
func (s *State) Decrease() bool {
	if !s.On {
		return false
	}
	before := s.Level
	s.SetLevel(s.Level - 1)
	return s.Level != before
}

func clampLevel(n int) int {
	if n < MinLevel {
		return MinLevel
	}
	if n > MaxLevel {
		return MaxLevel
	}
	return n
}
