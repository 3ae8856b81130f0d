package device

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

// Sender is the outbound half of the device link. Writes are fire and
// forget: a failed send is logged and never retried, and local state is not
// rolled back, so local and peer state can briefly diverge until the next
// status report.
type Sender interface {
	Send(line string) error
}

// Event describes one command issued by the controller, with the state
// after the command was applied locally.
type Event struct {
	Gesture gesture.Gesture
	Command string
	Mode    Mode
	Led     State
	Motor   State
	At      time.Time
}

// Snapshot is a point-in-time copy of the controller state.
type Snapshot struct {
	Mode          Mode
	Led           State
	Motor         State
	HoldRemaining time.Duration
}

// Controller is the top-level interaction state machine. It consumes one
// classified gesture per frame and drives the active device: One/Two switch
// modes, Open/Closed are edge-triggered on/off, and sustained thumbs
// up/down repeat level changes through the hold timer.
//
// Step and ApplyStatus may be called from different goroutines (the frame
// pipeline and the transport reader); a mutex keeps each mutation atomic.
type Controller struct {
	mu            sync.Mutex
	mode          Mode
	announced     bool
	led           State
	motor         State
	hold          *gesture.HoldTimer
	holdRemaining time.Duration
	sender        Sender
	onEvent       func(Event)
}

// NewController creates a Controller targeting the LED with both devices
// off. sender may be nil for a fully local (simulation-only) controller.
func NewController(sender Sender, holdDuration time.Duration) *Controller {
	return &Controller{
		mode:   ModeLED,
		hold:   gesture.NewHoldTimer(holdDuration),
		sender: sender,
	}
}

// OnEvent registers a callback invoked for every issued command. The
// callback runs with the controller lock held, so it must not call back
// into the controller.
func (c *Controller) OnEvent(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvent = fn
}

// Step advances the state machine with the latest classified gesture.
// None and Unknown reset the hold timer and do nothing else; every failure
// mode leaves the controller consistent for the next frame.
//
// Mode switches are idempotent while a gesture is held, except that the
// first explicit mode gesture always announces the mode so the peer starts
// in sync even when the local default already matches.
//
// Open and Closed are edge-triggered: a sustained gesture across frames
// issues exactly one command, which keeps a ~30 fps gesture stream from
// flooding the transport.
func (c *Controller) Step(g gesture.Gesture, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fired, remaining := c.hold.Observe(g, now)
	c.holdRemaining = remaining

	switch g {
	case gesture.One:
		c.switchMode(ModeLED, g, now)

	case gesture.Two:
		c.switchMode(ModeMotor, g, now)

	case gesture.Open:
		if c.active().TurnOn() {
			c.emit(OnCommand(c.mode), g, now)
		}

	case gesture.Closed:
		if c.active().TurnOff() {
			c.emit(OffCommand(c.mode), g, now)
		}

	case gesture.ThumbsUp:
		if fired && c.active().On {
			c.active().Increase()
			c.emit(UpCommand(c.mode), g, now)
		}

	case gesture.ThumbsDown:
		if fired && c.active().On {
			c.active().Decrease()
			c.emit(DownCommand(c.mode), g, now)
		}
	}
}

// ApplyStatus resynchronizes local state from a peer report. The whole
// update is applied under the lock, all or nothing with respect to Step.
func (c *Controller) ApplyStatus(u Update) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if u.Mode != nil {
		c.mode = *u.Mode
	}
	if u.LedOn != nil {
		c.led.On = *u.LedOn
	}
	if u.LedLevel != nil {
		c.led.Level = clampLevel(*u.LedLevel)
	}
	if u.MotorOn != nil {
		c.motor.On = *u.MotorOn
	}
	if u.MotorLevel != nil {
		c.motor.Level = clampLevel(*u.MotorLevel)
	}
}

// Snapshot returns a copy of the current mode, device states and the time
// remaining on the hold timer.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Mode:          c.mode,
		Led:           c.led,
		Motor:         c.motor,
		HoldRemaining: c.holdRemaining,
	}
}

// active returns the device state addressed by the current mode.
func (c *Controller) active() *State {
	if c.mode == ModeMotor {
		return &c.motor
	}
	return &c.led
}

func (c *Controller) switchMode(m Mode, g gesture.Gesture, now time.Time) {
	if c.mode == m && c.announced {
		return
	}
	c.mode = m
	c.announced = true
	c.emit(ModeCommand(m), g, now)
}

// emit sends one command line and notifies listeners. The local mutation
// has already happened; a write failure is logged, not rolled back.
func (c *Controller) emit(line string, g gesture.Gesture, now time.Time) {
	if c.sender != nil {
		if err := c.sender.Send(line); err != nil {
			log.Printf("send %q: %v", line, err)
		}
	}

	if c.onEvent != nil {
		c.onEvent(Event{
			Gesture: g,
			Command: line,
			Mode:    c.mode,
			Led:     c.led,
			Motor:   c.motor,
			At:      now,
		})
	}
}
