// Package sim emulates the microcontroller peer: it applies command lines
// to its own LED and motor registers with the same level semantics as the
// firmware and answers with echo and status lines.
package sim

import (
	"strings"
	"sync"

	"github.com/ayusman/mudra/internal/device"
)

// Peer is an in-process stand-in for the microcontroller. Commands are
// applied to its own device registers, which makes it the authoritative
// state the controller resynchronizes against.
type Peer struct {
	mu    sync.Mutex
	mode  device.Mode
	led   device.State
	motor device.State
}

// NewPeer creates a Peer with both devices off, targeting the LED.
func NewPeer() *Peer {
	return &Peer{mode: device.ModeLED}
}

// Greeting is the line the firmware prints once its setup completes.
func (p *Peer) Greeting() string {
	return "READY:GESTURE_CONTROL"
}

// HandleLine applies one command line and returns the reply lines: an echo
// of the accepted command followed by a full status report. Unknown
// commands are dropped silently with no reply, like the firmware.
func (p *Peer) HandleLine(line string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	line = strings.TrimSpace(line)

	switch line {
	case "MODE:LED":
		p.mode = device.ModeLED
		return p.replies(device.ModeCommand(p.mode))
	case "MODE:MOTOR":
		p.mode = device.ModeMotor
		return p.replies(device.ModeCommand(p.mode))

	case "LED:ON":
		p.led.TurnOn()
		return p.replies(device.OnCommand(device.ModeLED), device.LevelLine(device.ModeLED, p.led.Level))
	case "LED:OFF":
		p.led.TurnOff()
		return p.replies(device.OffCommand(device.ModeLED))
	case "LED:UP":
		if p.led.Increase() {
			return p.replies(device.LevelLine(device.ModeLED, p.led.Level))
		}
		return p.replies()
	case "LED:DOWN":
		if p.led.Decrease() {
			return p.replies(device.LevelLine(device.ModeLED, p.led.Level))
		}
		return p.replies()

	case "MOTOR:ON":
		p.motor.TurnOn()
		return p.replies(device.OnCommand(device.ModeMotor), device.LevelLine(device.ModeMotor, p.motor.Level))
	case "MOTOR:OFF":
		p.motor.TurnOff()
		return p.replies(device.OffCommand(device.ModeMotor))
	case "MOTOR:UP":
		if p.motor.Increase() {
			return p.replies(device.LevelLine(device.ModeMotor, p.motor.Level))
		}
		return p.replies()
	case "MOTOR:DOWN":
		if p.motor.Decrease() {
			return p.replies(device.LevelLine(device.ModeMotor, p.motor.Level))
		}
		return p.replies()
	}

	return nil
}

// StatusLine returns the current full status report.
func (p *Peer) StatusLine() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return device.StatusLine(p.mode, p.led, p.motor)
}

// Snapshot returns the peer's mode and device registers.
func (p *Peer) Snapshot() (device.Mode, device.State, device.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode, p.led, p.motor
}

// replies appends a status report to the echo lines, so every accepted
// command leaves the client fully synchronized. Callers hold the lock.
func (p *Peer) replies(echoes ...string) []string {
	return append(echoes, device.StatusLine(p.mode, p.led, p.motor))
}
