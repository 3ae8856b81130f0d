package device

import (
	"fmt"
	"strconv"
	"strings"
)

// Line protocol shared with the microcontroller peer. Commands and status
// reports are ASCII lines, newline-terminated on the wire and case
// sensitive:
//
//	outbound: MODE:<LED|MOTOR>  <LED|MOTOR>:<ON|OFF|UP|DOWN>
//	inbound:  STATUS:<mode>,<ON|OFF>,<led_level>,<ON|OFF>,<motor_level>
//	          MODE:<mode>  <LED|MOTOR>:<ON|OFF>  <LED|MOTOR>:LEVEL:<n>
//
// Lines that match no known form are dropped without touching local state.

// ModeCommand encodes a mode switch.
func ModeCommand(m Mode) string { return "MODE:" + string(m) }

// OnCommand encodes a turn-on for the device addressed by mode.
func OnCommand(m Mode) string { return string(m) + ":ON" }

// OffCommand encodes a turn-off for the device addressed by mode.
func OffCommand(m Mode) string { return string(m) + ":OFF" }

// UpCommand encodes a one-step level increase.
func UpCommand(m Mode) string { return string(m) + ":UP" }

// DownCommand encodes a one-step level decrease.
func DownCommand(m Mode) string { return string(m) + ":DOWN" }

// StatusLine encodes a full status report in the peer's format.
func StatusLine(mode Mode, led, motor State) string {
	return fmt.Sprintf("STATUS:%s,%s,%d,%s,%d",
		mode, onOff(led.On), led.Level, onOff(motor.On), motor.Level)
}

// LevelLine encodes a per-device level report.
func LevelLine(m Mode, level int) string {
	return fmt.Sprintf("%s:LEVEL:%d", m, level)
}

// Update is a parsed inbound line: only the non-nil fields are present.
// A STATUS line sets every field; the shorter forms set one or two.
type Update struct {
	Mode       *Mode
	LedOn      *bool
	LedLevel   *int
	MotorOn    *bool
	MotorLevel *int
}

// ParseLine parses one inbound line into an Update. The most specific
// prefix wins. It returns ok=false for anything malformed or unknown; a
// malformed line never yields a partial update.
func ParseLine(line string) (Update, bool) {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, "STATUS:"):
		return parseStatus(strings.TrimPrefix(line, "STATUS:"))
	case strings.HasPrefix(line, "MODE:"):
		m, ok := parseMode(strings.TrimPrefix(line, "MODE:"))
		if !ok {
			return Update{}, false
		}
		return Update{Mode: &m}, true
	case strings.HasPrefix(line, "LED:"):
		return parseDeviceReport(ModeLED, strings.TrimPrefix(line, "LED:"))
	case strings.HasPrefix(line, "MOTOR:"):
		return parseDeviceReport(ModeMotor, strings.TrimPrefix(line, "MOTOR:"))
	}
	return Update{}, false
}

// parseStatus parses "<mode>,<ON|OFF>,<led_level>,<ON|OFF>,<motor_level>".
// Anything other than exactly five well-formed fields drops the line.
func parseStatus(rest string) (Update, bool) {
	parts := strings.Split(rest, ",")
	if len(parts) != 5 {
		return Update{}, false
	}

	mode, ok := parseMode(parts[0])
	if !ok {
		return Update{}, false
	}
	ledOn, ok := parseOnOff(parts[1])
	if !ok {
		return Update{}, false
	}
	ledLevel, err := strconv.Atoi(parts[2])
	if err != nil {
		return Update{}, false
	}
	motorOn, ok := parseOnOff(parts[3])
	if !ok {
		return Update{}, false
	}
	motorLevel, err := strconv.Atoi(parts[4])
	if err != nil {
		return Update{}, false
	}

	ledLevel = clampLevel(ledLevel)
	motorLevel = clampLevel(motorLevel)
	return Update{
		Mode:       &mode,
		LedOn:      &ledOn,
		LedLevel:   &ledLevel,
		MotorOn:    &motorOn,
		MotorLevel: &motorLevel,
	}, true
}

// parseDeviceReport parses the suffix of a "LED:" or "MOTOR:" line.
func parseDeviceReport(m Mode, rest string) (Update, bool) {
	switch {
	case rest == "ON" || rest == "OFF":
		on := rest == "ON"
		if m == ModeLED {
			return Update{LedOn: &on}, true
		}
		return Update{MotorOn: &on}, true

	case strings.HasPrefix(rest, "LEVEL:"):
		n, err := strconv.Atoi(strings.TrimPrefix(rest, "LEVEL:"))
		if err != nil {
			return Update{}, false
		}
		n = clampLevel(n)
		if m == ModeLED {
			return Update{LedLevel: &n}, true
		}
		return Update{MotorLevel: &n}, true
	}
	return Update{}, false
}

func parseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLED:
		return ModeLED, true
	case ModeMotor:
		return ModeMotor, true
	}
	return "", false
}

func parseOnOff(s string) (bool, bool) {
	switch s {
	case "ON":
		return true, true
	case "OFF":
		return false, true
	}
	return false, false
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
