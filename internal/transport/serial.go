package transport

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate matches the microcontroller firmware.
const DefaultBaudRate = 115200

// SerialConn is a Conn over a USB serial port. A dedicated reader goroutine
// drains inbound bytes and reassembles them into lines, independent of the
// frame-processing cadence; it stops when Close is called. A partial line
// left in the buffer at shutdown is discarded, never flushed.
type SerialConn struct {
	port  serial.Port
	lines chan string
	done  chan struct{}
}

// DialSerial opens the named port and starts the reader.
func DialSerial(portName string, baudRate int) (*SerialConn, error) {
	if baudRate <= 0 {
		baudRate = DefaultBaudRate
	}

	port, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}

	c := &SerialConn{
		port:  port,
		lines: make(chan string, 64),
		done:  make(chan struct{}),
	}
	go c.readLoop()

	return c, nil
}

// WaitReady consumes inbound lines until the peer's READY: greeting arrives
// or the timeout passes. Microcontrollers reset when the port opens, so the
// greeting can take a couple of seconds; chatter before it is discarded.
func (c *SerialConn) WaitReady(timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case line, ok := <-c.lines:
			if !ok {
				return fmt.Errorf("serial connection closed before READY")
			}
			if strings.HasPrefix(line, "READY:") {
				return nil
			}
		case <-deadline.C:
			return fmt.Errorf("peer did not send READY within %s", timeout)
		}
	}
}

// Send writes one newline-terminated command line. It does not wait for any
// acknowledgment.
func (c *SerialConn) Send(line string) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	if _, err := c.port.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

// Lines returns the inbound line channel. It is closed when the reader
// stops.
func (c *SerialConn) Lines() <-chan string {
	return c.lines
}

// Close signals the reader to stop and closes the port. Closing the port
// unblocks the reader's pending Read.
func (c *SerialConn) Close() error {
	select {
	case <-c.done:
		return nil
	default:
		close(c.done)
	}
	return c.port.Close()
}

// readLoop reassembles the inbound byte stream into trimmed, non-empty
// lines. It exits on the first read error, which includes the port being
// closed by Close.
func (c *SerialConn) readLoop() {
	defer close(c.lines)

	buf := make([]byte, 256)
	var pending []byte

	for {
		n, err := c.port.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			for {
				i := bytes.IndexByte(pending, '\n')
				if i < 0 {
					break
				}
				line := strings.TrimSpace(string(pending[:i]))
				pending = pending[i+1:]
				if line == "" {
					continue
				}
				select {
				case c.lines <- line:
				case <-c.done:
					return
				}
			}
		}
		if err != nil {
			return
		}
		select {
		case <-c.done:
			return
		default:
		}
	}
}
