// Package transport provides the line-oriented byte-stream links that carry
// device commands out and status reports back: a USB serial bridge, an
// in-process link to the simulated peer, and a no-op link for running with
// no peer at all.
package transport

import "errors"

// ErrClosed is returned by Send after a connection has been closed.
var ErrClosed = errors.New("transport: connection closed")

// Conn is a bidirectional line link to the device peer. Send writes one
// command line (the newline terminator is added by the implementation) and
// never blocks waiting for an acknowledgment. Lines yields inbound lines,
// already stripped of line endings; the channel is closed when the
// connection shuts down.
type Conn interface {
	Send(line string) error
	Lines() <-chan string
	Close() error
}

// NopConn is a Conn with no peer: sends succeed and vanish, and no lines
// ever arrive. Used by the self-contained simulation display where local
// device state is the sole source of truth.
type NopConn struct {
	lines chan string
}

// NewNopConn creates a NopConn.
func NewNopConn() *NopConn {
	return &NopConn{lines: make(chan string)}
}

// Send discards the line.
func (c *NopConn) Send(line string) error { return nil }

// Lines returns a channel that never yields until Close.
func (c *NopConn) Lines() <-chan string { return c.lines }

// Close closes the (always empty) inbound channel.
func (c *NopConn) Close() error {
	close(c.lines)
	return nil
}
