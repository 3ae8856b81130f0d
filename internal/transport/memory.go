package transport

import "sync"

// MemoryConn is an in-process Conn that hands each sent line to a peer
// handler and feeds the handler's reply lines back as inbound traffic. It
// bridges the controller to the simulated device without a serial port.
type MemoryConn struct {
	mu      sync.Mutex
	handler func(line string) []string
	lines   chan string
	closed  bool
}

// NewMemoryConn creates a MemoryConn around the given peer handler.
func NewMemoryConn(handler func(line string) []string) *MemoryConn {
	return &MemoryConn{
		handler: handler,
		lines:   make(chan string, 64),
	}
}

// Send delivers the line to the peer handler and queues its replies. Like
// the serial link, delivery is fire and forget: replies that do not fit in
// the inbound buffer are dropped rather than blocking the sender.
func (c *MemoryConn) Send(line string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	handler := c.handler
	c.mu.Unlock()

	if handler == nil {
		return nil
	}
	for _, reply := range handler(line) {
		c.Push(reply)
	}
	return nil
}

// Push queues one peer-initiated inbound line (greetings, unsolicited
// status reports). Lines are dropped when the buffer is full or the
// connection is closed.
func (c *MemoryConn) Push(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.lines <- line:
	default:
	}
}

// Lines returns the inbound line channel.
func (c *MemoryConn) Lines() <-chan string {
	return c.lines
}

// Close shuts the connection; further sends fail with ErrClosed.
func (c *MemoryConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.lines)
	return nil
}
