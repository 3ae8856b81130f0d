package main

import (
	"testing"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/transport"
)

func TestOpenConn_Simulator(t *testing.T) {
	conn := openConn(config.Config{Simulate: true})
	defer conn.Close()

	if _, ok := conn.(*transport.MemoryConn); !ok {
		t.Fatalf("expected in-process link to the simulated peer, got %T", conn)
	}

	// The peer greeting must already be queued.
	if line := <-conn.Lines(); line != "READY:GESTURE_CONTROL" {
		t.Errorf("expected peer greeting, got %q", line)
	}
}

func TestOpenConn_SimulatorWinsOverPort(t *testing.T) {
	// With the simulator requested, the serial port is not opened even when
	// one is configured.
	conn := openConn(config.Config{Simulate: true, SerialPort: "/dev/null"})
	defer conn.Close()

	if _, ok := conn.(*transport.MemoryConn); !ok {
		t.Fatalf("expected the simulated peer, got %T", conn)
	}
}

func TestOpenConn_NoDeviceIsNop(t *testing.T) {
	conn := openConn(config.Config{})
	defer conn.Close()

	if _, ok := conn.(*transport.NopConn); !ok {
		t.Fatalf("expected a no-op connection with no device configured, got %T", conn)
	}

	if err := conn.Send("LED:ON"); err != nil {
		t.Errorf("no-op send failed: %v", err)
	}
}
