package app

import (
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/device"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/sim"
	"github.com/ayusman/mudra/internal/transport"
)

// newTestApp wires an App to the simulated peer over an in-process link.
// The camera and detector are left nil: tests drive ProcessHands directly.
func newTestApp(t *testing.T) (*App, *sim.Peer) {
	t.Helper()

	peer := sim.NewPeer()
	conn := transport.NewMemoryConn(peer.HandleLine)
	t.Cleanup(func() { conn.Close() })

	a := New(Config{
		Conn:         conn,
		HoldDuration: 2 * time.Second,
	})
	return a, peer
}

func TestProcessHands_ClassifiesFirstHand(t *testing.T) {
	a, _ := newTestApp(t)

	hand := detector.OpenPalmLandmarks()
	g := a.ProcessHands([]detector.HandLandmarks{hand}, time.Now())

	if g != gesture.Open {
		t.Errorf("expected OPEN, got %s", g)
	}
}

func TestProcessHands_NoHandIsNone(t *testing.T) {
	a, _ := newTestApp(t)

	if g := a.ProcessHands(nil, time.Now()); g != gesture.None {
		t.Errorf("expected None for no hands, got %s", g)
	}
}

func TestProcessHands_InvalidHandIsNone(t *testing.T) {
	a, _ := newTestApp(t)

	hand := detector.OpenPalmLandmarks()
	hand.Points[detector.IndexTip].X = 1.4 // out of frame

	if g := a.ProcessHands([]detector.HandLandmarks{hand}, time.Now()); g != gesture.None {
		t.Errorf("expected None for invalid landmarks, got %s", g)
	}
}

func TestProcessHands_DrivesThePeer(t *testing.T) {
	a, peer := newTestApp(t)
	start := time.Now()

	one := detector.OneLandmarks()
	open := detector.OpenPalmLandmarks()

	a.ProcessHands([]detector.HandLandmarks{one}, start)
	a.ProcessHands([]detector.HandLandmarks{open}, start.Add(100*time.Millisecond))

	_, led, _ := peer.Snapshot()
	if !led.On || led.Level != device.DefaultOnLevel {
		t.Errorf("expected peer LED on at %d, got %+v", device.DefaultOnLevel, led)
	}

	snap := a.Controller().Snapshot()
	if !snap.Led.On {
		t.Error("expected local LED state on")
	}
}

func TestProcessHands_RecordsStats(t *testing.T) {
	a, _ := newTestApp(t)
	now := time.Now()

	two := detector.TwoLandmarks()
	a.ProcessHands([]detector.HandLandmarks{two}, now)
	a.ProcessHands([]detector.HandLandmarks{two}, now.Add(100*time.Millisecond))
	a.ProcessHands(nil, now.Add(200*time.Millisecond))

	if got := a.Stats().Counts()[gesture.Two]; got != 2 {
		t.Errorf("expected 2 TWO observations, got %d", got)
	}
	if a.Stats().Total() != 2 {
		t.Errorf("no-hand frames should not be counted, total is %d", a.Stats().Total())
	}
}

func TestApp_StatusResynchronizesController(t *testing.T) {
	a, _ := newTestApp(t)

	u, ok := device.ParseLine("STATUS:MOTOR,OFF,2,ON,5")
	if !ok {
		t.Fatal("status line should parse")
	}
	a.Controller().ApplyStatus(u)

	snap := a.Controller().Snapshot()
	if snap.Mode != device.ModeMotor || snap.Led.Level != 2 || !snap.Motor.On {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestApp_EnabledToggle(t *testing.T) {
	a, _ := newTestApp(t)

	if !a.IsEnabled() {
		t.Error("gesture processing should start enabled")
	}
	a.SetEnabled(false)
	if a.IsEnabled() {
		t.Error("expected disabled after SetEnabled(false)")
	}
}
