package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/device"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/sim"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/transport"
)

func TestE2E_CompleteSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	peer := sim.NewPeer()
	conn := transport.NewMemoryConn(peer.HandleLine)
	conn.Push(peer.Greeting())

	application := app.New(app.Config{
		Conn:         conn,
		Store:        s,
		HoldDuration: 2 * time.Second,
	})

	srv := server.New(server.Config{App: application, Store: s})
	application.Subscribe(srv.Events().Publish)

	ts := httptest.NewServer(srv)
	defer ts.Close()
	client := ts.Client()

	// No camera or detector configured: the pipeline goroutine idles and
	// the test drives detection results directly.
	if err := application.Start(); err != nil {
		t.Fatalf("app.Start() error = %v", err)
	}
	defer application.Stop()

	t.Run("GestureSession", func(t *testing.T) {
		// Select the LED, turn it on, hold thumbs up through one repeat
		// interval, then close the fist.
		one := detector.OneLandmarks()
		open := detector.OpenPalmLandmarks()
		thumbsUp := detector.ThumbsUpLandmarks()
		fist := detector.ClosedFistLandmarks()

		start := time.Now()
		application.ProcessHands([]detector.HandLandmarks{one}, start)
		application.ProcessHands([]detector.HandLandmarks{open}, start.Add(100*time.Millisecond))
		application.ProcessHands([]detector.HandLandmarks{thumbsUp}, start.Add(200*time.Millisecond))
		application.ProcessHands([]detector.HandLandmarks{thumbsUp}, start.Add(2200*time.Millisecond))
		application.ProcessHands([]detector.HandLandmarks{fist}, start.Add(2300*time.Millisecond))

		_, led, _ := peer.Snapshot()
		if led.On {
			t.Error("peer LED should be off at the end of the session")
		}
		if led.Level != 4 {
			t.Errorf("peer LED should remember level 4, got %d", led.Level)
		}

		snap := application.Controller().Snapshot()
		if snap.Led.On || snap.Led.Level != 4 {
			t.Errorf("local LED state should match the peer, got %+v", snap.Led)
		}
	})

	t.Run("StateEndpoint", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/state")
		if err != nil {
			t.Fatalf("get state error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var state struct {
			Mode string `json:"mode"`
			Led  struct {
				On    bool `json:"on"`
				Level int  `json:"level"`
			} `json:"led"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
			t.Fatalf("decode state error = %v", err)
		}

		if state.Mode != string(device.ModeLED) {
			t.Errorf("mode = %s, want LED", state.Mode)
		}
		if state.Led.On || state.Led.Level != 4 {
			t.Errorf("led = %+v, want off at level 4", state.Led)
		}
	})

	t.Run("StatsEndpoint", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/stats")
		if err != nil {
			t.Fatalf("get stats error = %v", err)
		}
		defer resp.Body.Close()

		var stats struct {
			Counts map[string]int `json:"counts"`
			Total  int            `json:"total"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
			t.Fatalf("decode stats error = %v", err)
		}

		if stats.Counts["THUMBS_UP"] != 2 {
			t.Errorf("THUMBS_UP count = %d, want 2", stats.Counts["THUMBS_UP"])
		}
		if stats.Total != 5 {
			t.Errorf("total observations = %d, want 5", stats.Total)
		}
	})

	t.Run("CommandLogPersisted", func(t *testing.T) {
		// Persistence runs on the event goroutine; poll briefly.
		deadline := time.Now().Add(2 * time.Second)
		var events []*store.CommandEvent
		for time.Now().Before(deadline) {
			var err error
			events, err = s.Events().Recent(10)
			if err != nil {
				t.Fatalf("read command log error = %v", err)
			}
			if len(events) == 4 {
				break
			}
			time.Sleep(20 * time.Millisecond)
		}

		if len(events) != 4 {
			t.Fatalf("logged commands = %d, want 4", len(events))
		}

		// Newest first: LED:OFF, LED:UP, LED:ON, MODE:LED
		if events[0].Command != "LED:OFF" || events[3].Command != "MODE:LED" {
			t.Errorf("unexpected command order: %s ... %s", events[0].Command, events[3].Command)
		}
	})
}
