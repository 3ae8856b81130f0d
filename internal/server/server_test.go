package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/sim"
	"github.com/ayusman/mudra/internal/transport"
)

// newTestServer wires a Server to an App backed by the simulated peer.
func newTestServer(t *testing.T) (*Server, *app.App) {
	t.Helper()

	peer := sim.NewPeer()
	conn := transport.NewMemoryConn(peer.HandleLine)
	t.Cleanup(func() { conn.Close() })

	a := app.New(app.Config{
		Conn:         conn,
		HoldDuration: 2 * time.Second,
	})
	return New(Config{App: a}), a
}

func TestServer_Health(t *testing.T) {
	s := New(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", response["status"])
	}
	if _, exists := response["uptime"]; !exists {
		t.Error("expected 'uptime' field in response")
	}
}

func TestServer_Health_MethodNotAllowed(t *testing.T) {
	s := New(Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}

func TestServer_State(t *testing.T) {
	s, a := newTestServer(t)

	// Turn the LED on through the pipeline, then read the state back.
	one := detector.OneLandmarks()
	open := detector.OpenPalmLandmarks()
	now := time.Now()
	a.ProcessHands([]detector.HandLandmarks{one}, now)
	a.ProcessHands([]detector.HandLandmarks{open}, now.Add(100*time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response struct {
		Mode string `json:"mode"`
		Led  struct {
			On    bool `json:"on"`
			Level int  `json:"level"`
		} `json:"led"`
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Mode != "LED" {
		t.Errorf("expected mode LED, got %s", response.Mode)
	}
	if !response.Led.On || response.Led.Level != 3 {
		t.Errorf("expected LED on at level 3, got %+v", response.Led)
	}
	if !response.Enabled {
		t.Error("expected gesture processing enabled")
	}
}

func TestServer_Stats(t *testing.T) {
	s, a := newTestServer(t)

	two := detector.TwoLandmarks()
	now := time.Now()
	a.ProcessHands([]detector.HandLandmarks{two}, now)
	a.ProcessHands([]detector.HandLandmarks{two}, now.Add(100*time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response struct {
		Counts  map[string]int `json:"counts"`
		Total   int            `json:"total"`
		Current string         `json:"current"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Counts["TWO"] != 2 || response.Total != 2 {
		t.Errorf("unexpected stats %+v", response)
	}
	if response.Current != "TWO" {
		t.Errorf("expected current gesture TWO, got %s", response.Current)
	}
}

func TestServer_Stats_Reset(t *testing.T) {
	s, a := newTestServer(t)

	open := detector.OpenPalmLandmarks()
	a.ProcessHands([]detector.HandLandmarks{open}, time.Now())

	req := httptest.NewRequest(http.MethodDelete, "/api/stats", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if a.Stats().Total() != 0 {
		t.Error("expected stats cleared after DELETE")
	}
}

func TestServer_StateUnavailableWithoutApp(t *testing.T) {
	s := New(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
