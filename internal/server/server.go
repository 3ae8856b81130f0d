// Package server provides the HTTP status and observability endpoints for
// the gesture control system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	App       *app.App
	Store     *store.Store
	StaticDir string
}

// Server exposes the session state over HTTP: current mode and device
// levels, gesture statistics, the recent command log, and a WebSocket
// stream of issued commands.
type Server struct {
	config Config
	mux    *http.ServeMux
	events *EventsHandler
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		events: NewEventsHandler(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// Events returns the WebSocket broadcast handler, so the application can
// publish command events into it.
func (s *Server) Events() *EventsHandler {
	return s.events
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.App != nil {
		s.mux.HandleFunc("/api/state", s.handleState)
		s.mux.HandleFunc("/api/stats", s.handleStats)
	}

	if s.config.Store != nil {
		s.mux.HandleFunc("/api/log", s.handleLog)
	}

	s.mux.Handle("/api/events", s.events)

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	})
}

// handleState reports the controller's current mode and device states.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := s.config.App.Controller().Snapshot()
	writeJSON(w, map[string]interface{}{
		"mode": snap.Mode,
		"led": map[string]interface{}{
			"on":    snap.Led.On,
			"level": snap.Led.Level,
		},
		"motor": map[string]interface{}{
			"on":    snap.Motor.On,
			"level": snap.Motor.Level,
		},
		"holdRemainingMs": snap.HoldRemaining.Milliseconds(),
		"enabled":         s.config.App.IsEnabled(),
	})
}

// handleStats reports per-gesture observation counts for the session.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		stats := s.config.App.Stats()
		response := map[string]interface{}{
			"counts":  stats.Counts(),
			"total":   stats.Total(),
			"current": stats.Current(),
		}

		// All-time command counts from the persistent log, when available.
		if s.config.Store != nil {
			if counts, err := s.config.Store.Events().CountByGesture(); err == nil {
				response["commandCounts"] = counts
			}
		}
		writeJSON(w, response)
	case http.MethodDelete:
		s.config.App.Stats().Reset()
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleLog returns the most recent commands from the persistent log.
func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	events, err := s.config.Store.Events().Recent(50)
	if err != nil {
		http.Error(w, "Failed to read command log", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{"events": events})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
