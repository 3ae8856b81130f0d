package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/device"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventsHandler streams issued device commands to WebSocket clients.
type EventsHandler struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

// NewEventsHandler creates a handler with no connected clients.
func NewEventsHandler() *EventsHandler {
	return &EventsHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the request to a WebSocket connection and keeps it
// registered until the peer disconnects.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Reads are discarded; the socket exists only to push events out.
	// The read loop still runs so close frames are noticed promptly.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *EventsHandler) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Publish sends a command event to all connected clients. Clients that
// fail to accept the write are dropped.
func (h *EventsHandler) Publish(ev device.Event) {
	payload := map[string]interface{}{
		"gesture": ev.Gesture,
		"command": ev.Command,
		"mode":    ev.Mode,
		"led": map[string]interface{}{
			"on":    ev.Led.On,
			"level": ev.Led.Level,
		},
		"motor": map[string]interface{}{
			"on":    ev.Motor.On,
			"level": ev.Motor.Level,
		},
		"at": ev.At.Format(time.RFC3339Nano),
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			h.remove(conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *EventsHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
