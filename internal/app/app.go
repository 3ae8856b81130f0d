// Package app wires the capture, detection, classification and device
// control pieces into the live gesture control loop.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/device"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/transport"
)

// DefaultFrameRate is the frames-per-second the pipeline processes when no
// rate is configured.
const DefaultFrameRate = 15

// Config holds configuration options for the application.
type Config struct {
	Camera       capture.Camera
	Detector     detector.Detector
	Conn         transport.Conn
	Store        *store.Store
	Thresholds   gesture.Thresholds
	HoldDuration time.Duration
	FrameRate    int
}

// App orchestrates the gesture control session: one goroutine steps the
// pipeline a frame at a time, a second drains inbound status lines, and a
// third fans out command events to the store and subscribers.
type App struct {
	config     Config
	camera     capture.Camera
	detector   detector.Detector
	classifier *gesture.Classifier
	controller *device.Controller
	stats      *gesture.Stats
	conn       transport.Conn

	enabled   bool
	mu        sync.RWMutex
	stopCh    chan struct{}
	events    chan device.Event
	listeners []func(device.Event)
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.FrameRate <= 0 {
		config.FrameRate = DefaultFrameRate
	}
	if config.Thresholds == (gesture.Thresholds{}) {
		config.Thresholds = gesture.DefaultThresholds()
	}

	a := &App{
		config:     config,
		camera:     config.Camera,
		detector:   config.Detector,
		classifier: gesture.NewClassifier(config.Thresholds),
		controller: device.NewController(config.Conn, config.HoldDuration),
		stats:      gesture.NewStats(),
		conn:       config.Conn,
		enabled:    true,
		events:     make(chan device.Event, 64),
	}

	// Hand events off to the fan-out goroutine so the frame loop never
	// waits on the database or a slow subscriber.
	a.controller.OnEvent(func(e device.Event) {
		select {
		case a.events <- e:
		default:
			log.Printf("event buffer full, dropping %s", e.Command)
		}
	})

	return a
}

// SetEnabled enables or disables gesture processing. Frames are still
// captured while disabled, but gestures are not classified or acted on.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture processing is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Subscribe registers a command event listener. Must be called before
// Start.
func (a *App) Subscribe(fn func(device.Event)) {
	a.listeners = append(a.listeners, fn)
}

// Controller returns the interaction controller.
func (a *App) Controller() *device.Controller {
	return a.controller
}

// Stats returns the gesture statistics accumulator.
func (a *App) Stats() *gesture.Stats {
	return a.stats
}

// Start opens the camera and begins the pipeline, receiver and event
// goroutines.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if a.camera != nil {
		if err := a.camera.Open(); err != nil {
			return err
		}
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline()
	go a.runReceiver()
	go a.runEvents()

	log.Println("Gesture control pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources. The transport is closed
// first, which ends the receiver goroutine; any partial inbound line is
// discarded with it.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			log.Printf("Error closing transport: %v", err)
		}
	}

	if a.camera != nil {
		if err := a.camera.Close(); err != nil {
			log.Printf("Error closing camera: %v", err)
		}
	}

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Gesture control pipeline stopped")
}

// runReceiver drains inbound lines from the transport and applies parsed
// status updates. Unparseable lines are dropped without touching state.
// The loop ends when the transport closes its line channel.
func (a *App) runReceiver() {
	if a.conn == nil {
		return
	}
	for line := range a.conn.Lines() {
		if update, ok := device.ParseLine(line); ok {
			a.controller.ApplyStatus(update)
		}
	}
}

// runEvents persists command events and notifies subscribers.
func (a *App) runEvents() {
	for {
		select {
		case <-a.stopDone():
			return
		case e := <-a.events:
			a.persistEvent(e)
			for _, fn := range a.listeners {
				fn(e)
			}
		}
	}
}

func (a *App) persistEvent(e device.Event) {
	if a.config.Store == nil {
		return
	}

	err := a.config.Store.Events().Log(&store.CommandEvent{
		Gesture:    string(e.Gesture),
		Command:    e.Command,
		Mode:       string(e.Mode),
		LedOn:      e.Led.On,
		LedLevel:   e.Led.Level,
		MotorOn:    e.Motor.On,
		MotorLevel: e.Motor.Level,
		CreatedAt:  e.At,
	})
	if err != nil {
		log.Printf("Failed to log command event: %v", err)
	}
}

// stopDone returns the current stop channel under the read lock, so the
// long-running goroutines observe Stop.
func (a *App) stopDone() <-chan struct{} {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.stopCh == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return a.stopCh
}
