package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/device"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/sim"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/transport"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	headless := flag.Bool("headless", false, "Run without a system tray icon")
	simulate := flag.Bool("simulate", false, "Use the in-process simulated device instead of a serial port")
	portFlag := flag.String("port", "", "Serial port of the device (overrides MUDRA_SERIAL_PORT)")
	flag.Parse()

	fmt.Println("Mudra - Hand Gesture Device Control")

	cfg := config.Load()
	if *portFlag != "" {
		cfg.SerialPort = *portFlag
	}
	if *simulate {
		cfg.Simulate = true
	}

	// Initialize the store
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	conn := openConn(cfg)
	defer conn.Close()

	var det detector.Detector
	det, err = detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		log.Printf("MediaPipe detector unavailable (%v), using mock detector", err)
		det = detector.NewMockDetector()
	}

	a := app.New(app.Config{
		Camera:   capture.NewCamera(cfg.CameraID, cfg.Mirror),
		Detector: det,
		Conn:     conn,
		Store:    st,
		Thresholds: gesture.Thresholds{
			ThumbMargin: cfg.ThumbMargin,
			SpreadMin:   cfg.SpreadMin,
			FistMax:     cfg.FistMax,
		},
		HoldDuration: cfg.HoldDuration,
		FrameRate:    cfg.FrameRate,
	})

	srv := server.New(server.Config{
		App:   a,
		Store: st,
	})
	a.Subscribe(srv.Events().Publish)

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start gesture pipeline: %v", err)
	}

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.HTTPBind)
		if err := srv.ListenAndServe(cfg.HTTPBind); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if *headless {
		runHeadless()
	} else {
		runTray(a, cfg.HTTPBind)
	}

	a.Stop()
	log.Println("Shutdown complete")
}

// openConn builds the device connection from the configuration. The
// simulator is opt-in and wins over a serial port; with neither configured,
// commands go to a no-op sink so the pipeline can still be exercised.
func openConn(cfg config.Config) transport.Conn {
	if cfg.Simulate {
		peer := sim.NewPeer()
		conn := transport.NewMemoryConn(peer.HandleLine)
		conn.Push(peer.Greeting())
		log.Println("Using simulated device")
		return conn
	}

	if cfg.SerialPort != "" {
		conn, err := transport.DialSerial(cfg.SerialPort, cfg.BaudRate)
		if err != nil {
			log.Fatalf("Failed to open serial port %s: %v", cfg.SerialPort, err)
		}
		if err := conn.WaitReady(5 * time.Second); err != nil {
			log.Printf("Device greeting not seen: %v", err)
		} else {
			log.Printf("Device ready on %s", cfg.SerialPort)
		}
		return conn
	}

	log.Println("No device configured, commands will be discarded")
	return transport.NewNopConn()
}

// runHeadless blocks until an interrupt or termination signal arrives.
func runHeadless() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received signal %v, shutting down", sig)
}

// runTray runs the system tray UI. Blocks until Quit is selected.
func runTray(a *app.App, httpBind string) {
	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		log.Printf("Gesture control enabled: %v", enabled)
	})
	t.OnDashboard(func() {
		openBrowser("http://localhost" + httpBind)
	})

	// Keep the mode and gesture entries current.
	a.Subscribe(func(ev device.Event) {
		t.SetMode(string(ev.Mode))
		t.SetLastGesture(string(ev.Gesture))
	})

	t.Run()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch {
	case fileExists("/usr/bin/open"):
		cmd = exec.Command("open", url)
	case fileExists("/usr/bin/xdg-open"):
		cmd = exec.Command("xdg-open", url)
	default:
		log.Printf("Dashboard available at %s", url)
		return
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
