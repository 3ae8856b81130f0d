// Package config loads runtime configuration from the environment, with an
// optional .env file for development setups.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable of the gesture control system. All thresholds
// are in the normalized landmark coordinate space.
type Config struct {
	SerialPort string // serial device path; empty means no physical device
	BaudRate   int
	Simulate   bool // use the in-process simulated peer instead of a port

	CameraID int
	Mirror   bool // flip frames horizontally

	HTTPBind string // address for the status/observability server
	DBPath   string // SQLite command log; empty disables persistence

	HoldDuration time.Duration // thumbs up/down hold-to-repeat interval
	FrameRate    int           // frames processed per second

	ThumbMargin float64 // thumbs up/down vertical margin
	SpreadMin   float64 // peace-sign fingertip spread
	FistMax     float64 // fist compactness threshold
}

// Load reads MUDRA_* environment variables, falling back to defaults. A
// .env file in the working directory is loaded first if present; a missing
// file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		SerialPort:   getEnv("MUDRA_SERIAL_PORT", ""),
		BaudRate:     getEnvInt("MUDRA_BAUD_RATE", 115200),
		Simulate:     getEnvBool("MUDRA_SIMULATE", false),
		CameraID:     getEnvInt("MUDRA_CAMERA_ID", 0),
		Mirror:       getEnvBool("MUDRA_MIRROR", true),
		HTTPBind:     getEnv("MUDRA_HTTP_BIND", ":8080"),
		DBPath:       getEnv("MUDRA_DB_PATH", defaultDBPath()),
		HoldDuration: time.Duration(getEnvInt("MUDRA_HOLD_MS", 2000)) * time.Millisecond,
		FrameRate:    getEnvInt("MUDRA_FRAME_RATE", 15),
		ThumbMargin:  getEnvFloat("MUDRA_THUMB_MARGIN", 0.05),
		SpreadMin:    getEnvFloat("MUDRA_SPREAD_MIN", 0.05),
		FistMax:      getEnvFloat("MUDRA_FIST_MAX", 0.12),
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mudra.db"
	}
	return home + "/.mudra/mudra.db"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
