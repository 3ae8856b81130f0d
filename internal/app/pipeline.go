package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
)

// runPipeline is the main control loop: one frame is captured, classified
// and handed to the controller per tick. Processing is strictly sequential,
// one gesture at a time, which keeps the controller's behavior
// deterministic with respect to the frame order.
func (a *App) runPipeline() {
	interval := time.Second / time.Duration(a.config.FrameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	stop := a.stopDone()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}
			a.processFrame()
		}
	}
}

// processFrame captures and classifies one frame. Capture or detection
// failures are treated as "no hand" for this frame; nothing is fatal here.
func (a *App) processFrame() {
	if a.camera == nil || a.detector == nil {
		return
	}

	frame, err := a.camera.ReadFrame()
	if err != nil {
		log.Printf("Error reading frame: %v", err)
		a.ProcessHands(nil, time.Now())
		return
	}

	hands, err := a.detector.Detect(frame)
	frame.Close()
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		a.ProcessHands(nil, time.Now())
		return
	}

	a.ProcessHands(hands, time.Now())
}

// ProcessHands runs one controller step for the given detection result.
// Only the first hand is considered; a missing or invalid hand (wrong
// landmark count semantics, out-of-range coordinates) is treated as no
// hand, which is distinct from a hand classifying as Unknown.
func (a *App) ProcessHands(hands []detector.HandLandmarks, now time.Time) gesture.Gesture {
	g := gesture.None
	if len(hands) > 0 && hands[0].Valid() {
		g = a.classifier.Classify(&hands[0])
	}

	a.controller.Step(g, now)
	a.stats.Record(g, now)

	return g
}
