package gesture

import "github.com/ayusman/mudra/internal/detector"

// Thresholds holds the tunable distances used by the classification rules.
// All values are in the same normalized coordinate space as the landmarks,
// so they can be recalibrated per camera and viewing distance.
type Thresholds struct {
	// ThumbMargin is the vertical margin the thumb tip must clear (above
	// its IP joint for thumbs up, below the palm center for thumbs down).
	ThumbMargin float64

	// SpreadMin is the minimum index-to-middle fingertip separation that
	// distinguishes a peace sign from two fingers held together.
	SpreadMin float64

	// FistMax is the maximum mean fingertip-to-palm distance for a
	// compact fist.
	FistMax float64
}

// DefaultThresholds returns the empirically tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ThumbMargin: 0.05,
		SpreadMin:   0.05,
		FistMax:     0.12,
	}
}

// Classifier maps one hand's landmarks to a gesture label. It is stateless:
// Classify is a pure function of its input and the configured thresholds.
type Classifier struct {
	t Thresholds
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{t: t}
}

// Classify evaluates the gesture rules in priority order and returns the
// first match, or Unknown if none apply.
//
// The thumb-specific rules run before the generic one-finger rule because a
// lone extended thumb also has an extended-finger count of one; checking
// thumbs up/down first prevents it from being read as ONE.
func (c *Classifier) Classify(h *detector.HandLandmarks) Gesture {
	if h == nil {
		return Unknown
	}

	count, extended := CountExtendedFingers(h)

	thumbTip := h.Points[detector.ThumbTip]
	thumbIP := h.Points[detector.ThumbIP]
	wrist := h.Points[detector.Wrist]
	palm := h.Points[detector.PalmCenter]

	thumbExtended := extended[detector.ThumbTip]

	// Thumbs up: thumb alone, pointing well above the wrist and IP joint,
	// remaining fingers curled.
	if thumbExtended && count == 1 {
		if thumbTip.Y < wrist.Y && thumbTip.Y < thumbIP.Y-c.t.ThumbMargin && fourFingersClosed(h) {
			return ThumbsUp
		}
	}

	// Thumbs down: thumb alone, pointing well below the palm center.
	if thumbExtended && count == 1 {
		if thumbTip.Y > palm.Y+c.t.ThumbMargin && fourFingersClosed(h) {
			return ThumbsDown
		}
	}

	// Number one: index finger alone, thumb curled.
	if extended[detector.IndexTip] && count == 1 && !thumbExtended {
		return One
	}

	// Number two: index and middle up with a visible spread between them.
	if extended[detector.IndexTip] && extended[detector.MiddleTip] && count == 2 {
		if Distance(h.Points[detector.IndexTip], h.Points[detector.MiddleTip]) > c.t.SpreadMin {
			return Two
		}
	}

	// Open hand: at least four fingers including the thumb.
	if count >= 4 && thumbExtended {
		return Open
	}

	// Closed fist: nothing extended and all fingertips tucked near the palm.
	if count == 0 && meanTipToPalmDistance(h) < c.t.FistMax {
		return Closed
	}

	return Unknown
}

// fourFingersClosed reports whether the four non-thumb fingertips all sit
// below their PIP joints.
func fourFingersClosed(h *detector.HandLandmarks) bool {
	return h.Points[detector.IndexTip].Y > h.Points[detector.IndexPIP].Y &&
		h.Points[detector.MiddleTip].Y > h.Points[detector.MiddlePIP].Y &&
		h.Points[detector.RingTip].Y > h.Points[detector.RingPIP].Y &&
		h.Points[detector.PinkyTip].Y > h.Points[detector.PinkyPIP].Y
}
