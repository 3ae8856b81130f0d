// Package detector provides hand detection interfaces and landmark types for
// the gesture control pipeline.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// PalmCenter is the landmark used as the palm reference point for thumb
// orientation and fist compactness checks (middle finger MCP).
const PalmCenter = MiddleMCP

// Point3D represents a normalized landmark position. X and Y are in image
// space ([0,1], Y grows downward); Z is depth and unused by the gesture
// rules.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected for one hand in
// one frame. Hands carry no identity across frames.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Valid reports whether the landmarks are usable for classification.
// Any x or y coordinate outside [0,1] marks the whole hand as unusable;
// callers treat an invalid hand the same as no hand at all.
func (h *HandLandmarks) Valid() bool {
	if h == nil {
		return false
	}
	for i := range h.Points {
		p := h.Points[i]
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return false
		}
	}
	return true
}
