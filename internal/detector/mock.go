package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// The preset hands below share a common frame: wrist at (0.55, 0.85) and
// palm center (middle MCP) at (0.50, 0.60), so the wrist sits to the right
// of the palm and the thumb counts as extended when its tip is right of the
// IP joint.

// ThumbsUpLandmarks returns a hand with only the thumb extended, pointing
// up, and the other four fingers curled.
func ThumbsUpLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.55, Y: 0.85}

	// Thumb pointing upward, tip well above the IP joint
	lm.Points[ThumbCMC] = Point3D{X: 0.57, Y: 0.75}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.65}
	lm.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.55}
	lm.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.40}

	// Remaining fingers curled (tips below their PIP joints)
	lm.Points[IndexMCP] = Point3D{X: 0.53, Y: 0.64}
	lm.Points[IndexPIP] = Point3D{X: 0.53, Y: 0.66}
	lm.Points[IndexDIP] = Point3D{X: 0.51, Y: 0.68}
	lm.Points[IndexTip] = Point3D{X: 0.50, Y: 0.70}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.60}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.64}
	lm.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.66}
	lm.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.68}

	lm.Points[RingMCP] = Point3D{X: 0.46, Y: 0.62}
	lm.Points[RingPIP] = Point3D{X: 0.46, Y: 0.66}
	lm.Points[RingDIP] = Point3D{X: 0.44, Y: 0.68}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.70}

	lm.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.64}
	lm.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.68}
	lm.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.70}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.72}

	return lm
}

// ThumbsDownLandmarks returns a hand with only the thumb extended, pointing
// down past the palm center.
func ThumbsDownLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.55, Y: 0.45}

	// Thumb pointing downward, tip well below the palm center
	lm.Points[ThumbCMC] = Point3D{X: 0.57, Y: 0.55}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.62}
	lm.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.70}
	lm.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.85}

	lm.Points[IndexMCP] = Point3D{X: 0.53, Y: 0.56}
	lm.Points[IndexPIP] = Point3D{X: 0.53, Y: 0.58}
	lm.Points[IndexDIP] = Point3D{X: 0.51, Y: 0.60}
	lm.Points[IndexTip] = Point3D{X: 0.50, Y: 0.62}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.55}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.58}
	lm.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.60}
	lm.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.62}

	lm.Points[RingMCP] = Point3D{X: 0.46, Y: 0.56}
	lm.Points[RingPIP] = Point3D{X: 0.46, Y: 0.59}
	lm.Points[RingDIP] = Point3D{X: 0.44, Y: 0.61}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.63}

	lm.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.57}
	lm.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.60}
	lm.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.62}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.64}

	return lm
}

// OneLandmarks returns a hand with only the index finger extended.
func OneLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.55, Y: 0.85}

	// Thumb curled across the palm (tip left of the IP joint)
	lm.Points[ThumbCMC] = Point3D{X: 0.57, Y: 0.72}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.66}
	lm.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.62}
	lm.Points[ThumbTip] = Point3D{X: 0.54, Y: 0.64}

	// Index pointing up
	lm.Points[IndexMCP] = Point3D{X: 0.53, Y: 0.62}
	lm.Points[IndexPIP] = Point3D{X: 0.54, Y: 0.50}
	lm.Points[IndexDIP] = Point3D{X: 0.55, Y: 0.42}
	lm.Points[IndexTip] = Point3D{X: 0.55, Y: 0.32}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.60}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.64}
	lm.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.66}
	lm.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.68}

	lm.Points[RingMCP] = Point3D{X: 0.46, Y: 0.62}
	lm.Points[RingPIP] = Point3D{X: 0.46, Y: 0.66}
	lm.Points[RingDIP] = Point3D{X: 0.44, Y: 0.68}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.70}

	lm.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.64}
	lm.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.68}
	lm.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.70}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.72}

	return lm
}

// TwoLandmarks returns a hand with index and middle fingers extended and
// clearly spread apart (a peace sign).
func TwoLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.55, Y: 0.85}

	lm.Points[ThumbCMC] = Point3D{X: 0.57, Y: 0.72}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.66}
	lm.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.62}
	lm.Points[ThumbTip] = Point3D{X: 0.54, Y: 0.64}

	lm.Points[IndexMCP] = Point3D{X: 0.56, Y: 0.62}
	lm.Points[IndexPIP] = Point3D{X: 0.58, Y: 0.50}
	lm.Points[IndexDIP] = Point3D{X: 0.59, Y: 0.42}
	lm.Points[IndexTip] = Point3D{X: 0.60, Y: 0.32}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.60}
	lm.Points[MiddlePIP] = Point3D{X: 0.49, Y: 0.48}
	lm.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.40}
	lm.Points[MiddleTip] = Point3D{X: 0.47, Y: 0.30}

	lm.Points[RingMCP] = Point3D{X: 0.46, Y: 0.62}
	lm.Points[RingPIP] = Point3D{X: 0.46, Y: 0.66}
	lm.Points[RingDIP] = Point3D{X: 0.44, Y: 0.68}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.70}

	lm.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.64}
	lm.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.68}
	lm.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.70}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.72}

	return lm
}

// OpenPalmLandmarks returns a hand with all five fingers extended.
func OpenPalmLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.55, Y: 0.85}

	// Thumb splayed out to the side
	lm.Points[ThumbCMC] = Point3D{X: 0.60, Y: 0.75}
	lm.Points[ThumbMCP] = Point3D{X: 0.65, Y: 0.68}
	lm.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.62}
	lm.Points[ThumbTip] = Point3D{X: 0.72, Y: 0.56}

	lm.Points[IndexMCP] = Point3D{X: 0.56, Y: 0.62}
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.50}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.42}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.33}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.60}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.46}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.37}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.27}

	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.62}
	lm.Points[RingPIP] = Point3D{X: 0.43, Y: 0.50}
	lm.Points[RingDIP] = Point3D{X: 0.42, Y: 0.42}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.33}

	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.66}
	lm.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.56}
	lm.Points[PinkyDIP] = Point3D{X: 0.36, Y: 0.48}
	lm.Points[PinkyTip] = Point3D{X: 0.35, Y: 0.40}

	return lm
}

// ClosedFistLandmarks returns a compact fist: no fingers extended and all
// fingertips tucked close to the palm center.
func ClosedFistLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.55, Y: 0.80}

	lm.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.72}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.68}
	lm.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.66}
	lm.Points[ThumbTip] = Point3D{X: 0.54, Y: 0.68}

	lm.Points[IndexMCP] = Point3D{X: 0.53, Y: 0.62}
	lm.Points[IndexPIP] = Point3D{X: 0.53, Y: 0.58}
	lm.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.62}
	lm.Points[IndexTip] = Point3D{X: 0.51, Y: 0.66}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.60}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.58}
	lm.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.62}
	lm.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.66}

	lm.Points[RingMCP] = Point3D{X: 0.47, Y: 0.61}
	lm.Points[RingPIP] = Point3D{X: 0.47, Y: 0.59}
	lm.Points[RingDIP] = Point3D{X: 0.46, Y: 0.63}
	lm.Points[RingTip] = Point3D{X: 0.45, Y: 0.66}

	lm.Points[PinkyMCP] = Point3D{X: 0.44, Y: 0.62}
	lm.Points[PinkyPIP] = Point3D{X: 0.44, Y: 0.60}
	lm.Points[PinkyDIP] = Point3D{X: 0.43, Y: 0.64}
	lm.Points[PinkyTip] = Point3D{X: 0.42, Y: 0.66}

	return lm
}

// AmbiguousLandmarks returns a hand matching no rule: index, middle and
// ring extended with thumb and pinky curled.
func AmbiguousLandmarks() HandLandmarks {
	lm := OpenPalmLandmarks()

	// Curl the thumb back across the palm
	lm.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.62}
	lm.Points[ThumbTip] = Point3D{X: 0.54, Y: 0.64}

	// Curl the pinky
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.64}
	lm.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.66}
	lm.Points[PinkyDIP] = Point3D{X: 0.39, Y: 0.68}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.70}

	return lm
}
