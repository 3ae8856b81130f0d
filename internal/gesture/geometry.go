package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Canonical (tip, PIP) landmark pairs for the five fingers. The thumb uses
// its IP joint as the reference point.
var (
	fingerTips = [5]int{detector.ThumbTip, detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}
	fingerPIPs = [5]int{detector.ThumbIP, detector.IndexPIP, detector.MiddlePIP, detector.RingPIP, detector.PinkyPIP}
)

// Distance returns the Euclidean distance between two landmarks in the
// image plane. Depth is ignored; all gesture thresholds are defined in
// normalized 2-D image coordinates.
func Distance(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsFingerExtended reports whether the finger identified by (tip, pip) is
// extended.
//
// For the thumb, extension is lateral: the tip x-coordinate is compared to
// the IP joint, with the comparison direction chosen by which side of the
// palm the wrist lies on. This keeps the predicate correct for either hand
// and for mirrored camera feeds.
//
// For all other fingers, extension is vertical in image space: the tip is
// above the PIP joint (image y grows downward, so above means smaller y).
func IsFingerExtended(h *detector.HandLandmarks, tip, pip int) bool {
	tipPt := h.Points[tip]
	pipPt := h.Points[pip]

	if tip == detector.ThumbTip {
		if h.Points[detector.Wrist].X < h.Points[detector.PalmCenter].X {
			return tipPt.X < pipPt.X
		}
		return tipPt.X > pipPt.X
	}

	return tipPt.Y < pipPt.Y
}

// CountExtendedFingers applies the extension predicate to the five canonical
// finger pairs. It returns the number of extended fingers and the set of
// extended tip indices, since classification rules need both.
func CountExtendedFingers(h *detector.HandLandmarks) (int, map[int]bool) {
	extended := make(map[int]bool, 5)
	for i := range fingerTips {
		if IsFingerExtended(h, fingerTips[i], fingerPIPs[i]) {
			extended[fingerTips[i]] = true
		}
	}
	return len(extended), extended
}

// meanTipToPalmDistance averages the distance from the palm center to all
// five fingertips; small values indicate a compact fist.
func meanTipToPalmDistance(h *detector.HandLandmarks) float64 {
	palm := h.Points[detector.PalmCenter]
	var sum float64
	for _, tip := range fingerTips {
		sum += Distance(palm, h.Points[tip])
	}
	return sum / float64(len(fingerTips))
}
