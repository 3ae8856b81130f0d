package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestClassify_ThumbsUp(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	hand := detector.ThumbsUpLandmarks()

	if g := c.Classify(&hand); g != ThumbsUp {
		t.Errorf("expected THUMBS_UP, got %s", g)
	}
}

func TestClassify_ThumbsDown(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	hand := detector.ThumbsDownLandmarks()

	if g := c.Classify(&hand); g != ThumbsDown {
		t.Errorf("expected THUMBS_DOWN, got %s", g)
	}
}

func TestClassify_One(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	hand := detector.OneLandmarks()

	if g := c.Classify(&hand); g != One {
		t.Errorf("expected ONE, got %s", g)
	}
}

func TestClassify_Two(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	hand := detector.TwoLandmarks()

	if g := c.Classify(&hand); g != Two {
		t.Errorf("expected TWO, got %s", g)
	}
}

func TestClassify_OpenPalm(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	hand := detector.OpenPalmLandmarks()

	if g := c.Classify(&hand); g != Open {
		t.Errorf("expected OPEN, got %s", g)
	}
}

func TestClassify_ClosedFist(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	hand := detector.ClosedFistLandmarks()

	if g := c.Classify(&hand); g != Closed {
		t.Errorf("expected CLOSED, got %s", g)
	}
}

func TestClassify_Ambiguous(t *testing.T) {
	// Three fingers extended matches no rule.
	c := NewClassifier(DefaultThresholds())
	hand := detector.AmbiguousLandmarks()

	if g := c.Classify(&hand); g != Unknown {
		t.Errorf("expected UNKNOWN, got %s", g)
	}
}

func TestClassify_NilHand(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	if g := c.Classify(nil); g != Unknown {
		t.Errorf("expected UNKNOWN for nil hand, got %s", g)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	// The same landmarks must always produce the same label.
	c := NewClassifier(DefaultThresholds())
	hand := detector.TwoLandmarks()

	first := c.Classify(&hand)
	for i := 0; i < 100; i++ {
		if g := c.Classify(&hand); g != first {
			t.Fatalf("classification changed on iteration %d: %s != %s", i, g, first)
		}
	}
}

func TestClassify_ThumbBeatsOne(t *testing.T) {
	// A lone extended thumb also has finger count one; it must read as a
	// thumb gesture, never as ONE.
	c := NewClassifier(DefaultThresholds())

	up := detector.ThumbsUpLandmarks()
	if g := c.Classify(&up); g == One {
		t.Error("thumbs up misread as ONE")
	}

	down := detector.ThumbsDownLandmarks()
	if g := c.Classify(&down); g == One {
		t.Error("thumbs down misread as ONE")
	}
}

func TestClassify_TwoWithoutSpread(t *testing.T) {
	// Index and middle up but held together should not read as TWO.
	c := NewClassifier(DefaultThresholds())
	hand := detector.TwoLandmarks()

	// Move the index tip next to the middle tip.
	hand.Points[detector.IndexTip] = detector.Point3D{X: 0.48, Y: 0.31}
	hand.Points[detector.IndexDIP] = detector.Point3D{X: 0.48, Y: 0.40}
	hand.Points[detector.IndexPIP] = detector.Point3D{X: 0.49, Y: 0.48}

	if g := c.Classify(&hand); g == Two {
		t.Error("fingers held together misread as TWO")
	}
}

func TestClassify_LooseFistIsUnknown(t *testing.T) {
	// Nothing extended but fingertips far from the palm: not a fist.
	c := NewClassifier(DefaultThresholds())
	hand := detector.ClosedFistLandmarks()

	// Pull every fingertip away from the palm center while keeping each
	// tip below its PIP joint.
	for _, tip := range []int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip} {
		p := hand.Points[tip]
		hand.Points[tip] = detector.Point3D{X: p.X - 0.20, Y: p.Y + 0.15}
	}

	if g := c.Classify(&hand); g != Unknown {
		t.Errorf("expected UNKNOWN for loose fist, got %s", g)
	}
}

func TestRepeatable(t *testing.T) {
	if !Repeatable(ThumbsUp) || !Repeatable(ThumbsDown) {
		t.Error("thumbs up/down should be repeatable")
	}
	for _, g := range []Gesture{None, One, Two, Open, Closed, Unknown} {
		if Repeatable(g) {
			t.Errorf("%s should not be repeatable", g)
		}
	}
}
