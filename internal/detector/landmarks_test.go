package detector

import "testing"

func TestHandLandmarks_Valid(t *testing.T) {
	hand := OpenPalmLandmarks()
	if !hand.Valid() {
		t.Error("preset landmarks should be valid")
	}
}

func TestHandLandmarks_Valid_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HandLandmarks)
	}{
		{"x below zero", func(h *HandLandmarks) { h.Points[IndexTip].X = -0.1 }},
		{"x above one", func(h *HandLandmarks) { h.Points[IndexTip].X = 1.1 }},
		{"y below zero", func(h *HandLandmarks) { h.Points[Wrist].Y = -0.5 }},
		{"y above one", func(h *HandLandmarks) { h.Points[PinkyTip].Y = 2.0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := OpenPalmLandmarks()
			tt.mutate(&hand)
			if hand.Valid() {
				t.Error("out-of-range landmark should invalidate the hand")
			}
		})
	}
}

func TestHandLandmarks_Valid_Nil(t *testing.T) {
	var hand *HandLandmarks
	if hand.Valid() {
		t.Error("nil hand should not be valid")
	}
}

func TestPalmCenter_IsMiddleMCP(t *testing.T) {
	if PalmCenter != MiddleMCP {
		t.Errorf("palm center should be the middle MCP landmark, got index %d", PalmCenter)
	}
}
