// Package gesture turns hand landmarks into a small fixed vocabulary of
// gesture labels and provides the hold-to-repeat timing used for continuous
// level adjustment.
package gesture

// Gesture is one of the recognized hand gesture labels.
type Gesture string

const (
	// None means no hand was present in the frame. It is distinct from
	// Unknown, which means a hand was seen but matched no rule.
	None Gesture = ""

	One        Gesture = "ONE"
	Two        Gesture = "TWO"
	Open       Gesture = "OPEN"
	Closed     Gesture = "CLOSED"
	ThumbsUp   Gesture = "THUMBS_UP"
	ThumbsDown Gesture = "THUMBS_DOWN"
	Unknown    Gesture = "UNKNOWN"
)

// All lists every non-None gesture label, in classification priority order.
var All = []Gesture{ThumbsUp, ThumbsDown, One, Two, Open, Closed, Unknown}

// Repeatable reports whether a gesture participates in hold-to-repeat
// (sustained thumbs up/down drive repeated level changes).
func Repeatable(g Gesture) bool {
	return g == ThumbsUp || g == ThumbsDown
}
