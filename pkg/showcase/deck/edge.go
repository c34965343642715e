package deck

// Direction is the way a gesture wants to move through the deck.
type Direction int

const (
	DirectionNone     Direction = iota
	DirectionForward            // Towards the next section, content scrolls down
	DirectionBackward           // Towards the previous section, content scrolls up
)

// DirectionOf maps a signed delta to a Direction. Positive deltas move forward.
func DirectionOf(delta float64) Direction {
	switch {
	case delta > 0:
		return DirectionForward
	case delta < 0:
		return DirectionBackward
	default:
		return DirectionNone
	}
}

// Step returns the index offset of the direction.
func (d Direction) Step() int {
	switch d {
	case DirectionForward:
		return 1
	case DirectionBackward:
		return -1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// AtEdge reports whether scrolled content sits within buffer of the edge
// that a gesture in direction d is heading for. Non-scrollable content is
// always at both edges.
func AtEdge(e ScrollExtent, d Direction, buffer float64) bool {
	if !e.Scrollable() {
		return true
	}
	switch d {
	case DirectionForward:
		return e.Offset+e.Size >= e.ContentSize-buffer
	case DirectionBackward:
		return e.Offset <= buffer
	default:
		return false
	}
}

// Absorbs reports whether a gesture in direction d belongs to the content
// rather than to section navigation.
func Absorbs(e ScrollExtent, d Direction, buffer float64) bool {
	return !AtEdge(e, d, buffer)
}
