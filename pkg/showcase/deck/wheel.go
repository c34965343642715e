package deck

import "math"

// HandleWheel evaluates one wheel event. deltaY follows browser conventions:
// positive values scroll down, towards the next section. It reports whether a
// transition started.
func (n *Navigator) HandleWheel(deltaY float64) bool {
	if n.closed || n.state.Locked {
		return false
	}
	if !n.wheelGate.Allow() {
		return false
	}

	d := DirectionOf(deltaY)
	if n.absorbed(d) {
		return false
	}
	if math.Abs(deltaY) <= n.cfg.WheelThreshold {
		return false
	}
	return n.step(d)
}
