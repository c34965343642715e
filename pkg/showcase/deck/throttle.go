package deck

import "time"

// Gate lets at most one event through per window. It samples the first event
// of a window, not the last: events inside an open window are dropped, not
// replayed later.
type Gate struct {
	clock  Clock
	window time.Duration
	until  time.Time
	opened bool
}

// NewGate creates a gate with the given window.
func NewGate(clock Clock, window time.Duration) *Gate {
	return &Gate{clock: clock, window: window}
}

// Allow reports whether the current event may pass and, if so, opens a new window.
func (g *Gate) Allow() bool {
	now := g.clock.Now()
	if g.opened && now.Before(g.until) {
		return false
	}
	g.opened = true
	g.until = now.Add(g.window)
	return true
}

// Reset closes the current window.
func (g *Gate) Reset() {
	g.opened = false
	g.until = time.Time{}
}
