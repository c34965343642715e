package deck

import (
	"math"
	"time"
)

// Pointer is one touch contact. Y is in pixels, growing downwards.
type Pointer struct {
	ID int64
	Y  float64
}

// TouchMove is the result of feeding a move event to the navigator.
type TouchMove struct {
	// ScrollBy is how far the active section's content should scroll for this
	// step (positive scrolls down). Zero when the content cannot take it.
	ScrollBy float64
	// Absorbed is set once the gesture belongs to the content; its end will not navigate.
	Absorbed bool
}

type touchTracker struct {
	pointers map[int64]struct{}
	poisoned bool // a second pointer went down during this interaction

	tracking bool
	id       int64
	startY   float64
	lastY    float64
	start    time.Time
	moved    bool
	absorbed bool
}

func (t *touchTracker) reset() {
	t.pointers = make(map[int64]struct{})
	t.poisoned = false
	t.clearGesture()
}

func (t *touchTracker) clearGesture() {
	t.tracking = false
	t.id = 0
	t.startY = 0
	t.lastY = 0
	t.start = time.Time{}
	t.moved = false
	t.absorbed = false
}

// add records a contact and reports whether it is the only one down.
func (t *touchTracker) add(id int64) bool {
	t.pointers[id] = struct{}{}
	if len(t.pointers) > 1 {
		t.poisoned = true
		t.clearGesture()
		return false
	}
	return true
}

func (t *touchTracker) markMoved(y, noise float64) {
	if !t.moved && math.Abs(t.startY-y) > noise {
		t.moved = true
	}
}

// TouchStart records a new contact. A second simultaneous contact poisons the
// interaction: nothing navigates until every contact has lifted.
func (n *Navigator) TouchStart(p Pointer) {
	if n.closed {
		return
	}
	t := &n.touch
	if !t.add(p.ID) || t.poisoned {
		return
	}

	t.tracking = true
	t.id = p.ID
	t.startY = p.Y
	t.lastY = p.Y
	t.start = n.clock.Now()
	t.moved = false
	t.absorbed = false
}

// TouchHold registers a contact that landed on something drawn over the deck,
// such as the chat panel. It counts towards multi-touch but never starts a
// gesture; release it with TouchEnd like any other contact.
func (n *Navigator) TouchHold(p Pointer) {
	if n.closed {
		return
	}
	n.touch.add(p.ID)
}

// TouchMove feeds a move of an active contact.
func (n *Navigator) TouchMove(p Pointer) TouchMove {
	t := &n.touch
	if n.closed || t.poisoned || !t.tracking || p.ID != t.id {
		return TouchMove{}
	}

	step := t.lastY - p.Y
	t.lastY = p.Y
	t.markMoved(p.Y, n.cfg.TouchNoiseThreshold)

	// Jitter inside the noise threshold never claims the gesture for the content.
	// Past it, the gesture's overall direction decides.
	if n.cfg.TouchMode == TouchStrict && t.moved && !t.absorbed && !n.state.Locked {
		if d := DirectionOf(t.startY - p.Y); d != DirectionNone && n.absorbed(d) {
			t.absorbed = true
		}
	}

	d := DirectionOf(step)
	if d == DirectionNone || !n.absorbed(d) {
		return TouchMove{Absorbed: t.absorbed}
	}
	return TouchMove{ScrollBy: step, Absorbed: t.absorbed}
}

// TouchEnd finishes a contact and reports whether a transition started.
func (n *Navigator) TouchEnd(p Pointer) bool {
	if n.closed {
		return false
	}
	t := &n.touch
	delete(t.pointers, p.ID)

	if t.poisoned {
		if len(t.pointers) == 0 {
			t.reset()
		}
		return false
	}
	if !t.tracking || p.ID != t.id {
		return false
	}
	defer t.clearGesture()

	t.markMoved(p.Y, n.cfg.TouchNoiseThreshold)
	if !t.moved || n.state.Locked || t.absorbed {
		return false
	}

	displacement := t.startY - p.Y
	if math.Abs(displacement) < n.cfg.TouchDisplacementThreshold {
		return false
	}

	if n.cfg.TouchMode == TouchStrict {
		elapsed := float64(n.clock.Now().Sub(t.start)) / float64(time.Millisecond)
		if elapsed < 1 {
			elapsed = 1
		}
		velocity := math.Abs(displacement) / elapsed
		if velocity < n.cfg.Velocity.MinVelocity(n.platform) {
			n.logger.Debug("swipe ignored", "reason", "slow", "velocity", velocity)
			return false
		}
	}

	d := DirectionOf(displacement)
	if n.absorbed(d) {
		return false
	}
	return n.step(d)
}

// TouchCancel discards every contact and the current gesture.
func (n *Navigator) TouchCancel() {
	n.touch.reset()
}

// TouchActive reports whether a single-contact gesture is being tracked.
func (n *Navigator) TouchActive() bool {
	return n.touch.tracking && !n.touch.poisoned
}
