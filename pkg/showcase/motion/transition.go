// Package motion computes the animation frames the pager draws: section transitions and eased
// content scrolling. Nothing here touches SDL, so the numbers can be tested on their own.
package motion

import (
	"time"

	"github.com/zyxo/showcase/pkg/showcase/deck"
)

// Frame describes how to draw one section during a transition.
type Frame struct {
	OffsetY float64 // Fraction of the viewport height, positive is down
	Scale   float64
	Alpha   float64 // 0..1
}

// Identity is a section at rest.
var Identity = Frame{Scale: 1, Alpha: 1}

// Transition is an in-flight change between two sections.
type Transition struct {
	From, To int
	Style    deck.TransitionStyle
	Start    time.Time
	Duration time.Duration
}

// FromEvent builds a transition from a navigator event.
func FromEvent(ev deck.Event, start time.Time) Transition {
	return Transition{From: ev.From, To: ev.To, Style: ev.Style, Start: start, Duration: ev.Duration}
}

// Progress returns the eased completion in [0, 1].
func (t Transition) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.Start)) / float64(t.Duration)
	return EaseOutCubic(clamp01(p))
}

// Done reports whether the animation has finished.
func (t Transition) Done(now time.Time) bool {
	return !now.Before(t.Start.Add(t.Duration))
}

// Frames returns how to draw the outgoing and incoming sections at now.
//
// The slide style moves the outgoing section away by a third of the viewport while it shrinks
// and fades, and brings the incoming one in from the opposite side. The fade style only
// cross-fades.
func (t Transition) Frames(now time.Time) (out, in Frame) {
	p := t.Progress(now)

	if t.Style == deck.TransitionFade {
		return Frame{Scale: 1, Alpha: 1 - p}, Frame{Scale: 1, Alpha: p}
	}

	dir := 1.0
	if t.To < t.From {
		dir = -1
	}
	const travel = 1.0 / 3
	out = Frame{
		OffsetY: -dir * travel * p,
		Scale:   1 - 0.05*p,
		Alpha:   1 - p,
	}
	in = Frame{
		OffsetY: dir * travel * (1 - p),
		Scale:   0.95 + 0.05*p,
		Alpha:   p,
	}
	return out, in
}

// EaseOutCubic decelerates towards the end.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
