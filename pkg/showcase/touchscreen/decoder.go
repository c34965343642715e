// Package touchscreen reads multitouch panels straight from evdev, for kiosk setups where the
// display server does not turn the panel into finger events.
package touchscreen

import (
	"slices"

	"github.com/holoplot/go-evdev"
)

type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}

// Contact is one finger update. Y is normalised to [0, 1] from the top of the panel.
type Contact struct {
	ID    int64
	Y     float64
	Phase Phase
}

type slot struct {
	id     int32 // tracking id, -1 when the slot is free
	lastID int32 // id released by the pending up
	y      int32
	phase  Phase
	dirty  bool
}

// Decoder assembles type B multitouch events into contacts. Updates are buffered until the
// SYN_REPORT that closes each frame.
type Decoder struct {
	minY, maxY int32
	current    int32
	slots      map[int32]*slot
}

// NewDecoder creates a decoder for a panel whose Y axis spans [minY, maxY].
func NewDecoder(minY, maxY int32) *Decoder {
	if maxY <= minY {
		maxY = minY + 1
	}
	return &Decoder{minY: minY, maxY: maxY, slots: map[int32]*slot{}}
}

func (d *Decoder) slot(n int32) *slot {
	s, ok := d.slots[n]
	if !ok {
		s = &slot{id: -1}
		d.slots[n] = s
	}
	return s
}

// Feed consumes one event and returns the contacts completed by it, if any.
func (d *Decoder) Feed(ev evdev.InputEvent) []Contact {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_SLOT:
			d.current = ev.Value
		case evdev.ABS_MT_TRACKING_ID:
			s := d.slot(d.current)
			if ev.Value < 0 {
				if s.id >= 0 {
					s.lastID = s.id
					s.id = -1
					s.phase = PhaseUp
					s.dirty = true
				}
				return nil
			}
			s.id = ev.Value
			s.phase = PhaseDown
			s.dirty = true
		case evdev.ABS_MT_POSITION_Y:
			s := d.slot(d.current)
			s.y = ev.Value
			if !s.dirty && s.id >= 0 {
				s.phase = PhaseMove
				s.dirty = true
			}
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return d.flush()
		}
	}
	return nil
}

func (d *Decoder) flush() []Contact {
	keys := make([]int32, 0, len(d.slots))
	for n := range d.slots {
		keys = append(keys, n)
	}
	slices.Sort(keys)

	var out []Contact
	for _, n := range keys {
		s := d.slots[n]
		if !s.dirty {
			continue
		}
		s.dirty = false

		id := s.id
		if s.phase == PhaseUp {
			id = s.lastID
		}
		out = append(out, Contact{ID: int64(id), Y: d.normalise(s.y), Phase: s.phase})
	}
	return out
}

func (d *Decoder) normalise(y int32) float64 {
	v := float64(y-d.minY) / float64(d.maxY-d.minY)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
