package motion

import (
	"math"

	"github.com/zyxo/showcase/pkg/showcase/deck"
)

// DefaultEase is the share of the remaining distance covered per frame.
const DefaultEase = 0.15

// Scroll is the scroll position of one section's content. The rendered Offset eases towards
// Target every frame; edge checks use Target so input is judged against where the content is
// heading rather than where the animation happens to be.
type Scroll struct {
	Offset float64
	Target float64

	viewport float64
	content  float64
}

// Resize records the visible height and the full content height.
func (s *Scroll) Resize(viewport, content float64) {
	s.viewport = viewport
	s.content = content
	s.Target = s.clamp(s.Target)
	s.Offset = s.clamp(s.Offset)
}

// Max is the largest valid offset.
func (s *Scroll) Max() float64 {
	return math.Max(0, s.content-s.viewport)
}

// By moves the target by delta pixels and reports whether it moved.
func (s *Scroll) By(delta float64) bool {
	next := s.clamp(s.Target + delta)
	moved := next != s.Target
	s.Target = next
	return moved
}

// Jump moves both offset and target, skipping the animation.
func (s *Scroll) Jump(offset float64) {
	s.Target = s.clamp(offset)
	s.Offset = s.Target
}

// Step advances the animation by one frame.
func (s *Scroll) Step() {
	diff := s.Target - s.Offset
	if math.Abs(diff) < 0.5 {
		s.Offset = s.Target
		return
	}
	s.Offset += diff * DefaultEase
}

// ScrollExtent implements deck.Scroller.
func (s *Scroll) ScrollExtent() deck.ScrollExtent {
	return deck.ScrollExtent{Offset: s.Target, Size: s.viewport, ContentSize: s.content}
}

// Thumb returns the scrollbar handle position and length inside a track of the given length.
// ok is false when the content fits.
func (s *Scroll) Thumb(track, minLength float64) (pos, length float64, ok bool) {
	limit := s.Max()
	if limit <= 0 || s.content <= 0 {
		return 0, 0, false
	}
	length = math.Max(minLength, track*s.viewport/s.content)
	length = math.Min(length, track)
	pos = (track - length) * clamp01(s.Offset/limit)
	return pos, length, true
}

func (s *Scroll) clamp(v float64) float64 {
	return math.Min(math.Max(0, v), s.Max())
}
