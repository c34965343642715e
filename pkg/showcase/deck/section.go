package deck

// ScrollExtent describes the scrollable content area of a section.
// Offset is the current scroll position, Size the visible height and
// ContentSize the full height of the content.
type ScrollExtent struct {
	Offset      float64
	Size        float64
	ContentSize float64
}

// Scrollable reports whether the content overflows the visible area.
func (e ScrollExtent) Scrollable() bool {
	return e.ContentSize > e.Size
}

// Scroller is implemented by sections whose content can scroll internally.
type Scroller interface {
	ScrollExtent() ScrollExtent
}

// Section describes one page of the deck.
type Section struct {
	ID       string   // Stable identifier
	Name     string   // Human readable name used in announcements
	Scroller Scroller // Optional; nil means the section never scrolls
}

// NavigateFunc is the capability handed to each rendered section.
// It has the same semantics as Navigator.RequestNavigate.
type NavigateFunc func(target int)

// Indicator is one pagination marker.
type Indicator struct {
	Index  int
	Name   string
	Active bool
}
