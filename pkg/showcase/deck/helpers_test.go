package deck

import (
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeScroller struct {
	extent ScrollExtent
}

func (f *fakeScroller) ScrollExtent() ScrollExtent { return f.extent }

// overflowing returns a scroller with 1000px of content in a 400px viewport.
func overflowing(offset float64) *fakeScroller {
	return &fakeScroller{extent: ScrollExtent{Offset: offset, Size: 400, ContentSize: 1000}}
}

var sectionNames = []string{
	"Hero",
	"Key Capabilities",
	"Pricing Plans",
	"Plan Comparison",
	"Get Started",
}

func testSections() []Section {
	ids := []string{"hero", "specs", "pricing", "comparison", "final"}
	out := make([]Section, len(ids))
	for i, id := range ids {
		out[i] = Section{ID: id, Name: sectionNames[i]}
	}
	return out
}

type harness struct {
	clock     *fakeClock
	sched     *LoopScheduler
	nav       *Navigator
	announced []string
	events    []Event
}

func newHarness(t require.TestingT, cfg Config, sections []Section, opts ...Option) *harness {
	h := &harness{clock: newFakeClock()}
	h.sched = NewLoopScheduler(h.clock)

	base := []Option{
		WithClock(h.clock),
		WithScheduler(h.sched),
		WithAnnouncer(AnnouncerFunc(func(text string) {
			h.announced = append(h.announced, text)
		})),
	}
	nav, err := New(sections, cfg, append(base, opts...)...)
	require.NoError(t, err)
	h.nav = nav
	h.nav.Subscribe(func(ev Event) { h.events = append(h.events, ev) })
	return h
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
	h.sched.RunDue(h.clock.Now())
}

// settle waits out the cooldown and the wheel throttle.
func (h *harness) settle() {
	h.advance(h.nav.Config().TransitionDuration + h.nav.Config().WheelThrottle)
}
