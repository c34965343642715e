package deck

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNoSections is returned by New when the section list is empty.
var ErrNoSections = errors.New("deck: at least one section is required")

// State is the observable navigation state.
type State struct {
	ActiveIndex int
	Locked      bool
}

// EventKind identifies what happened in an Event.
type EventKind int

const (
	EventTransitionStarted EventKind = iota // Active index changed, lock taken
	EventTransitionEnded                    // Cooldown elapsed, lock released
)

func (k EventKind) String() string {
	switch k {
	case EventTransitionStarted:
		return "transition_started"
	case EventTransitionEnded:
		return "transition_ended"
	default:
		return "unknown"
	}
}

// Event pairs a state change with the information a presentation layer needs
// to animate it.
type Event struct {
	Kind         EventKind
	From         int
	To           int
	Style        TransitionStyle
	Duration     time.Duration
	Announcement string
	State        State
}

// Listener receives navigator events on the goroutine that caused them.
type Listener func(Event)

// Announcer is the live region that receives a human readable message after
// every committed transition.
type Announcer interface {
	Announce(text string)
}

// AnnouncerFunc adapts a function to Announcer.
type AnnouncerFunc func(text string)

func (f AnnouncerFunc) Announce(text string) { f(text) }

// AnnouncementFunc builds the announcement for the section that became active.
type AnnouncementFunc func(s Section) string

// DefaultAnnouncement returns "Navigated to <Name> section".
func DefaultAnnouncement(s Section) string {
	return fmt.Sprintf("Navigated to %s section", s.Name)
}

// Option customises a Navigator.
type Option func(*Navigator)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(n *Navigator) { n.clock = c }
}

// WithScheduler sets where cooldown tasks run. Defaults to a LoopScheduler on
// the navigator's clock, which the caller drains through Loop.
func WithScheduler(s Scheduler) Option {
	return func(n *Navigator) { n.scheduler = s }
}

// WithAnnouncer sets the live region.
func WithAnnouncer(a Announcer) Option {
	return func(n *Navigator) { n.announcer = a }
}

// WithAnnouncement overrides how announcements are worded.
func WithAnnouncement(fn AnnouncementFunc) Option {
	return func(n *Navigator) { n.announce = fn }
}

// WithPlatform sets the platform name used by the velocity policy.
func WithPlatform(platform string) Option {
	return func(n *Navigator) { n.platform = platform }
}

// WithInitialIndex starts the deck on a section other than the first.
// Out-of-range values are ignored.
func WithInitialIndex(i int) Option {
	return func(n *Navigator) {
		if i >= 0 && i < len(n.sections) {
			n.state.ActiveIndex = i
		}
	}
}

// WithLogger sets the logger used for debug traces of ignored input.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) { n.logger = l }
}

type listenerEntry struct {
	id int
	fn Listener
}

// Navigator is the section navigation state machine. It is not safe for
// concurrent use; drive it from a single event loop.
type Navigator struct {
	sections  []Section
	cfg       Config
	clock     Clock
	scheduler Scheduler
	loop      *LoopScheduler
	announcer Announcer
	announce  AnnouncementFunc
	platform  string
	logger    *slog.Logger

	state     State
	cooldown  Task
	wheelGate *Gate
	touch     touchTracker

	listeners      []listenerEntry
	nextListenerID int
	closed         bool
}

// New creates a Navigator over sections.
func New(sections []Section, cfg Config, opts ...Option) (*Navigator, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := &Navigator{
		sections: append([]Section(nil), sections...),
		cfg:      cfg,
		announce: DefaultAnnouncement,
	}
	for _, opt := range opts {
		opt(n)
	}

	if n.clock == nil {
		n.clock = SystemClock{}
	}
	if n.scheduler == nil {
		n.scheduler = NewLoopScheduler(n.clock)
	}
	n.loop, _ = n.scheduler.(*LoopScheduler)
	if n.logger == nil {
		n.logger = slog.New(slog.DiscardHandler)
	}
	n.wheelGate = NewGate(n.clock, cfg.WheelThrottle)
	n.touch.reset()

	return n, nil
}

// State returns the current navigation state.
func (n *Navigator) State() State {
	return n.state
}

// Len returns the number of sections.
func (n *Navigator) Len() int {
	return len(n.sections)
}

// Section returns the descriptor at index i.
func (n *Navigator) Section(i int) (Section, bool) {
	if i < 0 || i >= len(n.sections) {
		return Section{}, false
	}
	return n.sections[i], true
}

// Active returns the descriptor of the active section.
func (n *Navigator) Active() Section {
	return n.sections[n.state.ActiveIndex]
}

// Config returns the effective configuration.
func (n *Navigator) Config() Config {
	return n.cfg
}

// Loop returns the loop scheduler cooldown tasks are queued on, for the event loop
// to drain with RunDue. It is nil when WithScheduler supplied another Scheduler.
func (n *Navigator) Loop() *LoopScheduler {
	return n.loop
}

// Indicators returns one pagination marker per section.
func (n *Navigator) Indicators() []Indicator {
	out := make([]Indicator, len(n.sections))
	for i, s := range n.sections {
		out[i] = Indicator{Index: i, Name: s.Name, Active: i == n.state.ActiveIndex}
	}
	return out
}

// NavigateFunc returns the capability handed to rendered sections.
func (n *Navigator) NavigateFunc() NavigateFunc {
	return func(target int) { n.RequestNavigate(target) }
}

// SetReducedMotion switches between the full and the motion-minimal transition.
// It takes effect from the next transition.
func (n *Navigator) SetReducedMotion(reduced bool) {
	if n.cfg.ReducedMotion == reduced {
		return
	}
	n.cfg.ReducedMotion = reduced
	n.logger.Debug("reduced motion changed", "reduced", reduced)
}

// Subscribe registers a listener and returns the function that removes it.
func (n *Navigator) Subscribe(fn Listener) (unsubscribe func()) {
	n.nextListenerID++
	id := n.nextListenerID
	n.listeners = append(n.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// RequestNavigate moves to target when it is in range, differs from the
// active index and no transition is running. It reports whether a transition
// started. Invalid requests are ignored.
func (n *Navigator) RequestNavigate(target int) bool {
	switch {
	case n.closed:
		return false
	case target < 0 || target >= len(n.sections):
		n.logger.Debug("navigation ignored", "reason", "out_of_range", "target", target)
		return false
	case n.state.Locked:
		n.logger.Debug("navigation ignored", "reason", "locked", "target", target)
		return false
	case target == n.state.ActiveIndex:
		return false
	}

	from := n.state.ActiveIndex
	style, duration := n.cfg.transition()

	n.state = State{ActiveIndex: target, Locked: true}
	n.touch.clearGesture()
	n.cooldown = n.scheduler.AfterFunc(duration, n.unlock)

	text := n.announce(n.sections[target])
	if n.announcer != nil {
		n.announcer.Announce(text)
	}

	n.emit(Event{
		Kind:         EventTransitionStarted,
		From:         from,
		To:           target,
		Style:        style,
		Duration:     duration,
		Announcement: text,
		State:        n.state,
	})
	return true
}

func (n *Navigator) unlock() {
	if n.closed {
		return
	}
	n.cooldown = nil
	n.state.Locked = false
	n.emit(Event{
		Kind:  EventTransitionEnded,
		From:  n.state.ActiveIndex,
		To:    n.state.ActiveIndex,
		State: n.state,
	})
}

func (n *Navigator) step(d Direction) bool {
	if d == DirectionNone {
		return false
	}
	return n.RequestNavigate(n.state.ActiveIndex + d.Step())
}

func (n *Navigator) emit(ev Event) {
	// Copy so listeners may unsubscribe while being notified.
	for _, l := range append([]listenerEntry(nil), n.listeners...) {
		l.fn(ev)
	}
}

// activeExtent returns the scroll extent of the active section and whether
// the section can scroll at all.
func (n *Navigator) activeExtent() (ScrollExtent, bool) {
	s := n.sections[n.state.ActiveIndex].Scroller
	if s == nil {
		return ScrollExtent{}, false
	}
	return s.ScrollExtent(), true
}

// absorbed reports whether the active section's content claims a gesture in direction d.
func (n *Navigator) absorbed(d Direction) bool {
	extent, ok := n.activeExtent()
	if !ok {
		return false
	}
	return Absorbs(extent, d, n.cfg.EdgeBuffer)
}

// Close cancels the pending cooldown and drops all listeners. Every later
// call is a no-op.
func (n *Navigator) Close() {
	if n.closed {
		return
	}
	n.closed = true
	if n.cooldown != nil {
		n.cooldown.Stop()
		n.cooldown = nil
	}
	n.listeners = nil
	n.touch.reset()
}
