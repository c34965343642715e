// Package deck provides the section navigation controller behind the showcase pager.
//
// A Navigator owns which of N full-screen sections is active. It turns three raw
// input channels (wheel, touch and keyboard) into one-step navigation intents,
// lets a scrollable section consume gestures until its content reaches an edge,
// and locks itself for the duration of a transition so one gesture never skips
// more than one section.
//
// The package has no rendering dependency. Time comes from a Clock and deferred
// work runs on a Scheduler, so the whole state machine can be driven from tests
// with a fake clock and fake sections.
//
// # Basic Usage
//
//	clock := deck.SystemClock{}
//	sched := deck.NewLoopScheduler(clock)
//
//	nav, err := deck.New(sections, deck.DefaultConfig(),
//	    deck.WithClock(clock),
//	    deck.WithScheduler(sched),
//	    deck.WithAnnouncer(liveRegion),
//	)
//	if err != nil {
//	    return err
//	}
//	defer nav.Close()
//
//	unsubscribe := nav.Subscribe(func(ev deck.Event) {
//	    // start enter/exit animations
//	})
//	defer unsubscribe()
//
//	for running {
//	    // translate platform events into nav.HandleWheel, nav.TouchStart, ...
//	    sched.RunDue(clock.Now())
//	}
//
// # Scroll Arbitration
//
// A Section may carry a Scroller. When its content is taller than the viewport,
// wheel and touch gestures scroll the content instead of switching sections until
// the content sits within Config.EdgeBuffer of the edge the gesture is heading for.
// Keyboard navigation and pagination clicks bypass arbitration.
package deck
