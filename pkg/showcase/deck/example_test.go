package deck_test

import (
	"fmt"
	"time"

	"github.com/zyxo/showcase/pkg/showcase/deck"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

// Example drives a navigator with wheel and keyboard input.
func Example() {
	clock := &stepClock{now: time.Unix(0, 0)}
	sched := deck.NewLoopScheduler(clock)

	sections := []deck.Section{
		{ID: "hero", Name: "Hero"},
		{ID: "specs", Name: "Key Capabilities"},
		{ID: "pricing", Name: "Pricing Plans"},
	}

	nav, err := deck.New(sections, deck.DefaultConfig(),
		deck.WithClock(clock),
		deck.WithScheduler(sched),
		deck.WithAnnouncer(deck.AnnouncerFunc(func(text string) { fmt.Println(text) })),
	)
	if err != nil {
		panic(err)
	}
	defer nav.Close()

	nav.HandleWheel(120)
	fmt.Println("locked:", nav.State().Locked)

	// Input during the transition is dropped.
	nav.HandleKey(deck.KeyEnd)

	clock.now = clock.now.Add(time.Second)
	sched.RunDue(clock.now)

	nav.HandleKey(deck.KeyEnd)
	fmt.Println("active:", nav.State().ActiveIndex)

	// Output:
	// Navigated to Key Capabilities section
	// locked: true
	// Navigated to Pricing Plans section
	// active: 2
}
