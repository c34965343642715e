package router_test

import (
	"errors"
	"fmt"

	"github.com/zyxo/showcase/pkg/showcase/router"
)

const (
	ScreenPager router.Screen = iota
	ScreenFallback
)

type PagerInput struct {
	ActiveIndex int
}

type PagerResult struct {
	Quit        bool
	ActiveIndex int
}

type FallbackInput struct {
	Detail string
}

type FallbackResult struct {
	Retry bool
}

// Example demonstrates a pager that fails, a fallback screen that offers to try again and
// the pager resuming on the section it was showing.
func Example() {
	r := router.New()

	runs := 0
	r.Register(ScreenPager, func(input any) (any, error) {
		in := input.(PagerInput)
		runs++
		if runs == 1 {
			fmt.Printf("Pager: showing section %d, failing\n", in.ActiveIndex)
			return nil, errors.New("render target lost")
		}
		fmt.Printf("Pager: resumed at section %d, quitting\n", in.ActiveIndex)
		return PagerResult{Quit: true, ActiveIndex: in.ActiveIndex}, nil
	})

	r.Register(ScreenFallback, func(input any) (any, error) {
		in := input.(FallbackInput)
		fmt.Printf("Fallback: %s, trying again\n", in.Detail)
		return FallbackResult{Retry: true}, nil
	})

	start := PagerInput{ActiveIndex: 3}

	r.OnError(func(from router.Screen, err error, stack *router.Stack) (router.Screen, any) {
		stack.Push(from, start, nil)
		return ScreenFallback, FallbackInput{Detail: err.Error()}
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenFallback:
			if res := result.(FallbackResult); res.Retry {
				if entry, ok := stack.Pop(); ok {
					return entry.Screen, entry.Input
				}
			}
		case ScreenPager:
			if res := result.(PagerResult); res.Quit {
				return router.ScreenExit, nil
			}
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(ScreenPager, start)

	// Output:
	// Pager: showing section 3, failing
	// Fallback: render target lost, trying again
	// Pager: resumed at section 3, quitting
}

// Example_panic demonstrates that a panicking screen is routed through the error function.
func Example_panic() {
	r := router.New()

	r.Register(ScreenPager, func(input any) (any, error) {
		var sections []string
		_ = sections[input.(PagerInput).ActiveIndex]
		return nil, nil
	})

	r.Register(ScreenFallback, func(input any) (any, error) {
		fmt.Println("Fallback shown")
		return FallbackResult{}, nil
	})

	r.OnError(func(from router.Screen, err error, stack *router.Stack) (router.Screen, any) {
		var panicErr *router.PanicError
		fmt.Println("Recovered panic:", errors.As(err, &panicErr))
		return ScreenFallback, FallbackInput{}
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		return router.ScreenExit, nil
	})

	err := r.Run(ScreenPager, PagerInput{ActiveIndex: 1})
	fmt.Println("Error:", err)

	// Output:
	// Recovered panic: true
	// Fallback shown
	// Error: <nil>
}
