// Package router runs blocking screens in sequence with explicit data flow.
//
// Each screen is a function from an input to a result. A single transition function decides
// the next screen from the result, and an optional error function acts as the failure
// boundary: a screen that returns an error or panics is routed to whatever screen the error
// function picks, usually a fallback that offers to try again.
//
// # Basic Usage
//
//	const (
//	    ScreenPager router.Screen = iota
//	    ScreenFallback
//	)
//
//	r := router.New()
//	r.Register(ScreenPager, func(input any) (any, error) {
//	    return showcase.Pager(input.(showcase.PagerSettings))
//	})
//	r.Register(ScreenFallback, func(input any) (any, error) {
//	    return showcase.Fallback(input.(showcase.FallbackSettings))
//	})
//
//	r.OnError(func(from router.Screen, err error, stack *router.Stack) (router.Screen, any) {
//	    // Remember where the failure happened so "Try Again" can return there.
//	    stack.Push(from, settings, nil)
//	    return ScreenFallback, showcase.FallbackSettings{Detail: err.Error()}
//	})
//
// # Resume State
//
// Screens can return resume state (like the active section) that gets stored on the stack
// when navigating forward. When navigating back, this state is passed back to the screen via
// its input, allowing it to restore position.
package router
