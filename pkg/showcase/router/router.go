package router

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Screen is a type-safe identifier for screens.
// Applications define their own Screen constants using iota.
type Screen int

// ScreenFunc runs a screen. The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// Return (ScreenExit, nil) to stop the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ErrorFunc is called when a screen returns an error or panics. It picks the screen that
// handles the failure, typically a fallback screen, or returns ScreenExit to stop the router
// with the error.
type ErrorFunc func(from Screen, err error, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// ErrNoTransition is returned by Run when OnTransition was never called.
var ErrNoTransition = errors.New("router: no transition function set")

// PanicError wraps a value recovered from a panicking screen.
type PanicError struct {
	Screen Screen
	Value  any
	Stack  []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("router: screen %d panicked: %v", e.Screen, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	onError    ErrorFunc
	stack      *Stack
}

func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// OnError sets the failure boundary. Without one, the first screen error stops Run.
func (r *Router) OnError(fn ErrorFunc) *Router {
	r.onError = fn
	return r
}

// Run starts the router at the given screen with the given input.
// It continues running until a transition returns ScreenExit or an unhandled error occurs.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		result, err := r.runScreen(current, fn, currentInput)

		var next Screen
		var nextInput any
		if err != nil {
			if r.onError == nil {
				return fmt.Errorf("router: screen %d error: %w", current, err)
			}
			next, nextInput = r.onError(current, err, r.stack)
			if next == ScreenExit {
				return fmt.Errorf("router: screen %d error: %w", current, err)
			}
		} else {
			next, nextInput = r.transition(current, result, r.stack)
			if next == ScreenExit {
				return nil
			}
		}

		current = next
		currentInput = nextInput
	}
}

func (r *Router) runScreen(screen Screen, fn ScreenFunc, input any) (result any, err error) {
	defer func() {
		if v := recover(); v != nil {
			result = nil
			err = &PanicError{Screen: screen, Value: v, Stack: debug.Stack()}
		}
	}()
	return fn(input)
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}
