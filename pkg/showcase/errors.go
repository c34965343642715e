package showcase

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled indicates the visitor left a screen (window closed, Escape, B button).
	// This is normal flow control, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNotInitialized is returned by screens called before Init.
	ErrNotInitialized = errors.New("showcase: Init has not been called")
)

// InfrastructureError is a failure of the SDL layer itself (renderer, textures, fonts).
// Screens return it when they cannot draw; the router sends it to the fallback screen.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_target", "render_section")
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("showcase: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("showcase: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates the visitor left.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
