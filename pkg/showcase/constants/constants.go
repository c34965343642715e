// Package constants defines shared constants used across the showcase packages.
package constants

import (
	"os"
	"time"
)

// Development is the ENVIRONMENT value that enables windowed development mode.
const Development = "DEV"

// Environment variables read by the SDL layer.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

const (
	FrameDelay = 16 * time.Millisecond // Target frame time of the event loops

	// WheelNotchPixels converts one mouse wheel notch to a pixel delta.
	WheelNotchPixels = 100

	// KeyScrollPixels is how far arrow keys scroll section content before paging.
	KeyScrollPixels = 80
)

// Dev mode window size when WINDOW_WIDTH/WINDOW_HEIGHT are unset.
const (
	DefaultDevWidth  int32 = 1280
	DefaultDevHeight int32 = 800
)
