// Package showcase renders the ZYXO product showcase with SDL2: a full-screen deck of sections
// paged by wheel, touch, keyboard and game controller, with a chat assistant overlay.
//
// Screens are blocking functions that run their own event loop and return a result, so an
// application composes them with the router package.
package showcase

import (
	"log/slog"
	"os"

	"github.com/zyxo/showcase/pkg/showcase/internal"
	"github.com/zyxo/showcase/pkg/showcase/platform/zyxo"
)

// DebugEnvVar turns on debug logging for both loggers.
const DebugEnvVar = "SHOWCASE_DEBUG"

// WindowOptions are the SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures SDL initialization.
type Options struct {
	WindowTitle   string
	Width         int32 // Zero uses the display size
	Height        int32
	WindowOptions WindowOptions
	LogPath       string // Full path for the log file (creates parent directories)
	FontPath      string // Regular face; empty searches system fonts
	BoldFontPath  string
	AccentHex     uint32 // Overrides the brand accent when non-zero
}

// Init starts SDL, opens the window, loads fonts and rasterises the logo.
// Must be called before any screen.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
		internal.SetLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := zyxo.InitTheme(options.FontPath, options.BoldFontPath)
	if options.AccentHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentHex)
	}
	internal.SetTheme(theme)

	err := internal.Init(internal.InitSettings{
		Title:   options.WindowTitle,
		Width:   options.Width,
		Height:  options.Height,
		Options: options.WindowOptions,
		LogoSVG: zyxo.LogoSVG(),
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources. Must be called before program exit.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file. Call before Init.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// Platform returns the SDL platform name used by the swipe velocity policy.
func Platform() string {
	return internal.Platform()
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
