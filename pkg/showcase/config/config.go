// Package config loads the showcase settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/zyxo/showcase/pkg/showcase/deck"
)

// Environment variables that override the file.
const (
	EnvReducedMotion = "SHOWCASE_REDUCED_MOTION"
	EnvTouchMode     = "SHOWCASE_TOUCH_MODE"
	EnvLogLevel      = "SHOWCASE_LOG_LEVEL"
	EnvDebug         = "SHOWCASE_DEBUG"
	EnvAPIKey        = "GEMINI_API_KEY"
	EnvContentPath   = "SHOWCASE_CONTENT"
)

var ErrInvalid = errors.New("config: invalid")

// Duration decodes TOML strings such as "150ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Velocity struct {
	Default     float64            `toml:"default"`
	PerPlatform map[string]float64 `toml:"platforms"`
}

type Navigation struct {
	TransitionDuration        Duration `toml:"transition_duration"`
	ReducedTransitionDuration Duration `toml:"reduced_transition_duration"`
	WheelThreshold            float64  `toml:"wheel_threshold"`
	WheelThrottle             Duration `toml:"wheel_throttle"`
	TouchDisplacement         float64  `toml:"touch_displacement"`
	TouchNoise                float64  `toml:"touch_noise"`
	EdgeBuffer                float64  `toml:"edge_buffer"`
	ReducedMotion             bool     `toml:"reduced_motion"`
	TouchMode                 string   `toml:"touch_mode"`
	Velocity                  Velocity `toml:"velocity"`
}

type Window struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Borderless bool   `toml:"borderless"`
}

type Chat struct {
	Enabled           bool     `toml:"enabled"`
	APIKey            string   `toml:"api_key"`
	Models            []string `toml:"models"`
	Timeout           Duration `toml:"timeout"`
	RequestsPerMinute int      `toml:"requests_per_minute"`
}

type Touchscreen struct {
	// Device is an evdev node such as /dev/input/event2. Empty leaves touch input to SDL.
	Device string `toml:"device"`
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

type Config struct {
	Navigation  Navigation  `toml:"navigation"`
	Window      Window      `toml:"window"`
	Chat        Chat        `toml:"chat"`
	Touchscreen Touchscreen `toml:"touchscreen"`
	Log         Log         `toml:"log"`
	ContentPath string      `toml:"content_path"`
	Locale      string      `toml:"locale"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	d := deck.DefaultConfig()
	return Config{
		Navigation: Navigation{
			TransitionDuration:        Duration{d.TransitionDuration},
			ReducedTransitionDuration: Duration{d.ReducedTransitionDuration},
			WheelThreshold:            d.WheelThreshold,
			WheelThrottle:             Duration{d.WheelThrottle},
			TouchDisplacement:         d.TouchDisplacementThreshold,
			TouchNoise:                d.TouchNoiseThreshold,
			EdgeBuffer:                d.EdgeBuffer,
			TouchMode:                 d.TouchMode.String(),
			Velocity: Velocity{
				Default:     d.Velocity.Default,
				PerPlatform: d.Velocity.PerPlatform,
			},
		},
		Window: Window{Title: "ZYXO"},
		Chat: Chat{
			Enabled:           true,
			Timeout:           Duration{30 * time.Second},
			RequestsPerMinute: 10,
		},
		Log:    Log{Level: "info", Path: "logs/showcase.log"},
		Locale: "en",
	}
}

// Load reads path over the defaults and applies environment overrides. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults without consulting the environment.
func Decode(text string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(text, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvReducedMotion); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvReducedMotion, v, err)
		}
		c.Navigation.ReducedMotion = b
	}
	if v, ok := lookup(EnvTouchMode); ok && v != "" {
		c.Navigation.TouchMode = v
	}
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		c.Chat.APIKey = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		c.Log.Level = "debug"
	}
	if v, ok := lookup(EnvContentPath); ok && v != "" {
		c.ContentPath = v
	}
	return nil
}

// Validate checks the navigation settings and the window size.
func (c Config) Validate() error {
	if _, err := c.Deck(); err != nil {
		return err
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Chat.RequestsPerMinute < 0 {
		return fmt.Errorf("%w: chat requests_per_minute %d is negative", ErrInvalid, c.Chat.RequestsPerMinute)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Deck converts the navigation section into a navigator config.
func (c Config) Deck() (deck.Config, error) {
	mode, err := deck.ParseTouchMode(c.Navigation.TouchMode)
	if err != nil {
		return deck.Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	n := c.Navigation
	platforms := make(map[string]float64, len(n.Velocity.PerPlatform))
	for k, v := range n.Velocity.PerPlatform {
		platforms[strings.ToLower(k)] = v
	}

	out := deck.Config{
		TransitionDuration:         n.TransitionDuration.Duration,
		ReducedTransitionDuration:  n.ReducedTransitionDuration.Duration,
		WheelThreshold:             n.WheelThreshold,
		WheelThrottle:              n.WheelThrottle.Duration,
		TouchDisplacementThreshold: n.TouchDisplacement,
		TouchNoiseThreshold:        n.TouchNoise,
		EdgeBuffer:                 n.EdgeBuffer,
		ReducedMotion:              n.ReducedMotion,
		TouchMode:                  mode,
		Velocity:                   deck.VelocityPolicy{Default: n.Velocity.Default, PerPlatform: platforms},
	}
	if err := out.Validate(); err != nil {
		return deck.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return out, nil
}
