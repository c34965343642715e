package deck

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TransitionStyle selects the animation the presentation layer plays for a transition.
type TransitionStyle int

const (
	TransitionSlide TransitionStyle = iota // Translate, scale and fade
	TransitionFade                         // Opacity only, used for reduced motion
)

func (s TransitionStyle) String() string {
	switch s {
	case TransitionSlide:
		return "slide"
	case TransitionFade:
		return "fade"
	default:
		return "unknown"
	}
}

// TouchMode selects how strictly touch swipes are turned into navigation.
type TouchMode int

const (
	// TouchStrict requires a minimum velocity and lets scrollable content absorb
	// the whole gesture once any part of it scrolled the content.
	TouchStrict TouchMode = iota
	// TouchLenient only checks the displacement threshold and the end-of-gesture edge.
	TouchLenient
)

// ParseTouchMode parses "strict" or "lenient".
func ParseTouchMode(s string) (TouchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return TouchStrict, nil
	case "lenient":
		return TouchLenient, nil
	default:
		return TouchStrict, fmt.Errorf("deck: unknown touch mode %q", s)
	}
}

func (m TouchMode) String() string {
	if m == TouchLenient {
		return "lenient"
	}
	return "strict"
}

// VelocityPolicy holds the minimum swipe velocity in px/ms, per platform.
// Platform names are matched case-insensitively against the value reported by
// the windowing layer (for SDL: "iOS", "Android", "Linux", ...).
type VelocityPolicy struct {
	Default     float64
	PerPlatform map[string]float64
}

// DefaultVelocityPolicy gives mobile platforms a lower bar than desktop touch panels.
func DefaultVelocityPolicy() VelocityPolicy {
	return VelocityPolicy{
		Default: 0.3,
		PerPlatform: map[string]float64{
			"ios":     0.2,
			"android": 0.25,
		},
	}
}

// MinVelocity returns the minimum velocity for the given platform.
func (p VelocityPolicy) MinVelocity(platform string) float64 {
	if v, ok := p.PerPlatform[strings.ToLower(platform)]; ok {
		return v
	}
	return p.Default
}

// Config holds the tunables of a Navigator. Distances are in pixels.
type Config struct {
	TransitionDuration         time.Duration // Cooldown and animation length
	ReducedTransitionDuration  time.Duration // Used instead of TransitionDuration when ReducedMotion is set
	WheelThreshold             float64       // |deltaY| must exceed this to navigate
	WheelThrottle              time.Duration // At most one wheel evaluation per window
	TouchDisplacementThreshold float64       // Minimum swipe length
	TouchNoiseThreshold        float64       // Movement below this is a tap, not a swipe
	EdgeBuffer                 float64       // Slack when deciding that content is at an edge
	ReducedMotion              bool
	TouchMode                  TouchMode
	Velocity                   VelocityPolicy
}

// DefaultConfig returns the stock navigation tuning.
func DefaultConfig() Config {
	return Config{
		TransitionDuration:         1000 * time.Millisecond,
		ReducedTransitionDuration:  150 * time.Millisecond,
		WheelThreshold:             50,
		WheelThrottle:              100 * time.Millisecond,
		TouchDisplacementThreshold: 40,
		TouchNoiseThreshold:        10,
		EdgeBuffer:                 2,
		TouchMode:                  TouchStrict,
		Velocity:                   DefaultVelocityPolicy(),
	}
}

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("deck: invalid config")

// MaxEdgeBuffer is the largest accepted EdgeBuffer.
const MaxEdgeBuffer = 5

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.TransitionDuration < 0:
		return fmt.Errorf("%w: transition duration %s is negative", ErrInvalidConfig, c.TransitionDuration)
	case c.ReducedTransitionDuration < 0:
		return fmt.Errorf("%w: reduced transition duration %s is negative", ErrInvalidConfig, c.ReducedTransitionDuration)
	case c.WheelThreshold < 0:
		return fmt.Errorf("%w: wheel threshold %v is negative", ErrInvalidConfig, c.WheelThreshold)
	case c.WheelThrottle < 0:
		return fmt.Errorf("%w: wheel throttle %s is negative", ErrInvalidConfig, c.WheelThrottle)
	case c.TouchDisplacementThreshold < 0:
		return fmt.Errorf("%w: touch displacement threshold %v is negative", ErrInvalidConfig, c.TouchDisplacementThreshold)
	case c.TouchNoiseThreshold < 0:
		return fmt.Errorf("%w: touch noise threshold %v is negative", ErrInvalidConfig, c.TouchNoiseThreshold)
	case c.EdgeBuffer < 0 || c.EdgeBuffer > MaxEdgeBuffer:
		return fmt.Errorf("%w: edge buffer %v outside [0, %d]", ErrInvalidConfig, c.EdgeBuffer, MaxEdgeBuffer)
	case c.Velocity.Default < 0:
		return fmt.Errorf("%w: default velocity %v is negative", ErrInvalidConfig, c.Velocity.Default)
	}
	for platform, v := range c.Velocity.PerPlatform {
		if v < 0 {
			return fmt.Errorf("%w: velocity for %s is negative", ErrInvalidConfig, platform)
		}
	}
	return nil
}

// transition returns the style and duration for the next transition.
func (c Config) transition() (TransitionStyle, time.Duration) {
	if c.ReducedMotion {
		return TransitionFade, c.ReducedTransitionDuration
	}
	return TransitionSlide, c.TransitionDuration
}
