package showcase

import (
	"maps"
	"slices"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/zyxo/showcase/pkg/showcase/config"
	"github.com/zyxo/showcase/pkg/showcase/constants"
	"github.com/zyxo/showcase/pkg/showcase/deck"
)

// axisDeadzone is the stick travel ignored before the right stick scrolls content.
const axisDeadzone = 8000

// deckKey maps a keyboard key to a navigation key.
func deckKey(sym sdl.Keycode) deck.Key {
	switch sym {
	case sdl.K_UP:
		return deck.KeyArrowUp
	case sdl.K_DOWN:
		return deck.KeyArrowDown
	case sdl.K_PAGEUP:
		return deck.KeyPageUp
	case sdl.K_PAGEDOWN:
		return deck.KeyPageDown
	case sdl.K_HOME:
		return deck.KeyHome
	case sdl.K_END:
		return deck.KeyEnd
	default:
		return deck.KeyUnknown
	}
}

// controllerKey maps a game controller button to a navigation key.
func controllerKey(button sdl.GameControllerButton) deck.Key {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return deck.KeyArrowUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return deck.KeyArrowDown
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return deck.KeyPageUp
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return deck.KeyPageDown
	case sdl.CONTROLLER_BUTTON_BACK:
		return deck.KeyHome
	case sdl.CONTROLLER_BUTTON_START:
		return deck.KeyEnd
	default:
		return deck.KeyUnknown
	}
}

// wheelDelta converts SDL wheel notches to a pixel delta that is positive when the content
// should move towards the next section.
func wheelDelta(y int32, direction uint32) float64 {
	dy := -float64(y) * constants.WheelNotchPixels
	if direction == sdl.MOUSEWHEEL_FLIPPED {
		dy = -dy
	}
	return dy
}

// axisScroll is the per-frame content scroll for a stick position.
func axisScroll(value int16) float64 {
	if value > -axisDeadzone && value < axisDeadzone {
		return 0
	}
	return float64(value) / 32767 * 24
}

// needsRebuild reports whether a reloaded configuration changes more than the pager can apply
// in place. Reduced motion is applied live; everything the deck, the content or the chat
// client is built from requires a new pager.
func needsRebuild(old, next config.Config) bool {
	a, b := old.Navigation, next.Navigation
	if a.TransitionDuration != b.TransitionDuration ||
		a.ReducedTransitionDuration != b.ReducedTransitionDuration ||
		a.WheelThreshold != b.WheelThreshold ||
		a.WheelThrottle != b.WheelThrottle ||
		a.TouchDisplacement != b.TouchDisplacement ||
		a.TouchNoise != b.TouchNoise ||
		a.EdgeBuffer != b.EdgeBuffer ||
		a.TouchMode != b.TouchMode ||
		a.Velocity.Default != b.Velocity.Default ||
		!maps.Equal(a.Velocity.PerPlatform, b.Velocity.PerPlatform) {
		return true
	}

	c, d := old.Chat, next.Chat
	if c.Enabled != d.Enabled || c.APIKey != d.APIKey || c.Timeout != d.Timeout ||
		c.RequestsPerMinute != d.RequestsPerMinute || !slices.Equal(c.Models, d.Models) {
		return true
	}

	return old.ContentPath != next.ContentPath || old.Locale != next.Locale ||
		old.Touchscreen.Device != next.Touchscreen.Device
}
