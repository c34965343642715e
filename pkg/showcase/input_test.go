package showcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/zyxo/showcase/pkg/showcase/config"
	"github.com/zyxo/showcase/pkg/showcase/deck"
)

func TestDeckKey(t *testing.T) {
	cases := map[sdl.Keycode]deck.Key{
		sdl.K_UP:       deck.KeyArrowUp,
		sdl.K_DOWN:     deck.KeyArrowDown,
		sdl.K_PAGEUP:   deck.KeyPageUp,
		sdl.K_PAGEDOWN: deck.KeyPageDown,
		sdl.K_HOME:     deck.KeyHome,
		sdl.K_END:      deck.KeyEnd,
		sdl.K_a:        deck.KeyUnknown,
		sdl.K_TAB:      deck.KeyUnknown,
	}
	for sym, want := range cases {
		assert.Equal(t, want, deckKey(sym), "key %d", sym)
	}
}

func TestControllerKey(t *testing.T) {
	assert.Equal(t, deck.KeyArrowDown, controllerKey(sdl.CONTROLLER_BUTTON_DPAD_DOWN))
	assert.Equal(t, deck.KeyPageUp, controllerKey(sdl.CONTROLLER_BUTTON_LEFTSHOULDER))
	assert.Equal(t, deck.KeyEnd, controllerKey(sdl.CONTROLLER_BUTTON_START))
	assert.Equal(t, deck.KeyUnknown, controllerKey(sdl.CONTROLLER_BUTTON_A))
}

func TestWheelDelta(t *testing.T) {
	// SDL reports a notch away from the user as +1, which pages backwards.
	assert.Equal(t, -100.0, wheelDelta(1, sdl.MOUSEWHEEL_NORMAL))
	assert.Equal(t, 200.0, wheelDelta(-2, sdl.MOUSEWHEEL_NORMAL))
	assert.Equal(t, 100.0, wheelDelta(1, sdl.MOUSEWHEEL_FLIPPED))
	assert.Zero(t, wheelDelta(0, sdl.MOUSEWHEEL_NORMAL))
}

func TestAxisScroll(t *testing.T) {
	assert.Zero(t, axisScroll(4000))
	assert.Zero(t, axisScroll(-7999))
	assert.InDelta(t, 24, axisScroll(32767), 1e-9)
	assert.Less(t, axisScroll(-20000), 0.0)
}

func TestNeedsRebuild(t *testing.T) {
	base := config.Default()

	reduced := config.Default()
	reduced.Navigation.ReducedMotion = true
	assert.False(t, needsRebuild(base, reduced), "reduced motion is applied in place")

	window := config.Default()
	window.Window.Width = 640
	assert.False(t, needsRebuild(base, window), "window changes wait for a restart")

	slower := config.Default()
	slower.Navigation.TransitionDuration = config.Duration{Duration: 2 * time.Second}
	assert.True(t, needsRebuild(base, slower))

	platforms := config.Default()
	platforms.Navigation.Velocity.PerPlatform = map[string]float64{"linux": 0.5}
	assert.True(t, needsRebuild(base, platforms))

	models := config.Default()
	models.Chat.Models = []string{"gemini-2.0-flash"}
	assert.True(t, needsRebuild(base, models))

	locale := config.Default()
	locale.Locale = "hi"
	assert.True(t, needsRebuild(base, locale))
}
