package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// InitSettings is what Init needs to bring up SDL.
type InitSettings struct {
	Title   string
	Width   int32 // Zero uses the display size
	Height  int32
	Options WindowOptions
	LogoSVG []byte // Rasterised once into Window.Logo; optional
}

// Init starts SDL, opens the window and loads the fonts.
func Init(s InitSettings) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		GetInternalLogger().Warn("SDL_image unavailable", "error", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	w, err := initWindow(s.Title, s.Width, s.Height, s.Options)
	if err != nil {
		return err
	}
	window = w

	openControllers()

	if err := initFonts(GetTheme(), window.GetHeight()); err != nil {
		return err
	}

	if len(s.LogoSVG) > 0 {
		logo, err := LogoTexture(window.Renderer, s.LogoSVG, 256)
		if err != nil {
			GetInternalLogger().Warn("Failed to rasterise logo", "error", err)
		} else {
			window.Logo = logo
		}
	}

	return nil
}

// Platform is the SDL platform name, e.g. "Linux" or "iOS".
func Platform() string {
	return sdl.GetPlatform()
}

func SDLCleanup() {
	if window != nil {
		window.destroy()
		window = nil
	}
	closeControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
