package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/zyxo/showcase/pkg/showcase/constants"
)

// WindowOptions are the SDL window flags the showcase exposes.
type WindowOptions struct {
	Fullscreen bool // Fullscreen at desktop resolution
	Borderless bool
	Resizable  bool
	Hidden     bool
}

func (wo WindowOptions) flags() uint32 {
	flags := uint32(sdl.WINDOW_ALLOW_HIGHDPI)
	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	return flags
}

// Window wraps the SDL window and renderer.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string
	Logo     *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

func resolveSize(width, height int32) (int32, int32) {
	if constants.IsDevMode() {
		width = envSize(constants.WindowWidthEnvVar, constants.DefaultDevWidth)
		height = envSize(constants.WindowHeightEnvVar, constants.DefaultDevHeight)
	}

	if width > 0 && height > 0 {
		return width, height
	}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
		return constants.DefaultDevWidth, constants.DefaultDevHeight
	}
	return mode.W, mode.H
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v)
		return fallback
	}
	return int32(n)
}

func initWindow(title string, width, height int32, opts WindowOptions) (*Window, error) {
	width, height = resolveSize(width, height)

	if constants.IsDevMode() {
		opts.Fullscreen = false
		opts.Borderless = false
		opts.Resizable = true
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, opts.flags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE|sdl.RENDERER_TARGETTEXTURE)
		if err != nil {
			window.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}
	_ = renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func (w *Window) destroy() {
	if w.Logo != nil {
		w.Logo.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Size returns the renderer output size in pixels, which differs from the window size on
// high-DPI displays.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Size()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Size()
	return height
}

// PixelScale is renderer pixels per window coordinate, used to map mouse positions.
func (w *Window) PixelScale() float64 {
	ww, _ := w.Window.GetSize()
	if ww == 0 {
		return 1
	}
	return float64(w.GetWidth()) / float64(ww)
}

// Clear fills the frame with c.
func (w *Window) Clear(c sdl.Color) {
	_ = w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	_ = w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing when VSync is not
// available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
