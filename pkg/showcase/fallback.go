package showcase

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/zyxo/showcase/pkg/showcase/constants"
	"github.com/zyxo/showcase/pkg/showcase/i18n"
	"github.com/zyxo/showcase/pkg/showcase/internal"
)

// FallbackSettings configures the fallback screen.
type FallbackSettings struct {
	Localizer *i18n.Localizer
	// Detail is the error text shown under the message. Empty hides it.
	Detail string
	// DisableQuit hides the quit option, for kiosks that must never exit.
	DisableQuit bool
}

type fallbackOption struct {
	label  string
	action FallbackAction
	rect   sdl.Rect
}

type fallbackController struct {
	title    string
	body     string
	detail   string
	options  []fallbackOption
	selected int
	done     bool
	quit     bool
}

// Fallback shows the failure screen with "Try Again" and "Quit". The visitor moves between the
// options with left/right and confirms with Enter or the A button; a click picks directly.
// Returns ErrCancelled if the window is closed.
func Fallback(settings FallbackSettings) (*FallbackResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, ErrNotInitialized
	}
	loc := settings.Localizer
	if loc == nil {
		loc = i18n.Must()
	}

	c := &fallbackController{
		title:  loc.T("FallbackTitle", nil),
		body:   loc.T("FallbackBody", nil),
		detail: settings.Detail,
		options: []fallbackOption{
			{label: loc.T("FallbackRetry", nil), action: FallbackActionRetry},
		},
	}
	if !settings.DisableQuit {
		c.options = append(c.options, fallbackOption{label: loc.T("FallbackQuit", nil), action: FallbackActionQuit})
	}

	text := internal.NewTextRenderer(window.Renderer)
	defer text.Destroy()

	for !c.done {
		c.handleEvents(window.PixelScale())
		c.render(window, text)
		window.Present()
		sdl.Delay(uint32(constants.FrameDelay.Milliseconds()))
	}

	if c.quit {
		return nil, ErrCancelled
	}
	return &FallbackResult{Action: c.options[c.selected].action}, nil
}

func (c *fallbackController) handleEvents(scale float64) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.quit = true
			c.done = true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_LEFT:
				c.move(-1)
			case sdl.K_RIGHT, sdl.K_TAB:
				c.move(1)
			case sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_SPACE:
				c.done = true
			}
		case *sdl.ControllerButtonEvent:
			if e.State != sdl.PRESSED {
				continue
			}
			switch sdl.GameControllerButton(e.Button) {
			case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
				c.move(-1)
			case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
				c.move(1)
			case sdl.CONTROLLER_BUTTON_A, sdl.CONTROLLER_BUTTON_START:
				c.done = true
			}
		case *sdl.MouseButtonEvent:
			if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT {
				continue
			}
			c.pick(int32(float64(e.X)*scale), int32(float64(e.Y)*scale))
		case *sdl.TouchFingerEvent:
			if e.Type != sdl.FINGERUP {
				continue
			}
			w, h := internal.GetWindow().Size()
			c.pick(int32(e.X*float32(w)), int32(e.Y*float32(h)))
		}
	}
}

func (c *fallbackController) move(step int) {
	n := len(c.options)
	c.selected = ((c.selected+step)%n + n) % n
}

func (c *fallbackController) pick(x, y int32) {
	for i, o := range c.options {
		if internal.PointInRect(x, y, o.rect) {
			c.selected = i
			c.done = true
			return
		}
	}
}

func (c *fallbackController) render(window *internal.Window, text *internal.TextRenderer) {
	theme := internal.GetTheme()
	r := window.Renderer
	window.Clear(theme.BackgroundColor)

	width, height := window.Size()
	maxWidth := internal.Min32(width*3/4, 800)
	cx := width / 2

	f := internal.Fonts
	titleH := internal.TextBlockHeight(f.Title, c.title, maxWidth)
	bodyH := internal.TextBlockHeight(f.Body, c.body, maxWidth)
	detailH := internal.TextBlockHeight(f.Small, c.detail, maxWidth)
	_, buttonH := buttonSize(c.options[0].label)
	total := titleH + 20 + bodyH + 16 + detailH + 40 + buttonH

	y := (height - total) / 2
	y += text.DrawWrapped(f.Title, c.title, cx, y, maxWidth, theme.TextColor, constants.TextAlignCenter) + 20
	y += text.DrawWrapped(f.Body, c.body, cx, y, maxWidth, theme.MutedTextColor, constants.TextAlignCenter) + 16
	if c.detail != "" {
		y += text.DrawWrapped(f.Small, c.detail, cx, y, maxWidth, theme.SecondaryColor, constants.TextAlignCenter)
	}
	y += 40

	const gap int32 = 24
	var rowW int32
	for _, o := range c.options {
		w, _ := buttonSize(o.label)
		rowW += w
	}
	rowW += gap * int32(len(c.options)-1)

	x := cx - rowW/2
	for i := range c.options {
		o := &c.options[i]
		w, h := buttonSize(o.label)
		o.rect = sdl.Rect{X: x, Y: y, W: w, H: h}
		if i == c.selected {
			internal.FillRoundedRect(r, o.rect, h/2, theme.AccentColor)
			text.Draw(f.Heading, o.label, x+w/2, y+14, theme.OnAccentColor, constants.TextAlignCenter)
		} else {
			internal.StrokeRoundedRect(r, o.rect, h/2, theme.BorderColor)
			text.Draw(f.Heading, o.label, x+w/2, y+14, theme.TextColor, constants.TextAlignCenter)
		}
		x += w + gap
	}
}
