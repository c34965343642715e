package showcase

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/zyxo/showcase/pkg/showcase/constants"
	"github.com/zyxo/showcase/pkg/showcase/internal"
)

// Space reserved above and below section content for the logo bar and the status line.
const (
	topInset    int32 = 110
	bottomInset int32 = 90
)

// hotspot is a clickable screen rectangle registered while drawing.
type hotspot struct {
	rect   sdl.Rect
	label  string
	action func()
}

// canvas is what a section view draws with during one frame. Views lay out in content
// coordinates starting at top; scroll is subtracted on the way to the renderer.
type canvas struct {
	r      *sdl.Renderer
	text   *internal.TextRenderer
	theme  internal.Theme
	width  int32
	height int32
	top    int32
	scroll int32
	spots  []hotspot
}

func (c *canvas) screenY(y int32) int32 {
	return y - c.scroll
}

// column returns the x and width of the centred content column.
func (c *canvas) column(maxWidth int32) (int32, int32) {
	margin := internal.Max32(24, c.width/14)
	w := internal.Min32(maxWidth, c.width-2*margin)
	return (c.width - w) / 2, w
}

func (c *canvas) hotspot(rect sdl.Rect, label string, action func()) {
	if action == nil {
		return
	}
	c.spots = append(c.spots, hotspot{rect: rect, label: label, action: action})
}

func (c *canvas) textLine(font *ttf.Font, s string, x, y int32, color sdl.Color, align constants.TextAlign) (int32, int32) {
	return c.text.Draw(font, s, x, c.screenY(y), color, align)
}

func (c *canvas) paragraph(font *ttf.Font, s string, x, y, maxWidth int32, color sdl.Color, align constants.TextAlign) int32 {
	return c.text.DrawWrapped(font, s, x, c.screenY(y), maxWidth, color, align)
}

func (c *canvas) fillRounded(rect sdl.Rect, radius int32, color sdl.Color) {
	rect.Y = c.screenY(rect.Y)
	internal.FillRoundedRect(c.r, rect, radius, color)
}

func (c *canvas) strokeRounded(rect sdl.Rect, radius int32, color sdl.Color) {
	rect.Y = c.screenY(rect.Y)
	internal.StrokeRoundedRect(c.r, rect, radius, color)
}

type buttonStyle int

const (
	buttonFilled buttonStyle = iota
	buttonOutlined
)

func buttonSize(label string) (int32, int32) {
	font := internal.Fonts.Heading
	return internal.Measure(font, label) + 64, int32(font.Height()) + 28
}

// button draws a pill with its top-left corner at (x, y) and registers it as a hotspot.
func (c *canvas) button(label string, x, y int32, style buttonStyle, action func()) (int32, int32) {
	w, h := buttonSize(label)
	rect := sdl.Rect{X: x, Y: y, W: w, H: h}

	fg := c.theme.OnAccentColor
	switch style {
	case buttonFilled:
		c.fillRounded(rect, h/2, c.theme.AccentColor)
	case buttonOutlined:
		c.strokeRounded(rect, h/2, c.theme.AccentColor)
		fg = c.theme.AccentColor
	}
	c.textLine(internal.Fonts.Heading, label, x+w/2, y+14, fg, constants.TextAlignCenter)

	rect.Y = c.screenY(rect.Y)
	c.hotspot(rect, label, action)
	return w, h
}

// heading draws a section title and subtitle centred in the column and returns the height used.
func (c *canvas) heading(title, subtitle string, y int32) int32 {
	x, w := c.column(900)
	cx := x + w/2
	h := c.paragraph(internal.Fonts.Title, title, cx, y, w, c.theme.TextColor, constants.TextAlignCenter)
	if subtitle != "" {
		h += 14
		h += c.paragraph(internal.Fonts.Body, subtitle, cx, y+h, w, c.theme.MutedTextColor, constants.TextAlignCenter)
	}
	return h + 40
}

// scrollbar draws the thumb of an overflowing section along the right edge.
func (c *canvas) scrollbar(pos, length float64) {
	track := sdl.Rect{X: c.width - 10, Y: topInset, W: 4, H: c.height - topInset - bottomInset}
	internal.FillRoundedRect(c.r, track, 2, internal.WithAlpha(c.theme.BorderColor, 0.6))
	thumb := sdl.Rect{X: track.X, Y: track.Y + int32(pos), W: track.W, H: int32(length)}
	internal.FillRoundedRect(c.r, thumb, 2, c.theme.SecondaryColor)
}
