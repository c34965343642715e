package internal

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/zyxo/showcase/pkg/showcase/constants"
)

// LineSpacing is the extra gap between wrapped lines as a share of the font height.
const LineSpacing = 0.3

// WrapLines breaks text into lines no wider than maxWidth, splitting on spaces. Explicit
// newlines are kept and a single word wider than maxWidth gets a line of its own.
func WrapLines(text string, maxWidth int32, measure func(string) int32) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// Measure returns the rendered width of text.
func Measure(font *ttf.Font, text string) int32 {
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// LineHeight is the advance between wrapped lines.
func LineHeight(font *ttf.Font) int32 {
	h := int32(font.Height())
	return h + int32(float64(h)*LineSpacing)
}

// TextBlockHeight is the height WrapLines output occupies.
func TextBlockHeight(font *ttf.Font, text string, maxWidth int32) int32 {
	if text == "" {
		return 0
	}
	lines := WrapLines(text, maxWidth, func(s string) int32 { return Measure(font, s) })
	return int32(len(lines))*LineHeight(font) - int32(float64(font.Height())*LineSpacing)
}

// TextRenderer draws cached text textures.
type TextRenderer struct {
	renderer *sdl.Renderer
	cache    *TextureCache
}

func NewTextRenderer(renderer *sdl.Renderer) *TextRenderer {
	return &TextRenderer{renderer: renderer, cache: NewTextureCache()}
}

func (t *TextRenderer) texture(font *ttf.Font, text string, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}
	key := fmt.Sprintf("%p|%02x%02x%02x|%s", font, color.R, color.G, color.B, text)
	if tex := t.cache.Get(key); tex != nil {
		return tex
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: color.R, G: color.G, B: color.B, A: 255})
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "error", err)
		return nil
	}
	defer surface.Free()

	tex, err := t.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Debug("Failed to create text texture", "error", err)
		return nil
	}
	_ = tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	t.cache.Set(key, tex)
	return tex
}

// Draw renders a single line anchored at x according to align and returns its size.
func (t *TextRenderer) Draw(font *ttf.Font, text string, x, y int32, color sdl.Color, align constants.TextAlign) (int32, int32) {
	tex := t.texture(font, text, color)
	if tex == nil {
		return 0, 0
	}
	_, _, w, h, err := tex.Query()
	if err != nil {
		return 0, 0
	}

	switch align {
	case constants.TextAlignCenter:
		x -= w / 2
	case constants.TextAlignRight:
		x -= w
	}

	_ = tex.SetAlphaMod(color.A)
	_ = t.renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w, h
}

// DrawWrapped renders text wrapped to maxWidth and returns the height used. For centred text,
// x is the centre of the block.
func (t *TextRenderer) DrawWrapped(font *ttf.Font, text string, x, y, maxWidth int32, color sdl.Color, align constants.TextAlign) int32 {
	if text == "" {
		return 0
	}
	lines := WrapLines(text, maxWidth, func(s string) int32 { return Measure(font, s) })
	step := LineHeight(font)
	for i, line := range lines {
		t.Draw(font, line, x, y+int32(i)*step, color, align)
	}
	return int32(len(lines))*step - int32(float64(font.Height())*LineSpacing)
}

func (t *TextRenderer) Destroy() {
	t.cache.Destroy()
}
