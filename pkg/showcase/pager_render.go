package showcase

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/zyxo/showcase/pkg/showcase/constants"
	"github.com/zyxo/showcase/pkg/showcase/i18n"
	"github.com/zyxo/showcase/pkg/showcase/internal"
	"github.com/zyxo/showcase/pkg/showcase/motion"
)

func (p *pager) ensureTargets(w, h int32) error {
	if p.targets[0] != nil && p.targetW == w && p.targetH == h {
		return nil
	}
	p.destroyTargets()
	for i := range p.targets {
		tex, err := p.window.Renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, w, h)
		if err != nil {
			p.destroyTargets()
			return NewInfrastructureError("create_target", err)
		}
		_ = tex.SetBlendMode(sdl.BLENDMODE_BLEND)
		p.targets[i] = tex
	}
	p.targetW, p.targetH = w, h
	internal.GetInternalLogger().Debug("Section targets created", "width", w, "height", h)
	return nil
}

func (p *pager) destroyTargets() {
	for i, tex := range p.targets {
		if tex != nil {
			tex.Destroy()
			p.targets[i] = nil
		}
	}
}

func (p *pager) render(now time.Time) error {
	width, height := p.window.Size()
	if err := p.ensureTargets(width, height); err != nil {
		return err
	}
	theme := internal.GetTheme()
	p.window.Clear(theme.BackgroundColor)

	if p.transition != nil && p.transition.Done(now) {
		p.transition = nil
	}

	if t := p.transition; t != nil {
		out, in := t.Frames(now)
		if _, err := p.drawSection(t.From, p.targets[0], theme, width, height); err != nil {
			return err
		}
		p.blit(p.targets[0], out, width, height)
		if _, err := p.drawSection(t.To, p.targets[1], theme, width, height); err != nil {
			return err
		}
		p.blit(p.targets[1], in, width, height)
		// Section content is not clickable mid-transition.
		p.sectionSpots = p.sectionSpots[:0]
	} else {
		spots, err := p.drawSection(p.nav.State().ActiveIndex, p.targets[0], theme, width, height)
		if err != nil {
			return err
		}
		p.blit(p.targets[0], motion.Identity, width, height)
		p.sectionSpots = spots
	}

	p.chromeSpots = p.chromeSpots[:0]
	p.renderLogo(theme)
	p.renderIndicators(theme, width, height)
	p.renderStatus(theme, height, now)
	p.chat.render(p.window.Renderer, p.text, theme, width, height, now)
	return nil
}

// drawSection renders section i into tex and returns its hotspots in screen coordinates.
func (p *pager) drawSection(i int, tex *sdl.Texture, theme internal.Theme, width, height int32) ([]hotspot, error) {
	r := p.window.Renderer
	if err := r.SetRenderTarget(tex); err != nil {
		return nil, NewInfrastructureError("render_section", err)
	}
	defer r.SetRenderTarget(nil)

	_ = r.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	_ = r.Clear()

	pg := p.pages[i]
	top := topInset
	if pg.contentH > 0 {
		top = internal.Max32(topInset, (height-pg.contentH)/2)
	}

	c := &canvas{
		r:      r,
		text:   p.text,
		theme:  theme,
		width:  width,
		height: height,
		top:    top,
		scroll: int32(pg.scroll.Offset),
	}
	pg.contentH = pg.view.draw(c)
	pg.scroll.Resize(float64(height), float64(top+pg.contentH+bottomInset))

	track := float64(height - topInset - bottomInset)
	if pos, length, ok := pg.scroll.Thumb(track, 40); ok {
		c.scrollbar(pos, length)
	}
	return c.spots, nil
}

// blit copies a section texture to the screen with a transition frame applied about the
// centre of the window.
func (p *pager) blit(tex *sdl.Texture, f motion.Frame, width, height int32) {
	w := int32(float64(width) * f.Scale)
	h := int32(float64(height) * f.Scale)
	dst := sdl.Rect{
		X: (width - w) / 2,
		Y: (height-h)/2 + int32(f.OffsetY*float64(height)),
		W: w,
		H: h,
	}
	_ = tex.SetAlphaMod(uint8(f.Alpha * 255))
	_ = p.window.Renderer.Copy(tex, nil, &dst)
}

func (p *pager) renderLogo(theme internal.Theme) {
	const x, y, size int32 = 28, 24, 56
	rect := sdl.Rect{X: x, Y: y, W: size, H: size}
	if logo := p.window.Logo; logo != nil {
		_ = p.window.Renderer.Copy(logo, nil, &rect)
	}

	brand := p.catalogue.Brand.Name
	w, h := p.text.Draw(internal.Fonts.Heading, brand, x+size+14, y+(size-int32(internal.Fonts.Heading.Height()))/2, theme.TextColor, constants.TextAlignLeft)
	rect.W += 14 + w
	rect.H = internal.Max32(size, h)

	label := p.loc.T("LogoLabel", i18n.Data{"Brand": brand})
	p.chromeSpots = append(p.chromeSpots, hotspot{rect: rect, label: label, action: func() {
		p.nav.RequestNavigate(0)
	}})
}

func (p *pager) renderIndicators(theme internal.Theme, width, height int32) {
	const spacing, hit int32 = 28, 28
	indicators := p.nav.Indicators()
	x := width - 36
	y := height/2 - spacing*int32(len(indicators)-1)/2

	for _, ind := range indicators {
		if ind.Active {
			internal.FillRoundedRect(p.window.Renderer, sdl.Rect{X: x - 4, Y: y - 12, W: 8, H: 24}, 4, theme.AccentColor)
		} else {
			internal.FillCircle(p.window.Renderer, x, y, 4, internal.WithAlpha(theme.MutedTextColor, 0.6))
		}

		target := ind.Index
		p.chromeSpots = append(p.chromeSpots, hotspot{
			rect:  sdl.Rect{X: x - hit/2, Y: y - hit/2, W: hit, H: hit},
			label: p.loc.T("IndicatorLabel", i18n.Data{"Section": ind.Name}),
			action: func() {
				p.nav.RequestNavigate(target)
			},
		})
		y += spacing
	}
}

// renderStatus is the visible live region: the latest announcement, fading out.
func (p *pager) renderStatus(theme internal.Theme, height int32, now time.Time) {
	if p.status == "" {
		return
	}
	age := now.Sub(p.statusAt)
	if age >= statusDuration {
		return
	}
	alpha := 1.0
	if fade := statusDuration - age; fade < 500*time.Millisecond {
		alpha = float64(fade) / float64(500*time.Millisecond)
	}
	color := internal.WithAlpha(theme.MutedTextColor, alpha)
	p.text.Draw(internal.Fonts.Small, p.status, 28, height-48, color, constants.TextAlignLeft)
}
