package showcase

import (
	"strings"
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/zyxo/showcase/pkg/showcase/constants"
	"github.com/zyxo/showcase/pkg/showcase/content"
	"github.com/zyxo/showcase/pkg/showcase/deck"
	"github.com/zyxo/showcase/pkg/showcase/i18n"
	"github.com/zyxo/showcase/pkg/showcase/internal"
)

// sectionView draws one section into a canvas and returns the height of its content.
type sectionView interface {
	draw(c *canvas) int32
	// primary is the action of the controller A button and the Enter key, or nil.
	primary() func()
}

// sectionDeps is what every view receives from the pager.
type sectionDeps struct {
	catalogue *content.Catalogue
	loc       *i18n.Localizer
	navigate  deck.NavigateFunc
	open      func(url string)
}

func (d sectionDeps) inquire(plan string) func() {
	return func() {
		d.open(d.catalogue.WhatsAppURL(content.PlanInquiry(plan)))
	}
}

// newSectionView picks the view for a section id. Unknown ids render as a titled placeholder.
func newSectionView(ref content.SectionRef, deps sectionDeps) sectionView {
	switch ref.ID {
	case "hero":
		return &heroView{deps}
	case "specs":
		return &specsView{deps}
	case "pricing":
		return &pricingView{deps}
	case "comparison":
		return &comparisonView{deps}
	case "final":
		return &finalView{deps}
	default:
		return &placeholderView{title: ref.Name}
	}
}

type heroView struct{ sectionDeps }

func (v *heroView) primary() func() {
	target := v.catalogue.SectionIndex(v.catalogue.Hero.CTATarget)
	if target < 0 {
		return nil
	}
	return func() { v.navigate(target) }
}

func (v *heroView) draw(c *canvas) int32 {
	hero := v.catalogue.Hero
	x, w := c.column(960)
	cx := x + w/2
	y := c.top

	_, h := c.textLine(internal.Fonts.Small, strings.ToUpper(v.catalogue.Brand.Tagline), cx, y, c.theme.SecondaryColor, constants.TextAlignCenter)
	y += h + 24
	y += c.paragraph(internal.Fonts.Display, hero.Headline, cx, y, w, c.theme.TextColor, constants.TextAlignCenter)
	y += 28
	y += c.paragraph(internal.Fonts.Body, hero.Subhead, cx, y, internal.Min32(w, 720), c.theme.MutedTextColor, constants.TextAlignCenter)
	y += 44

	bw, _ := buttonSize(hero.CTA)
	_, bh := c.button(hero.CTA, cx-bw/2, y, buttonFilled, v.primary())
	y += bh

	return y - c.top
}

type specsView struct{ sectionDeps }

func (v *specsView) primary() func() { return nil }

func (v *specsView) draw(c *canvas) int32 {
	caps := v.catalogue.Capabilities
	y := c.top + c.heading(caps.Title, caps.Subtitle, c.top)

	x, w := c.column(1100)
	cols := int32(1)
	if w >= 760 {
		cols = 2
	}
	const gap, pad, badge int32 = 24, 28, 48
	cardW := (w - gap*(cols-1)) / cols
	textW := cardW - 2*pad

	for row := 0; row*int(cols) < len(caps.Modules); row++ {
		start := row * int(cols)
		end := min(start+int(cols), len(caps.Modules))
		mods := caps.Modules[start:end]

		var rowH int32
		for _, m := range mods {
			h := 2*pad + badge + 20 +
				internal.TextBlockHeight(internal.Fonts.Heading, m.Title, textW) + 10 +
				internal.TextBlockHeight(internal.Fonts.Body, m.Desc, textW)
			rowH = internal.Max32(rowH, h)
		}

		for i, m := range mods {
			cardX := x + int32(i)*(cardW+gap)
			card := sdl.Rect{X: cardX, Y: y, W: cardW, H: rowH}
			c.fillRounded(card, 16, c.theme.SurfaceColor)
			c.strokeRounded(card, 16, c.theme.BorderColor)

			bx, by := cardX+pad+badge/2, y+pad+badge/2
			internal.FillCircle(c.r, bx, c.screenY(by), badge/2, internal.WithAlpha(c.theme.AccentColor, 0.15))
			c.textLine(internal.Fonts.Heading, initial(m.Icon, m.Title), bx, by-int32(internal.Fonts.Heading.Height())/2, c.theme.AccentColor, constants.TextAlignCenter)

			ty := y + pad + badge + 20
			ty += c.paragraph(internal.Fonts.Heading, m.Title, cardX+pad, ty, textW, c.theme.TextColor, constants.TextAlignLeft) + 10
			c.paragraph(internal.Fonts.Body, m.Desc, cardX+pad, ty, textW, c.theme.MutedTextColor, constants.TextAlignLeft)
		}
		y += rowH + gap
	}

	return y - gap - c.top
}

// initial is the glyph drawn in a module badge.
func initial(icon, title string) string {
	s := icon
	if s == "" {
		s = title
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return "•"
	}
	return strings.ToUpper(string(r))
}

type pricingView struct{ sectionDeps }

func (v *pricingView) primary() func() {
	for _, p := range v.catalogue.Pricing.Packages {
		if p.Highlight {
			return v.inquire(p.Name)
		}
	}
	return nil
}

func (v *pricingView) draw(c *canvas) int32 {
	pricing := v.catalogue.Pricing
	y := c.top + c.heading(pricing.Title, pricing.Subtitle, c.top)

	x, w := c.column(1100)
	cols := int32(len(pricing.Packages))
	if w < 760 || cols == 0 {
		cols = 1
	}
	const gap, pad int32 = 28, 32
	cardW := (w - gap*(cols-1)) / cols
	textW := cardW - 2*pad

	heights := make([]int32, len(pricing.Packages))
	for i, p := range pricing.Packages {
		heights[i] = v.cardHeight(p, textW, pad)
	}

	for i := 0; i < len(pricing.Packages); i += int(cols) {
		end := min(i+int(cols), len(pricing.Packages))
		var rowH int32
		for _, h := range heights[i:end] {
			rowH = internal.Max32(rowH, h)
		}
		for j, p := range pricing.Packages[i:end] {
			v.card(c, p, x+int32(j)*(cardW+gap), y, cardW, rowH, pad)
		}
		y += rowH + gap
	}

	return y - gap - c.top
}

func (v *pricingView) cardHeight(p content.Package, textW, pad int32) int32 {
	f := internal.Fonts
	h := 2*pad +
		internal.LineHeight(f.Small) + 8 +
		internal.LineHeight(f.Heading) + 12 +
		internal.LineHeight(f.Title) + 4 +
		internal.LineHeight(f.Small) + 16 +
		internal.TextBlockHeight(f.Body, p.Desc, textW) + 20
	for _, feat := range p.Features {
		h += internal.TextBlockHeight(f.Body, feat, textW-32) + 10
	}
	if p.Why != "" {
		h += 10 + internal.TextBlockHeight(f.Small, p.Why, textW)
	}
	_, bh := buttonSize(v.loc.T("PricingSelect", i18n.Data{"Plan": p.Name}))
	return h + 24 + bh
}

func (v *pricingView) card(c *canvas, p content.Package, x, y, w, h, pad int32) {
	f := internal.Fonts
	rect := sdl.Rect{X: x, Y: y, W: w, H: h}
	c.fillRounded(rect, 20, c.theme.SurfaceColor)
	border := c.theme.BorderColor
	priceColor := c.theme.TextColor
	if p.Highlight {
		border = c.theme.AccentColor
		priceColor = c.theme.AccentColor
	}
	c.strokeRounded(rect, 20, border)

	textW := w - 2*pad
	tx := x + pad
	ty := y + pad

	c.textLine(f.Small, strings.ToUpper(p.Label), tx, ty, c.theme.SecondaryColor, constants.TextAlignLeft)
	ty += internal.LineHeight(f.Small) + 8
	c.textLine(f.Heading, p.Name, tx, ty, c.theme.TextColor, constants.TextAlignLeft)
	ty += internal.LineHeight(f.Heading) + 12
	c.textLine(f.Title, p.DisplayPrice(), tx, ty, priceColor, constants.TextAlignLeft)
	ty += internal.LineHeight(f.Title) + 4
	c.textLine(f.Small, p.Timeline, tx, ty, c.theme.MutedTextColor, constants.TextAlignLeft)
	ty += internal.LineHeight(f.Small) + 16
	ty += c.paragraph(f.Body, p.Desc, tx, ty, textW, c.theme.MutedTextColor, constants.TextAlignLeft) + 20

	for _, feat := range p.Features {
		internal.DrawCheck(c.r, tx, c.screenY(ty+4), 16, c.theme.AccentColor)
		ty += c.paragraph(f.Body, feat, tx+32, ty, textW-32, c.theme.TextColor, constants.TextAlignLeft) + 10
	}
	if p.Why != "" {
		ty += 10
		c.paragraph(f.Small, p.Why, tx, ty, textW, c.theme.MutedTextColor, constants.TextAlignLeft)
	}

	label := v.loc.T("PricingSelect", i18n.Data{"Plan": p.Name})
	bw, bh := buttonSize(label)
	style := buttonOutlined
	if p.Highlight {
		style = buttonFilled
	}
	c.button(label, x+(w-bw)/2, y+h-pad-bh, style, v.inquire(p.Name))
}

type comparisonView struct{ sectionDeps }

func (v *comparisonView) primary() func() { return nil }

func (v *comparisonView) draw(c *canvas) int32 {
	cmp := v.catalogue.Comparison
	f := internal.Fonts
	y := c.top + c.heading(cmp.Title, cmp.Subtitle, c.top)

	x, w := c.column(900)
	const pad int32 = 20
	markW := internal.Min32(160, w/5)
	itemW := w - 2*markW - 2*pad
	colA := x + w - 2*markW + markW/2
	colB := x + w - markW/2

	rowH := internal.LineHeight(f.Heading) + 2*pad
	header := sdl.Rect{X: x, Y: y, W: w, H: rowH}
	c.fillRounded(header, 12, c.theme.SurfaceColor)
	c.textLine(f.Heading, cmp.Headers[0], x+pad, y+pad, c.theme.TextColor, constants.TextAlignLeft)
	c.textLine(f.Heading, cmp.Headers[1], colA, y+pad, c.theme.TextColor, constants.TextAlignCenter)
	c.textLine(f.Heading, cmp.Headers[2], colB, y+pad, c.theme.AccentColor, constants.TextAlignCenter)
	y += rowH

	for i, row := range cmp.Rows {
		h := internal.TextBlockHeight(f.Body, row.Item, itemW) + 2*pad
		if i%2 == 1 {
			internal.FillRect(c.r, sdl.Rect{X: x, Y: c.screenY(y), W: w, H: h}, internal.WithAlpha(c.theme.SurfaceColor, 0.5))
		}
		c.paragraph(f.Body, row.Item, x+pad, y+pad, itemW, c.theme.TextColor, constants.TextAlignLeft)
		v.mark(c, row.A, colA, y+h/2)
		v.mark(c, row.B, colB, y+h/2)
		y += h
	}
	internal.FillRect(c.r, sdl.Rect{X: x, Y: c.screenY(y), W: w, H: 1}, c.theme.BorderColor)

	risks := v.catalogue.Risks
	if len(risks.Items) > 0 {
		y += 48
		c.textLine(f.Heading, risks.Title, x, y, c.theme.TextColor, constants.TextAlignLeft)
		y += internal.LineHeight(f.Heading) + 8
		for _, item := range risks.Items {
			internal.FillCircle(c.r, x+6, c.screenY(y+int32(f.Body.Height())/2), 3, c.theme.SecondaryColor)
			y += c.paragraph(f.Body, item, x+24, y, w-24, c.theme.MutedTextColor, constants.TextAlignLeft) + 10
		}
	}

	return y - c.top
}

func (v *comparisonView) mark(c *canvas, included bool, cx, cy int32) {
	const size int32 = 18
	if included {
		internal.DrawCheck(c.r, cx-size/2, c.screenY(cy-size/2), size, c.theme.AccentColor)
		return
	}
	internal.DrawCross(c.r, cx-size/2, c.screenY(cy-size/2), size, c.theme.MutedTextColor)
}

type finalView struct{ sectionDeps }

// plans returns the packages behind the primary and secondary calls to action.
func (v *finalView) plans() (first, last string) {
	pkgs := v.catalogue.Pricing.Packages
	if len(pkgs) == 0 {
		return v.catalogue.Brand.Name, v.catalogue.Brand.Name
	}
	return pkgs[0].Name, pkgs[len(pkgs)-1].Name
}

func (v *finalView) primary() func() {
	first, _ := v.plans()
	return v.inquire(first)
}

func (v *finalView) draw(c *canvas) int32 {
	final := v.catalogue.FinalCTA
	brand := v.catalogue.Brand
	f := internal.Fonts
	x, w := c.column(900)
	cx := x + w/2
	y := c.top

	y += c.paragraph(f.Display, final.Title, cx, y, w, c.theme.TextColor, constants.TextAlignCenter) + 20
	y += c.paragraph(f.Body, final.Subtitle, cx, y, w, c.theme.MutedTextColor, constants.TextAlignCenter) + 44

	first, last := v.plans()
	pw, ph := buttonSize(final.CTAPrimary)
	sw, _ := buttonSize(final.CTASecondary)
	const gap int32 = 20
	if pw+sw+gap <= w {
		left := cx - (pw+sw+gap)/2
		c.button(final.CTAPrimary, left, y, buttonFilled, v.inquire(first))
		c.button(final.CTASecondary, left+pw+gap, y, buttonOutlined, v.inquire(last))
		y += ph
	} else {
		c.button(final.CTAPrimary, cx-pw/2, y, buttonFilled, v.inquire(first))
		y += ph + gap
		c.button(final.CTASecondary, cx-sw/2, y, buttonOutlined, v.inquire(last))
		y += ph
	}
	y += 36

	if brand.Contact.Email != "" {
		label := v.loc.T("ContactEmail", i18n.Data{"Email": brand.Contact.Email})
		lw, lh := c.textLine(f.Body, label, cx, y, c.theme.SecondaryColor, constants.TextAlignCenter)
		c.hotspot(sdl.Rect{X: cx - lw/2, Y: c.screenY(y), W: lw, H: lh}, label, func() {
			v.open(v.catalogue.MailtoURL())
		})
		y += lh + 28
	}

	copyright := v.loc.T("Copyright", i18n.Data{"Year": brand.Year, "Brand": brand.Name})
	_, h := c.textLine(f.Small, copyright, cx, y, c.theme.MutedTextColor, constants.TextAlignCenter)
	y += h

	return y - c.top
}

type placeholderView struct{ title string }

func (v *placeholderView) primary() func() { return nil }

func (v *placeholderView) draw(c *canvas) int32 {
	return c.heading(v.title, "", c.top)
}
