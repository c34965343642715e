package showcase

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/zyxo/showcase/pkg/showcase/chat"
	"github.com/zyxo/showcase/pkg/showcase/config"
	"github.com/zyxo/showcase/pkg/showcase/constants"
	"github.com/zyxo/showcase/pkg/showcase/content"
	"github.com/zyxo/showcase/pkg/showcase/deck"
	"github.com/zyxo/showcase/pkg/showcase/i18n"
	"github.com/zyxo/showcase/pkg/showcase/internal"
	"github.com/zyxo/showcase/pkg/showcase/motion"
	"github.com/zyxo/showcase/pkg/showcase/touchscreen"
)

// touchMouseID marks mouse events that SDL synthesises from touches.
const touchMouseID = math.MaxUint32

// How long an announcement stays in the status line.
const statusDuration = 4 * time.Second

// PagerSettings configures the section pager.
type PagerSettings struct {
	Catalogue *content.Catalogue
	Config    config.Config
	Localizer *i18n.Localizer
	// Chat answers the assistant overlay. Nil keeps the overlay but every question gets the
	// missing-key message.
	Chat        *chat.Client
	DisableChat bool // Hides the overlay entirely
	// Touch carries contacts from a raw evdev panel. Nil when SDL delivers finger events.
	Touch <-chan touchscreen.Contact
	// Updates carries reloaded settings from the config watcher.
	Updates      <-chan config.Config
	InitialIndex int
	// Context cancels in-flight chat requests when done. Nil uses context.Background.
	Context context.Context
	// Progress is called with the new index whenever a transition starts, so a caller can
	// resume the deck after a failure.
	Progress func(activeIndex int)
}

type page struct {
	ref      content.SectionRef
	view     sectionView
	scroll   *motion.Scroll
	contentH int32
}

type tap struct {
	x, y   float64
	lastY  float64
	inChat bool
}

type pager struct {
	ctx       context.Context
	window    *internal.Window
	text      *internal.TextRenderer
	logger    *slog.Logger
	loc       *i18n.Localizer
	catalogue *content.Catalogue
	cfg       config.Config

	nav       *deck.Navigator
	scheduler *deck.LoopScheduler
	pages     []*page
	chat      *chatOverlay

	touch    <-chan touchscreen.Contact
	updates  <-chan config.Config
	progress func(int)

	targets          [2]*sdl.Texture
	targetW, targetH int32
	transition       *motion.Transition

	sectionSpots []hotspot
	chromeSpots  []hotspot
	taps         map[int64]tap
	touchDevice  sdl.TouchID
	mouseX       int32
	mouseY       int32
	axis         int16

	status   string
	statusAt time.Time

	result *PagerResult
}

// Pager shows the catalogue as a deck of full-screen sections and runs until the visitor quits
// or a configuration reload needs a new pager. Wheel, touch, keyboard and controller input
// page between sections; content taller than the window scrolls before the deck pages.
func Pager(settings PagerSettings) (*PagerResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, ErrNotInitialized
	}
	if settings.Catalogue == nil {
		return nil, errors.New("pager: no catalogue")
	}
	loc := settings.Localizer
	if loc == nil {
		loc = i18n.Must(settings.Config.Locale)
	}
	ctx := settings.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deckCfg, err := settings.Config.Deck()
	if err != nil {
		return nil, err
	}

	logger := internal.GetLogger().With("screen", "pager")
	p := &pager{
		ctx:       ctx,
		window:    window,
		text:      internal.NewTextRenderer(window.Renderer),
		logger:    logger,
		loc:       loc,
		catalogue: settings.Catalogue,
		cfg:       settings.Config,
		touch:     settings.Touch,
		updates:   settings.Updates,
		progress:  settings.Progress,
		taps:      map[int64]tap{},
	}
	defer p.text.Destroy()
	defer p.destroyTargets()

	sections := make([]deck.Section, len(settings.Catalogue.Sections))
	for i, ref := range settings.Catalogue.Sections {
		pg := &page{ref: ref, scroll: &motion.Scroll{}}
		p.pages = append(p.pages, pg)
		sections[i] = deck.Section{ID: ref.ID, Name: ref.Name, Scroller: pg.scroll}
	}

	p.nav, err = deck.New(sections, deckCfg,
		deck.WithAnnouncer(deck.AnnouncerFunc(p.announce)),
		deck.WithAnnouncement(func(s deck.Section) string {
			return loc.T("Announcement", i18n.Data{"Section": s.Name})
		}),
		deck.WithPlatform(internal.Platform()),
		deck.WithInitialIndex(settings.InitialIndex),
		deck.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	defer p.nav.Close()
	p.scheduler = p.nav.Loop()

	deps := sectionDeps{
		catalogue: settings.Catalogue,
		loc:       loc,
		navigate:  p.nav.NavigateFunc(),
		open:      p.openURL,
	}
	for _, pg := range p.pages {
		pg.view = newSectionView(pg.ref, deps)
	}

	p.chat = newChatOverlay(settings.Chat, loc, settings.Catalogue.Brand.Name, logger)
	p.chat.disabled = settings.DisableChat
	defer p.chat.setOpen(false)

	unsubscribe := p.nav.Subscribe(p.onEvent)
	defer unsubscribe()

	logger.Info("pager started", "sections", len(p.pages), "active", p.nav.State().ActiveIndex,
		"reduced_motion", deckCfg.ReducedMotion, "touch_mode", deckCfg.TouchMode.String())

	for p.result == nil {
		p.handleEvents()
		p.drainInputs()
		if p.result != nil {
			break
		}

		now := time.Now()
		p.scheduler.RunDue(now)
		p.chat.drain()
		p.stepScroll()

		if err := p.render(now); err != nil {
			return nil, err
		}
		window.Present()
	}

	logger.Info("pager finished", "action", p.result.Action.String(), "active", p.result.ActiveIndex)
	return p.result, nil
}

func (p *pager) finish(action PagerAction, cfg config.Config) {
	p.result = &PagerResult{Action: action, ActiveIndex: p.nav.State().ActiveIndex, Config: cfg}
}

func (p *pager) active() *page {
	return p.pages[p.nav.State().ActiveIndex]
}

func (p *pager) onEvent(ev deck.Event) {
	p.logger.Debug("navigation", "event", ev.Kind.String(), "from", ev.From, "to", ev.To,
		"style", ev.Style.String(), "duration", ev.Duration)
	if ev.Kind == deck.EventTransitionStarted {
		t := motion.FromEvent(ev, time.Now())
		p.transition = &t
		if p.progress != nil {
			p.progress(ev.To)
		}
	}
}

func (p *pager) announce(text string) {
	p.status = text
	p.statusAt = time.Now()
	p.logger.Info("announcement", "text", text)
}

func (p *pager) openURL(url string) {
	p.logger.Info("opening link", "url", url)
	if err := sdl.OpenURL(url); err != nil {
		p.logger.Error("failed to open link", "url", url, "error", err)
	}
}

func (p *pager) activatePrimary() {
	if fn := p.active().view.primary(); fn != nil {
		fn()
	}
}

func (p *pager) handleEvents() {
	scale := p.window.PixelScale()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			p.finish(PagerActionQuit, config.Config{})
			return

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_FOCUS_LOST:
				p.nav.TouchCancel()
				clear(p.taps)
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				p.destroyTargets()
			}

		case *sdl.MouseMotionEvent:
			p.mouseX, p.mouseY = int32(float64(e.X)*scale), int32(float64(e.Y)*scale)

		case *sdl.MouseWheelEvent:
			if e.Which == touchMouseID {
				continue
			}
			p.wheel(wheelDelta(e.Y, e.Direction))

		case *sdl.MouseButtonEvent:
			if e.Which == touchMouseID || e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT {
				continue
			}
			p.click(int32(float64(e.X)*scale), int32(float64(e.Y)*scale))

		case *sdl.TouchFingerEvent:
			if len(p.taps) > 0 && e.TouchID != p.touchDevice {
				p.logger.Debug("touch device changed mid-gesture", "from", p.touchDevice, "to", e.TouchID)
				p.nav.TouchCancel()
				clear(p.taps)
			}
			p.touchDevice = e.TouchID

			w, h := p.window.Size()
			phase := touchscreen.PhaseMove
			switch e.Type {
			case sdl.FINGERDOWN:
				phase = touchscreen.PhaseDown
			case sdl.FINGERUP:
				phase = touchscreen.PhaseUp
			}
			p.touchInput(int64(e.FingerID), float64(e.X)*float64(w), float64(e.Y)*float64(h), phase)

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				p.key(e.Keysym)
			}

		case *sdl.TextInputEvent:
			if p.chat.open {
				p.chat.typed(e.GetText())
			}

		case *sdl.ControllerButtonEvent:
			if e.State == sdl.PRESSED {
				p.button(sdl.GameControllerButton(e.Button))
			}

		case *sdl.ControllerAxisEvent:
			if sdl.GameControllerAxis(e.Axis) == sdl.CONTROLLER_AXIS_RIGHTY {
				p.axis = e.Value
			}

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				internal.OpenController(int(e.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				internal.CloseController(e.Which)
			}
		}
	}
}

// drainInputs applies whatever background producers posted since the last frame.
func (p *pager) drainInputs() {
	for {
		select {
		case c, ok := <-p.touch:
			if !ok {
				p.touch = nil
				continue
			}
			_, h := p.window.Size()
			p.touchInput(c.ID, -1, c.Y*float64(h), c.Phase)

		case cfg, ok := <-p.updates:
			if !ok {
				p.updates = nil
				continue
			}
			p.applyConfig(cfg)
			if p.result != nil {
				return
			}

		default:
			return
		}
	}
}

func (p *pager) applyConfig(cfg config.Config) {
	if needsRebuild(p.cfg, cfg) {
		p.logger.Info("configuration changed, rebuilding pager")
		p.finish(PagerActionReloaded, cfg)
		return
	}
	if cfg.Navigation.ReducedMotion != p.cfg.Navigation.ReducedMotion {
		p.logger.Info("reduced motion changed", "reduced_motion", cfg.Navigation.ReducedMotion)
		p.nav.SetReducedMotion(cfg.Navigation.ReducedMotion)
	}
	p.cfg = cfg
}

func (p *pager) wheel(dy float64) {
	if dy == 0 || p.chat.wheel(p.mouseX, p.mouseY, dy) {
		return
	}
	if p.nav.HandleWheel(dy) || p.nav.State().Locked {
		return
	}
	p.active().scroll.By(dy)
}

func (p *pager) key(sym sdl.Keysym) {
	if k := deckKey(sym.Sym); k != deck.KeyUnknown {
		p.nav.HandleKey(k)
		return
	}
	if p.chat.open {
		p.chat.handleKey(p.ctx, sym.Sym)
		return
	}

	switch sym.Sym {
	case sdl.K_TAB:
		p.chat.toggle()
	case sdl.K_ESCAPE:
		p.finish(PagerActionQuit, config.Config{})
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		p.activatePrimary()
	case sdl.K_SPACE:
		step := float64(constants.KeyScrollPixels)
		if sym.Mod&sdl.KMOD_SHIFT != 0 {
			step = -step
		}
		if !p.nav.State().Locked {
			p.active().scroll.By(step)
		}
	}
}

func (p *pager) button(b sdl.GameControllerButton) {
	if k := controllerKey(b); k != deck.KeyUnknown {
		p.nav.HandleKey(k)
		return
	}

	switch b {
	case sdl.CONTROLLER_BUTTON_Y:
		p.chat.toggle()
	case sdl.CONTROLLER_BUTTON_A:
		if p.chat.open {
			p.chat.submit(p.ctx)
		} else {
			p.activatePrimary()
		}
	case sdl.CONTROLLER_BUTTON_B:
		p.chat.setOpen(false)
	}
}

// touchInput handles one contact update. x is negative when the source only reports Y, which
// rules the contact out as a tap.
func (p *pager) touchInput(id int64, x, y float64, phase touchscreen.Phase) {
	pt := deck.Pointer{ID: id, Y: y}

	switch phase {
	case touchscreen.PhaseDown:
		inChat := x >= 0 && p.chat.open && internal.PointInRect(int32(x), int32(y), p.chat.panel)
		p.taps[id] = tap{x: x, y: y, lastY: y, inChat: inChat}
		if inChat {
			p.nav.TouchHold(pt)
		} else {
			p.nav.TouchStart(pt)
		}

	case touchscreen.PhaseMove:
		t, ok := p.taps[id]
		if ok && t.inChat {
			p.chat.scroll.By(t.lastY - y)
			t.lastY = y
			p.taps[id] = t
			return
		}
		if mv := p.nav.TouchMove(pt); mv.ScrollBy != 0 {
			s := p.active().scroll
			s.Jump(s.Target + mv.ScrollBy)
		}

	case touchscreen.PhaseUp:
		t, ok := p.taps[id]
		delete(p.taps, id)

		navigated := p.nav.TouchEnd(pt)
		noise := p.nav.Config().TouchNoiseThreshold
		if !navigated && ok && x >= 0 && math.Abs(x-t.x) <= noise && math.Abs(y-t.y) <= noise {
			p.click(int32(x), int32(y))
		}
	}
}

// click dispatches a pointer press to the first hotspot under it: chat first, then the chrome
// drawn over the sections, then the active section.
func (p *pager) click(x, y int32) {
	if p.chat.click(x, y) {
		return
	}
	for _, spots := range [][]hotspot{p.chromeSpots, p.sectionSpots} {
		for _, s := range spots {
			if internal.PointInRect(x, y, s.rect) {
				p.logger.Debug("hotspot activated", "label", s.label)
				s.action()
				return
			}
		}
	}
}

func (p *pager) stepScroll() {
	if d := axisScroll(p.axis); d != 0 && !p.nav.State().Locked {
		p.active().scroll.By(d)
	}
	for _, pg := range p.pages {
		pg.scroll.Step()
	}
}
