package showcase

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/zyxo/showcase/pkg/showcase/chat"
	"github.com/zyxo/showcase/pkg/showcase/constants"
	"github.com/zyxo/showcase/pkg/showcase/i18n"
	"github.com/zyxo/showcase/pkg/showcase/internal"
	"github.com/zyxo/showcase/pkg/showcase/motion"
)

const maxChatInput = 500

// chatOverlay is the assistant panel. Requests run on their own goroutine and post replies to
// a channel that the pager drains once per frame, so the transcript is only touched on the
// event loop.
type chatOverlay struct {
	client *chat.Client
	loc    *i18n.Localizer
	brand  string
	logger *slog.Logger

	disabled bool
	open     bool
	input    string
	turns    []chat.Turn
	pending  *atomic.Bool
	replies  chan string

	scroll      motion.Scroll
	stickBottom bool
	bubble      sdl.Rect
	panel       sdl.Rect
}

func newChatOverlay(client *chat.Client, loc *i18n.Localizer, brand string, logger *slog.Logger) *chatOverlay {
	return &chatOverlay{
		client:  client,
		loc:     loc,
		brand:   brand,
		logger:  logger,
		turns:   []chat.Turn{{Role: chat.RoleModel, Text: loc.T("ChatWelcome", i18n.Data{"Brand": brand})}},
		pending: atomic.NewBool(false),
		replies: make(chan string, 4),
	}
}

func (o *chatOverlay) setOpen(open bool) {
	if o.disabled || o.open == open {
		return
	}
	o.open = open
	if open {
		sdl.StartTextInput()
		o.stickBottom = true
	} else {
		sdl.StopTextInput()
	}
	o.logger.Debug("chat overlay toggled", "open", open)
}

func (o *chatOverlay) toggle() {
	o.setOpen(!o.open)
}

func (o *chatOverlay) typed(s string) {
	if utf8.RuneCountInString(o.input)+utf8.RuneCountInString(s) > maxChatInput {
		return
	}
	o.input += s
}

func (o *chatOverlay) backspace() {
	if o.input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(o.input)
	o.input = o.input[:len(o.input)-size]
}

// submit sends the current input. It is a no-op while a reply is outstanding.
func (o *chatOverlay) submit(ctx context.Context) bool {
	text := strings.TrimSpace(o.input)
	if text == "" || o.pending.Load() {
		return false
	}

	history := slices.Clone(o.turns)
	o.turns = append(o.turns, chat.Turn{Role: chat.RoleUser, Text: text})
	o.input = ""
	o.stickBottom = true
	o.pending.Store(true)

	go func() {
		defer o.pending.Store(false)

		var reply string
		if o.client == nil {
			reply = o.loc.T(chat.FailureMissingKey.MessageID(), nil)
		} else {
			reply = o.client.Send(ctx, text, history)
		}

		select {
		case o.replies <- reply:
		default:
			o.logger.Warn("chat reply dropped")
		}
	}()
	return true
}

// drain moves finished replies into the transcript.
func (o *chatOverlay) drain() {
	for {
		select {
		case reply := <-o.replies:
			o.turns = append(o.turns, chat.Turn{Role: chat.RoleModel, Text: reply})
			o.stickBottom = true
		default:
			return
		}
	}
}

// handleKey receives the keys the deck did not claim while the panel is open.
func (o *chatOverlay) handleKey(ctx context.Context, key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE, sdl.K_TAB:
		o.setOpen(false)
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		o.submit(ctx)
	case sdl.K_BACKSPACE:
		o.backspace()
	}
}

// wheel scrolls the transcript when the pointer is over the open panel.
func (o *chatOverlay) wheel(x, y int32, dy float64) bool {
	if !o.open || !internal.PointInRect(x, y, o.panel) {
		return false
	}
	o.scroll.By(dy)
	o.stickBottom = false
	return true
}

// click reports whether the point belongs to the overlay.
func (o *chatOverlay) click(x, y int32) bool {
	if o.disabled {
		return false
	}
	if internal.PointInRect(x, y, o.bubble) {
		o.toggle()
		return true
	}
	return o.open && internal.PointInRect(x, y, o.panel)
}

func (o *chatOverlay) render(r *sdl.Renderer, text *internal.TextRenderer, theme internal.Theme, width, height int32, now time.Time) {
	if o.disabled {
		return
	}
	const bubbleSize int32 = 60
	o.bubble = sdl.Rect{X: width - bubbleSize - 28, Y: height - bubbleSize - 28, W: bubbleSize, H: bubbleSize}
	cx, cy := o.bubble.X+bubbleSize/2, o.bubble.Y+bubbleSize/2
	internal.FillCircle(r, cx, cy, bubbleSize/2, theme.SecondaryColor)
	glyph := "?"
	if o.open {
		glyph = "×"
	}
	text.Draw(internal.Fonts.Title, glyph, cx, cy-int32(internal.Fonts.Title.Height())/2, theme.OnAccentColor, constants.TextAlignCenter)

	if !o.open {
		hint := o.loc.T("ChatHint", nil)
		text.Draw(internal.Fonts.Small, hint, o.bubble.X-12, cy-int32(internal.Fonts.Small.Height())/2, theme.MutedTextColor, constants.TextAlignRight)
		return
	}

	pw := internal.Min32(420, width-56)
	ph := internal.Min32(560, height-bubbleSize-84)
	o.panel = sdl.Rect{X: width - pw - 28, Y: o.bubble.Y - ph - 16, W: pw, H: ph}
	internal.FillRoundedRect(r, o.panel, 18, theme.SurfaceColor)
	internal.StrokeRoundedRect(r, o.panel, 18, theme.BorderColor)

	const pad int32 = 18
	f := internal.Fonts
	title := o.loc.T("ChatTitle", i18n.Data{"Brand": o.brand})
	_, th := text.Draw(f.Heading, title, o.panel.X+pad, o.panel.Y+pad, theme.TextColor, constants.TextAlignLeft)
	internal.FillCircle(r, o.panel.X+pw-pad-5, o.panel.Y+pad+th/2, 5, theme.AccentColor)

	inputH := internal.LineHeight(f.Body) + 2*pad
	list := sdl.Rect{X: o.panel.X, Y: o.panel.Y + th + 2*pad, W: pw, H: ph - th - 2*pad - inputH - 24}
	o.renderTranscript(r, text, theme, list, pad, now)

	box := sdl.Rect{X: o.panel.X + pad/2, Y: o.panel.Y + ph - inputH - 20, W: pw - pad, H: inputH}
	internal.FillRoundedRect(r, box, 12, theme.BackgroundColor)
	internal.StrokeRoundedRect(r, box, 12, theme.BorderColor)

	line := o.input
	color := theme.TextColor
	if line == "" {
		line = o.loc.T("ChatPlaceholder", nil)
		color = theme.MutedTextColor
	}
	// Show the tail of long input.
	maxW := box.W - 2*pad - 8
	for internal.Measure(f.Body, line) > maxW && line != "" {
		_, size := utf8.DecodeRuneInString(line)
		line = line[size:]
	}
	w, _ := text.Draw(f.Body, line, box.X+pad, box.Y+pad, color, constants.TextAlignLeft)
	if o.input == "" {
		w = 0
	}
	if now.UnixMilli()/500%2 == 0 {
		internal.FillRect(r, sdl.Rect{X: box.X + pad + w + 2, Y: box.Y + pad, W: 2, H: int32(f.Body.Height())}, theme.AccentColor)
	}

	text.Draw(f.Small, o.loc.T("ChatSendHint", nil), o.panel.X+pw/2, o.panel.Y+ph-18, theme.MutedTextColor, constants.TextAlignCenter)
}

func (o *chatOverlay) renderTranscript(r *sdl.Renderer, text *internal.TextRenderer, theme internal.Theme, list sdl.Rect, pad int32, now time.Time) {
	f := internal.Fonts
	bubbleW := list.W * 3 / 4
	textW := bubbleW - 2*pad

	heights := make([]int32, len(o.turns))
	var total int32
	for i, t := range o.turns {
		heights[i] = internal.TextBlockHeight(f.Body, t.Text, textW) + 2*12
		total += heights[i] + 12
	}
	if o.pending.Load() {
		total += internal.LineHeight(f.Body) + 24
	}
	o.scroll.Resize(float64(list.H), float64(total))
	if o.stickBottom {
		o.scroll.Jump(o.scroll.Max())
		o.stickBottom = false
	}
	o.scroll.Step()

	_ = r.SetClipRect(&list)
	defer r.SetClipRect(nil)

	y := list.Y - int32(o.scroll.Offset)
	for i, t := range o.turns {
		h := heights[i]
		if y+h >= list.Y && y <= list.Y+list.H {
			bw := internal.Min32(bubbleW, internal.Measure(f.Body, t.Text)+2*pad)
			x := list.X + pad
			bg, fg := theme.BackgroundColor, theme.TextColor
			if t.Role == chat.RoleUser {
				x = list.X + list.W - pad - bw
				bg, fg = theme.AccentColor, theme.OnAccentColor
			}
			internal.FillRoundedRect(r, sdl.Rect{X: x, Y: y, W: bw, H: h}, 14, bg)
			text.DrawWrapped(f.Body, t.Text, x+pad, y+12, bw-2*pad, fg, constants.TextAlignLeft)
		}
		y += h + 12
	}

	if o.pending.Load() {
		dots := strings.Repeat(".", int(now.UnixMilli()/300%3)+1)
		label := strings.TrimRight(o.loc.T("ChatThinking", nil), ".") + dots
		text.Draw(f.Body, label, list.X+pad, y+12, theme.MutedTextColor, constants.TextAlignLeft)
	}
}
