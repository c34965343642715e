package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colours and fonts of the showcase.
type Theme struct {
	BackgroundColor sdl.Color // Page background
	SurfaceColor    sdl.Color // Cards and panels
	BorderColor     sdl.Color // Card outlines, dividers, scrollbar track
	TextColor       sdl.Color // Body copy
	MutedTextColor  sdl.Color // Secondary copy, hints
	AccentColor     sdl.Color // Primary brand colour: CTAs, active indicator, checkmarks
	SecondaryColor  sdl.Color // Highlights on headings and the chat bubble
	TertiaryColor   sdl.Color // Decorative glow
	OnAccentColor   sdl.Color // Text drawn on top of AccentColor
	FontPath        string    // Regular weight font; empty searches the system
	BoldFontPath    string    // Bold weight font; empty reuses FontPath
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// WithAlpha returns c with its alpha scaled by a in [0, 1].
func WithAlpha(c sdl.Color, a float64) sdl.Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}
