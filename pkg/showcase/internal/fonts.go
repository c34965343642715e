package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the faces used by the screens, sized for the current window height.
type FontSet struct {
	Display *ttf.Font // Hero headline
	Title   *ttf.Font // Section titles
	Heading *ttf.Font // Card titles, prices
	Body    *ttf.Font
	Small   *ttf.Font // Labels, hints, status line
}

var Fonts FontSet

var regularCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

var boldCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

var errNoFont = errors.New("no usable font found")

func firstExisting(preferred string, candidates []string) string {
	if preferred != "" {
		if _, err := os.Stat(preferred); err == nil {
			return preferred
		}
		GetInternalLogger().Warn("Theme font missing, searching system fonts", "path", preferred)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// FontScale maps a window height to a multiplier against an 800px design height.
func FontScale(height int32) float64 {
	s := float64(height) / 800
	if s < 0.6 {
		return 0.6
	}
	return s
}

func initFonts(theme Theme, height int32) error {
	regular := firstExisting(theme.FontPath, regularCandidates)
	if regular == "" {
		return fmt.Errorf("load fonts: %w", errNoFont)
	}
	bold := firstExisting(theme.BoldFontPath, boldCandidates)
	if bold == "" {
		bold = regular
	}

	scale := FontScale(height)
	size := func(px float64) int {
		return int(px * scale)
	}

	var err error
	open := func(path string, px float64) *ttf.Font {
		if err != nil {
			return nil
		}
		var f *ttf.Font
		f, err = ttf.OpenFont(path, size(px))
		return f
	}

	Fonts = FontSet{
		Display: open(bold, 52),
		Title:   open(bold, 36),
		Heading: open(bold, 24),
		Body:    open(regular, 18),
		Small:   open(regular, 14),
	}
	if err != nil {
		closeFonts()
		return fmt.Errorf("load fonts: %w", err)
	}
	GetInternalLogger().Debug("Fonts loaded", "regular", regular, "bold", bold, "scale", scale)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.Display, Fonts.Title, Fonts.Heading, Fonts.Body, Fonts.Small} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = FontSet{}
}
