// Package zyxo provides the ZYXO brand theme: a near-black canvas with acid green, cyan and
// purple accents, and the vortex logo.
package zyxo

import (
	"github.com/zyxo/showcase/pkg/showcase/internal"
)

// Brand colours.
const (
	Black  uint32 = 0x050505
	Green  uint32 = 0xCCFF00
	Cyan   uint32 = 0x00F0FF
	Purple uint32 = 0x8B5CF6
)

// InitTheme returns the brand theme. Empty font paths fall back to system fonts.
func InitTheme(fontPath, boldFontPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor: internal.HexToColor(Black),
		SurfaceColor:    internal.HexToColor(0x0F0F0F),
		BorderColor:     internal.HexToColor(0x262626),
		TextColor:       internal.HexToColor(0xFFFFFF),
		MutedTextColor:  internal.HexToColor(0x9CA3AF),
		AccentColor:     internal.HexToColor(Green),
		SecondaryColor:  internal.HexToColor(Cyan),
		TertiaryColor:   internal.HexToColor(Purple),
		OnAccentColor:   internal.HexToColor(0x000000),
		FontPath:        fontPath,
		BoldFontPath:    boldFontPath,
	}
}
