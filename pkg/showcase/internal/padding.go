package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding is spacing on the four sides of a box.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding uses the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// Inset shrinks r by the padding.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: Max32(0, r.W-p.Left-p.Right),
		H: Max32(0, r.H-p.Top-p.Bottom),
	}
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
