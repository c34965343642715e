package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

func setColor(r *sdl.Renderer, c sdl.Color) {
	_ = r.SetDrawColor(c.R, c.G, c.B, c.A)
}

func FillRect(r *sdl.Renderer, rect sdl.Rect, c sdl.Color) {
	setColor(r, c)
	_ = r.FillRect(&rect)
}

func StrokeRect(r *sdl.Renderer, rect sdl.Rect, c sdl.Color) {
	setColor(r, c)
	_ = r.DrawRect(&rect)
}

// FillCircle draws a filled circle with horizontal spans.
func FillCircle(r *sdl.Renderer, cx, cy, radius int32, c sdl.Color) {
	if radius <= 0 {
		return
	}
	setColor(r, c)
	for dy := -radius; dy <= radius; dy++ {
		dx := int32(math.Sqrt(float64(radius*radius - dy*dy)))
		_ = r.DrawLine(cx-dx, cy+dy, cx+dx, cy+dy)
	}
}

// FillRoundedRect fills rect with corners of the given radius.
func FillRoundedRect(r *sdl.Renderer, rect sdl.Rect, radius int32, c sdl.Color) {
	radius = Min32(radius, Min32(rect.W, rect.H)/2)
	if radius <= 0 {
		FillRect(r, rect, c)
		return
	}

	setColor(r, c)
	for dy := int32(0); dy < radius; dy++ {
		// Inset of the corner arc on this row.
		y := float64(radius - dy)
		inset := radius - int32(math.Sqrt(float64(radius*radius)-y*y))
		top := rect.Y + dy
		bottom := rect.Y + rect.H - 1 - dy
		_ = r.DrawLine(rect.X+inset, top, rect.X+rect.W-1-inset, top)
		_ = r.DrawLine(rect.X+inset, bottom, rect.X+rect.W-1-inset, bottom)
	}
	_ = r.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})
}

// StrokeRoundedRect outlines rect with rounded corners.
func StrokeRoundedRect(r *sdl.Renderer, rect sdl.Rect, radius int32, c sdl.Color) {
	radius = Min32(radius, Min32(rect.W, rect.H)/2)
	setColor(r, c)

	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W-1, rect.Y+rect.H-1
	_ = r.DrawLine(x0+radius, y0, x1-radius, y0)
	_ = r.DrawLine(x0+radius, y1, x1-radius, y1)
	_ = r.DrawLine(x0, y0+radius, x0, y1-radius)
	_ = r.DrawLine(x1, y0+radius, x1, y1-radius)

	if radius <= 0 {
		return
	}
	const steps = 8
	corner := func(cx, cy int32, from float64) {
		px, py := cx+int32(float64(radius)*math.Cos(from)), cy+int32(float64(radius)*math.Sin(from))
		for i := 1; i <= steps; i++ {
			a := from + float64(i)*(math.Pi/2)/steps
			nx, ny := cx+int32(math.Round(float64(radius)*math.Cos(a))), cy+int32(math.Round(float64(radius)*math.Sin(a)))
			_ = r.DrawLine(px, py, nx, ny)
			px, py = nx, ny
		}
	}
	corner(x0+radius, y0+radius, math.Pi)
	corner(x1-radius, y0+radius, 3*math.Pi/2)
	corner(x1-radius, y1-radius, 0)
	corner(x0+radius, y1-radius, math.Pi/2)
}

// DrawCheck draws a tick mark inside a size x size box at (x, y).
func DrawCheck(r *sdl.Renderer, x, y, size int32, c sdl.Color) {
	setColor(r, c)
	for o := int32(0); o < 2; o++ {
		_ = r.DrawLine(x+size/6, y+size/2+o, x+size*2/5, y+size*3/4+o)
		_ = r.DrawLine(x+size*2/5, y+size*3/4+o, x+size*5/6, y+size/4+o)
	}
}

// DrawCross draws an x inside a size x size box at (x, y).
func DrawCross(r *sdl.Renderer, x, y, size int32, c sdl.Color) {
	setColor(r, c)
	p := size / 4
	_ = r.DrawLine(x+p, y+p, x+size-p, y+size-p)
	_ = r.DrawLine(x+size-p, y+p, x+p, y+size-p)
}

// PointInRect reports whether (x, y) lies inside r.
func PointInRect(x, y int32, r sdl.Rect) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
