package zyxo

import (
	"fmt"
	"math"
	"strings"
)

type point struct{ x, y float64 }

func rotate(p point, deg float64) point {
	const cx, cy = 50, 50
	rad := deg * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	dx, dy := p.x-cx, p.y-cy
	return point{cx + dx*c - dy*s, cy + dx*s + dy*c}
}

func cubic(b *strings.Builder, deg float64, stroke string, width float64, pts ...point) {
	r := make([]point, len(pts))
	for i, p := range pts {
		r[i] = rotate(p, deg)
	}
	fmt.Fprintf(b, `<path d="M%.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f" stroke="%s" stroke-width="%.1f" stroke-linecap="round" fill="none"/>`,
		r[0].x, r[0].y, r[1].x, r[1].y, r[2].x, r[2].y, r[3].x, r[3].y, stroke, width)
}

func quad(b *strings.Builder, deg float64, stroke string, width float64, pts ...point) {
	r := make([]point, len(pts))
	for i, p := range pts {
		r[i] = rotate(p, deg)
	}
	fmt.Fprintf(b, `<path d="M%.2f %.2f Q %.2f %.2f %.2f %.2f" stroke="%s" stroke-width="%.1f" stroke-linecap="round" fill="none"/>`,
		r[0].x, r[0].y, r[1].x, r[1].y, r[2].x, r[2].y, stroke, width)
}

func dot(b *strings.Builder, deg float64, fill string, radius float64, p point) {
	c := rotate(p, deg)
	fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`, c.x, c.y, radius, fill)
}

// LogoSVG draws the vortex mark: twelve swept arms with dots, and an eight-arc inner eye.
// Rotations are baked into the coordinates so the document only uses plain paths.
func LogoSVG() []byte {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">`)

	for i := 0; i < 12; i++ {
		deg := float64(i * 30)
		cubic(&b, deg, "#00f0ff", 2.5, point{50, 10}, point{60, 10}, point{75, 30}, point{65, 55})
		dot(&b, deg, "#00f0ff", 1.5, point{50, 6})
		cubic(&b, deg, "#8b5cf6", 1, point{50, 25}, point{55, 25}, point{60, 40}, point{52, 50})
		dot(&b, deg, "#ccff00", 1, point{52, 50})
	}
	for i := 0; i < 8; i++ {
		deg := float64(i*45 + 15)
		quad(&b, deg, "#00f0ff", 1.5, point{50, 35}, point{56, 40}, point{55, 50})
	}

	b.WriteString(`</svg>`)
	return []byte(b.String())
}
