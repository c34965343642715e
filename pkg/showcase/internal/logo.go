package internal

import (
	"bytes"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders an SVG document so its longer side is size pixels.
func RasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := size, size
	if vw, vh := icon.ViewBox.W, icon.ViewBox.H; vw > 0 && vh > 0 {
		if vw > vh {
			h = int(float64(size) * vh / vw)
		} else {
			w = int(float64(size) * vw / vh)
		}
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("svg raster size %dx%d", w, h)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// TextureFromRGBA uploads an image to the GPU.
func TextureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_RGBA32),
	)
	if err != nil {
		return nil, fmt.Errorf("wrap pixels: %w", err)
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("upload texture: %w", err)
	}
	_ = tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}

// LogoTexture rasterises an SVG logo into a texture.
func LogoTexture(renderer *sdl.Renderer, svg []byte, size int) (*sdl.Texture, error) {
	img, err := RasterizeSVG(svg, size)
	if err != nil {
		return nil, err
	}
	return TextureFromRGBA(renderer, img)
}
