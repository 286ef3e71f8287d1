package renderer

import (
	"image"
	"image/color"

	"github.com/glint-render/glint/pkg/core"
)

// Canvas is a grid of unclamped colors, one per pixel. Clamping and
// quantization to 8-bit channels happen only in ToImage.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a canvas of the given dimensions, all pixels black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel stores a color at (x, y); writes outside the canvas are ignored
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each
// channel to [0, 1]
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: quantize(p.R),
				G: quantize(p.G),
				B: quantize(p.B),
				A: 255,
			})
		}
	}
	return img
}

func quantize(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
