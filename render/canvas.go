package render

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a pixel surface backed by a flat RGB array, row-major
// One terminal cell maps to two vertically stacked pixels, see HalfBlocks
type Canvas struct {
	pix    []RGB
	width  int
	height int
	bg     RGB
}

// NewCanvas creates a canvas with the specified pixel dimensions, cleared to bg
func NewCanvas(width, height int, bg RGB) *Canvas {
	c := &Canvas{bg: bg}
	c.Resize(width, height)
	return c
}

// Resize adjusts canvas dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]RGB, size)
	} else {
		c.pix = c.pix[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Size returns pixel dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Background returns the clear color
func (c *Canvas) Background() RGB {
	return c.bg
}

// Clear resets all pixels to background using exponential copy
func (c *Canvas) Clear() {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = c.bg
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
}

// inBounds returns true if in canvas bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel at (x, y), background when out of bounds
func (c *Canvas) At(x, y int) RGB {
	if !c.inBounds(x, y) {
		return c.bg
	}
	return c.pix[y*c.width+x]
}

// Set writes a single pixel, out of bounds writes are dropped
func (c *Canvas) Set(x, y int, col RGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.pix[y*c.width+x] = col
}

// FillCircle paints the pixel containing the center plus every pixel whose center
// lies strictly inside the circle, so sub-pixel radii still leave a mark
func (c *Canvas) FillCircle(cx, cy, r float64, col RGB) {
	if r <= 0 {
		return
	}
	c.Set(int(math.Floor(cx)), int(math.Floor(cy)), col)
	if r < 0.5 {
		return
	}

	minX := max(int(math.Floor(cx-r)), 0)
	maxX := min(int(math.Ceil(cx+r)), c.width-1)
	minY := max(int(math.Floor(cy-r)), 0)
	maxY := min(int(math.Ceil(cy+r)), c.height-1)
	r2 := r * r

	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - cy
		row := y * c.width
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy < r2 {
				c.pix[row+x] = col
			}
		}
	}
}

// Image copies the canvas into an RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pix[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
