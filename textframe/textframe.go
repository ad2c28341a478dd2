package textframe

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/kinetic-text/core"
)

const (
	// VisibilityThreshold is the alpha a cell must exceed to emit a dot
	VisibilityThreshold = 128

	// Auto-fit bounds as fractions of the stage
	fitWidth  = 0.9
	fitHeight = 0.7

	minFontSize = 4.0
	dpi         = 72
)

// Config controls rasterization
type Config struct {
	// PixelSize is the grid pitch in stage pixels, normally 2x dot radius
	PixelSize int
	// FontSize in pixels; 0 fits the text to the stage
	FontSize float64
	// FontData is a TTF/OTF blob; nil selects Go Regular
	FontData []byte
}

// Frame is the rasterization result
type Frame struct {
	// Dots are grid-cell centers in row-major order
	Dots []core.Point
	// Field bounds every occupied cell, padded by one cell and clipped to the stage
	Field core.Rect
	// FontSize is the size actually used
	FontSize float64
}

// TextFrame renders text into dot grids; not safe for concurrent use
type TextFrame struct {
	font      *opentype.Font
	pixelSize int
	fontSize  float64
	// face is cached for the size last drawn; sizes tried by fitSize are closed after measuring
	face     font.Face
	faceSize float64
}

// New parses the font and prepares a rasterizer
func New(cfg Config) (*TextFrame, error) {
	data := cfg.FontData
	if data == nil {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &TextFrame{
		font:      f,
		pixelSize: max(cfg.PixelSize, 1),
		fontSize:  cfg.FontSize,
	}, nil
}

// PixelSize returns the grid pitch
func (tf *TextFrame) PixelSize() int {
	return tf.pixelSize
}

func (tf *TextFrame) newFace(size float64) (font.Face, error) {
	f, err := opentype.NewFace(tf.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %.1f: %w", size, err)
	}
	return f, nil
}

// drawFace returns the face for size, replacing the cached one on a size change
func (tf *TextFrame) drawFace(size float64) (font.Face, error) {
	if tf.face != nil && tf.faceSize == size {
		return tf.face, nil
	}
	f, err := tf.newFace(size)
	if err != nil {
		return nil, err
	}
	tf.Close()
	tf.face, tf.faceSize = f, size
	return f, nil
}

// fits reports whether lines at size fit within maxW x maxH
func (tf *TextFrame) fits(lines []string, size float64, maxW, maxH fixed.Int26_6) (bool, error) {
	face := tf.face
	if face == nil || tf.faceSize != size {
		f, err := tf.newFace(size)
		if err != nil {
			return false, err
		}
		defer f.Close()
		face = f
	}
	w, h := blockSize(face, lines)
	return w <= maxW && h <= maxH, nil
}

// Close releases the cached face
func (tf *TextFrame) Close() error {
	if tf.face != nil {
		tf.face.Close()
		tf.face, tf.faceSize = nil, 0
	}
	return nil
}

// DrawTextFrame renders text centered on a stageWidth x stageHeight raster and samples it
// Empty text or an empty stage yields no dots and a zero Field
func (tf *TextFrame) DrawTextFrame(text string, stageWidth, stageHeight int) Frame {
	lines := splitLines(text)
	if len(lines) == 0 || stageWidth <= 0 || stageHeight <= 0 {
		return Frame{}
	}

	size := tf.fontSize
	if size <= 0 {
		size = tf.fitSize(lines, stageWidth, stageHeight)
	}
	face, err := tf.drawFace(size)
	if err != nil {
		// Only reachable for sizes opentype rejects; degrade to empty
		return Frame{}
	}

	mask := image.NewAlpha(image.Rect(0, 0, stageWidth, stageHeight))
	drawLines(mask, face, lines, stageWidth, stageHeight)

	dots, field := tf.sample(mask)
	return Frame{Dots: dots, Field: field, FontSize: size}
}

// splitLines drops trailing empty lines; all-blank text yields nil
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// blockSize returns the widest line advance and total line-stack height
func blockSize(face font.Face, lines []string) (width, height fixed.Int26_6) {
	m := face.Metrics()
	for _, l := range lines {
		if w := font.MeasureString(face, l); w > width {
			width = w
		}
	}
	height = m.Ascent + m.Descent + m.Height.Mul(fixed.I(len(lines)-1))
	return width, height
}

// fitSize binary-searches the largest whole size fitting the stage fractions
func (tf *TextFrame) fitSize(lines []string, stageWidth, stageHeight int) float64 {
	maxW := fixed.I(int(float64(stageWidth) * fitWidth))
	maxH := fixed.I(int(float64(stageHeight) * fitHeight))

	lo, hi := int(minFontSize), max(stageHeight, int(minFontSize))
	best := lo
	for lo <= hi {
		mid := (lo + hi) / 2
		ok, err := tf.fits(lines, float64(mid), maxW, maxH)
		if err != nil {
			hi = mid - 1
			continue
		}
		if ok {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return float64(best)
}

// drawLines centers the line stack horizontally and vertically
func drawLines(dst *image.Alpha, face font.Face, lines []string, stageWidth, stageHeight int) {
	m := face.Metrics()
	_, blockH := blockSize(face, lines)

	top := (fixed.I(stageHeight) - blockH) / 2
	d := &font.Drawer{Dst: dst, Src: image.Opaque, Face: face}
	for i, l := range lines {
		w := font.MeasureString(face, l)
		baseline := top + m.Ascent + m.Height.Mul(fixed.I(i))
		d.Dot = fixed.Point26_6{X: (fixed.I(stageWidth) - w) / 2, Y: baseline}
		d.DrawString(l)
	}
}

// sample scans grid cells, emitting centers whose peak alpha crosses the threshold
// Peak coverage rather than a single center sample keeps thin strokes at coarse pitches
func (tf *TextFrame) sample(mask *image.Alpha) ([]core.Point, core.Rect) {
	b := mask.Bounds()
	ps := tf.pixelSize

	var dots []core.Point
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := -1, -1

	for y := 0; y < b.Max.Y; y += ps {
		y1 := min(y+ps, b.Max.Y)
		for x := 0; x < b.Max.X; x += ps {
			x1 := min(x+ps, b.Max.X)
			if !cellVisible(mask, x, y, x1, y1) {
				continue
			}
			// Partial edge cells center on their visible part
			dots = append(dots, core.Point{X: float64(x+x1) / 2, Y: float64(y+y1) / 2})
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if len(dots) == 0 {
		return nil, core.Rect{}
	}

	// Pad one cell each side, clip to stage
	x0 := max(minX-ps, 0)
	y0 := max(minY-ps, 0)
	x1 := min(maxX+2*ps, b.Max.X)
	y1 := min(maxY+2*ps, b.Max.Y)
	return dots, core.Rect{
		X:      float64(x0),
		Y:      float64(y0),
		Width:  float64(x1 - x0),
		Height: float64(y1 - y0),
	}
}

func cellVisible(mask *image.Alpha, x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := x0; x < x1; x++ {
			if row[x] > VisibilityThreshold {
				return true
			}
		}
	}
	return false
}
