package render

import (
	"fmt"
	"image/png"
	"io"
)

// WritePNG encodes the canvas as PNG
func WritePNG(w io.Writer, c *Canvas) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
