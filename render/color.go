package render

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/kinetic-text/core"
)

// RGB is an alias to core.RGB, allowing render package to extend functionality
type RGB = core.RGB

// ErrInvalidColorFormat is returned when a color string matches no supported form
var ErrInvalidColorFormat = errors.New("invalid color format")

// rgb(r, g, b) or rgba(r, g, b, a); alpha is accepted and discarded
var rgbPattern = regexp.MustCompile(`^(rgba?)\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(\d*\.?\d+%?)\s*)?\)$`)

// ParseColor parses "rgb(r, g, b)", "rgba(r, g, b, a)", "#rgb" or "#rrggbb" into channels
func ParseColor(s string) (RGB, error) {
	str := strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(str, "#") {
		c, err := colorful.Hex(str)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		r, g, b := c.RGB255()
		return RGB{R: r, G: g, B: b}, nil
	}

	m := rgbPattern.FindStringSubmatch(str)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	// rgb takes exactly three channels, rgba exactly four
	if (m[1] == "rgba") != (m[5] != "") {
		return RGB{}, fmt.Errorf("%w: %q channel count", ErrInvalidColorFormat, s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(m[i+2])
		if err != nil || v > 255 {
			return RGB{}, fmt.Errorf("%w: %q channel %d out of range", ErrInvalidColorFormat, s, i)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseColor is ParseColor for package-level defaults; panics on error
func MustParseColor(s string) RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatColor renders c in the rgb(...) form accepted by ParseColor
func FormatColor(c RGB) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Lerp interpolates from a to b in RGB space, t clamped to [0, 1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}
