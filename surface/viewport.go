package surface

import "github.com/lixenwraith/kinetic-text/constants"

// SizeMode buckets the display width
type SizeMode uint8

const (
	SizeSmall SizeMode = iota
	SizeRegular
	SizeMedium
	SizeLarge
)

func (m SizeMode) String() string {
	switch m {
	case SizeSmall:
		return "Small"
	case SizeRegular:
		return "Regular"
	case SizeMedium:
		return "Medium"
	default:
		return "Large"
	}
}

// ClassifySize maps a nominal pixel width to its size mode
func ClassifySize(width int) SizeMode {
	switch {
	case width <= constants.SmallModeMaxWidth:
		return SizeSmall
	case width <= constants.RegularModeMaxWidth:
		return SizeRegular
	case width <= constants.MediumModeMaxWidth:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Viewport describes the host display at query time
type Viewport struct {
	Cols, Rows int
	Mode       SizeMode
}

// ViewportFor classifies a terminal of cols x rows
func ViewportFor(cols, rows int) Viewport {
	return Viewport{
		Cols: cols,
		Rows: rows,
		Mode: ClassifySize(cols * constants.PixelsPerColumn),
	}
}

// IsSmall reports whether clicks over the text should be ignored
func (v Viewport) IsSmall() bool {
	return v.Mode == SizeSmall
}
