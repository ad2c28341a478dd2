package kinetic

import (
	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/textframe"
)

// Surface is the drawing target; render.Canvas implements it
type Surface interface {
	// Size returns stage dimensions in pixels
	Size() (width, height int)
	// Clear fills the surface with its background
	Clear()
	// FillCircle paints a filled circle
	FillCircle(x, y, r float64, c core.RGB)
}

// Rasterizer turns text into rest positions; textframe.TextFrame implements it
type Rasterizer interface {
	DrawTextFrame(text string, stageWidth, stageHeight int) textframe.Frame
}

// Viewport classifies the current display; queried on every resize and click
type Viewport interface {
	IsSmall() bool
}

// ViewportFunc adapts a function to Viewport
type ViewportFunc func() bool

func (f ViewportFunc) IsSmall() bool { return f() }
