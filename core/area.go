package core

// Rect represents an axis-aligned rectangle in stage pixels
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64 // Dimensions (zero for degenerate text fields)
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Corners returns the four corners clockwise from top-left
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}
