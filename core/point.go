package core

// Point represents a 2D coordinate or displacement in stage pixels
type Point struct {
	X, Y float64
}

// Add returns p+q
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p multiplied by f
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }
