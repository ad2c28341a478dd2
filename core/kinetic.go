package core

// Kinetic holds a particle's drawn position and per-step displacement
type Kinetic struct {
	// X and Y are sub-pixel stage coordinates
	X, Y float64
	// VelX and VelY are displacement per animation step
	VelX, VelY float64
}

// Pos returns the current position as a point
func (k Kinetic) Pos() Point { return Point{X: k.X, Y: k.Y} }

// Vel returns the current velocity as a point
func (k Kinetic) Vel() Point { return Point{X: k.VelX, Y: k.VelY} }
