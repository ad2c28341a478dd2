package kinetic

import (
	"math"

	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/vmath"
)

// Ripple is an expanding disc that gates which dots pluck
type Ripple struct {
	origin core.Point
	radius float64
	speed  float64
}

// NewRipple creates a ripple growing speed pixels per step
// Non-positive speeds fall back to the default
func NewRipple(speed float64) *Ripple {
	if speed <= 0 || math.IsNaN(speed) {
		speed = constants.DefaultRippleSpeed
	}
	return &Ripple{speed: speed}
}

// Init restarts the ripple at (x, y) and returns the number of steps needed to
// reach the farthest corner of field
func (r *Ripple) Init(x, y float64, field core.Rect) int {
	r.origin = core.Point{X: x, Y: y}
	r.radius = 0
	return int(math.Ceil(vmath.MaxCornerDistance(r.origin, field) / r.speed))
}

// Animate grows the radius by one step
func (r *Ripple) Animate() {
	r.radius += r.speed
}

// Contains reports whether p lies inside the disc, boundary inclusive
func (r *Ripple) Contains(p core.Point) bool {
	return vmath.Collide(p.X, p.Y, r.origin.X, r.origin.Y, r.radius)
}

func (r *Ripple) Origin() core.Point { return r.origin }
func (r *Ripple) Radius() float64    { return r.radius }
func (r *Ripple) Speed() float64     { return r.speed }
