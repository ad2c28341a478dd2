package physics

import (
	"math"

	"github.com/lixenwraith/kinetic-text/core"
)

// SpringProfile holds the per-step return-to-rest factors
type SpringProfile struct {
	// Spring is the fraction of rest displacement closed each step, in (0, 1]
	Spring float64
	// Damping scales velocity after each step, in [0, 1)
	Damping float64
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, vx, vy float64) {
	k.VelX += vx
	k.VelY += vy
}

// Reset places the particle at p with zero velocity
func Reset(k *core.Kinetic, p core.Point) {
	k.X, k.Y = p.X, p.Y
	k.VelX, k.VelY = 0, 0
}

// SpringStep integrates one step toward rest:
// p += (rest - p) * spring; p += v; v *= damping
// The position pull and the velocity decay are decoupled, so with both factors
// in (0, 1) a single impulse never overshoots the rest point
func SpringStep(k *core.Kinetic, rest core.Point, profile SpringProfile) {
	k.X += (rest.X - k.X) * profile.Spring
	k.Y += (rest.Y - k.Y) * profile.Spring

	k.X += k.VelX
	k.Y += k.VelY

	k.VelX *= profile.Damping
	k.VelY *= profile.Damping
}

// Displacement returns the distance between the particle and rest
func Displacement(k *core.Kinetic, rest core.Point) float64 {
	d := k.Pos().Sub(rest)
	return math.Hypot(d.X, d.Y)
}

// Repulsion returns the push vector for a particle at pos within minDist of source
// Polar projection: the particle is pushed out along the source->particle axis until it
// sits at minDist; the returned vector is (target - source) with target projected from pos
// toward source. Callers subtract it from velocity. ok is false when out of range
func Repulsion(source, pos core.Point, minDist float64) (ax, ay float64, ok bool) {
	d := source.Sub(pos)
	if math.Hypot(d.X, d.Y) >= minDist {
		return 0, 0, false
	}

	angle := math.Atan2(d.Y, d.X)
	target := pos.Add(core.Point{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(minDist))
	push := target.Sub(source)
	return push.X, push.Y, true
}
