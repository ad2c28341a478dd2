package vmath

import (
	"math"

	"github.com/lixenwraith/kinetic-text/core"
)

// RectCenter returns the center point of the rectangle
func RectCenter(r core.Rect) core.Point {
	return core.Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// RectContains checks if point is within rectangle, edges inclusive
func RectContains(r core.Rect, p core.Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// RectRandomPoint returns a uniformly sampled point within rectangle using provided RNG
// Degenerate axes collapse to the rectangle origin on that axis
func RectRandomPoint(r core.Rect, rng *FastRand) core.Point {
	x := r.X
	y := r.Y
	if r.Width > 0 {
		x += rng.Float64() * r.Width
	}
	if r.Height > 0 {
		y += rng.Float64() * r.Height
	}
	return core.Point{X: x, Y: y}
}

// MaxCornerDistance returns the distance from p to the farthest corner of r
func MaxCornerDistance(p core.Point, r core.Rect) float64 {
	var maxSq float64
	for _, c := range r.Corners() {
		if d := DistanceSq(p.X, p.Y, c.X, c.Y); d > maxSq {
			maxSq = d
		}
	}
	return math.Sqrt(maxSq)
}
