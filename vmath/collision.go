package vmath

// Collide reports whether (ax, ay) lies within radius of (bx, by), boundary inclusive
// A point always collides with a circle centered on itself for radius >= 0
func Collide(ax, ay, bx, by, radius float64) bool {
	if radius < 0 {
		return false
	}
	return DistanceSq(ax, ay, bx, by) <= radius*radius
}
