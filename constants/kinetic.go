package constants

import "time"

// Dot Geometry
const (
	// DefaultDotRadius is the dot radius in canvas pixels; grid pitch is twice this
	DefaultDotRadius = 1

	// DotFill scales the drawn circle against the radius so neighbours keep a gap
	DotFill = 0.6
)

// Ripple
const (
	// DefaultRippleSpeed is ripple front growth in canvas pixels per frame
	DefaultRippleSpeed = 2.0
)

// Pluck Effect
const (
	// PluckSteps is how many ripple-gated steps the pluck bump lasts
	PluckSteps = 24

	// PluckAmplitude is peak bump displacement as a multiple of dot radius
	PluckAmplitude = 1.5

	// PluckFrequency is bump oscillation in radians per step
	PluckFrequency = 0.9

	// PluckFade is how far the color travels toward background at the end of the bump
	PluckFade = 0.75
)

// Kinetic Return
const (
	// Spring is the fraction of rest displacement closed per step
	Spring = 0.1

	// Damping scales velocity after each step
	Damping = 0.6

	// PointerTouchRadius is added to the pointer influence radius for the repulsion range
	PointerTouchRadius = 2.0

	// DefaultPointerRadius is the pointer influence radius in canvas pixels
	DefaultPointerRadius = 10.0

	// TouchGlow is how long a repelled dot keeps the accent tint
	TouchGlow = 400 * time.Millisecond
)
