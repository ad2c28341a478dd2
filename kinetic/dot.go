package kinetic

import (
	"math"
	"time"

	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/physics"
	"github.com/lixenwraith/kinetic-text/render"
)

// DotState is the per-particle animation state
type DotState uint8

const (
	DotResting DotState = iota
	DotPlucked
	DotReturning
)

func (s DotState) String() string {
	switch s {
	case DotResting:
		return "Resting"
	case DotPlucked:
		return "Plucked"
	case DotReturning:
		return "Returning"
	default:
		return "Unknown"
	}
}

// DotStyle is shared by every dot of one rasterization
type DotStyle struct {
	Radius     float64
	Primary    core.RGB
	Background core.RGB
	Accent     core.RGB
	Spring     physics.SpringProfile
}

// drawRadius is the painted radius, smaller than the pitch half so dots keep a gap
func (s *DotStyle) drawRadius() float64 {
	return s.Radius * constants.DotFill
}

// Dot is one particle anchored to a rasterized grid cell
type Dot struct {
	rest  core.Point // immutable after NewDot
	kin   core.Kinetic
	state DotState
	style *DotStyle

	pluckAge int
	drawn    core.Point // last pluck draw position, erased on the next pluck step

	touched   bool
	touchedAt time.Duration
}

// NewDot creates a resting dot at rest
func NewDot(rest core.Point, style *DotStyle) *Dot {
	d := &Dot{rest: rest, style: style}
	d.Init()
	return d
}

// Init returns the dot to rest with zero velocity
func (d *Dot) Init() {
	physics.Reset(&d.kin, d.rest)
	d.state = DotResting
	d.pluckAge = 0
	d.drawn = d.rest
	d.touched = false
	d.touchedAt = 0
}

func (d *Dot) Rest() core.Point { return d.rest }
func (d *Dot) Pos() core.Point  { return d.kin.Pos() }
func (d *Dot) Vel() core.Point  { return d.kin.Vel() }
func (d *Dot) State() DotState  { return d.state }
func (d *Dot) PluckAge() int    { return d.pluckAge }
func (d *Dot) Touched() bool    { return d.touched }
func (d *Dot) Style() *DotStyle { return d.style }

// Draw paints the dot at its current position in the primary color
func (d *Dot) Draw(s Surface) {
	s.FillCircle(d.kin.X, d.kin.Y, d.style.drawRadius(), d.style.Primary)
}

// PluckAnimate plays one step of the ripple bump: a vertical oscillation that
// decays over PluckSteps while the color fades toward background
// Position and velocity are untouched so nothing carries into the kinetic phase
func (d *Dot) PluckAnimate(s Surface) {
	d.state = DotPlucked

	t := min(float64(d.pluckAge)/constants.PluckSteps, 1)
	amp := d.style.Radius * constants.PluckAmplitude
	offset := amp * math.Sin(float64(d.pluckAge)*constants.PluckFrequency) * (1 - t)

	r := d.style.drawRadius()
	s.FillCircle(d.drawn.X, d.drawn.Y, r, d.style.Background)

	pos := core.Point{X: d.rest.X, Y: d.rest.Y + offset}
	s.FillCircle(pos.X, pos.Y, r, render.Lerp(d.style.Primary, d.style.Background, t*constants.PluckFade))

	d.drawn = pos
	d.pluckAge++
}

// ApplyRepulsion subtracts (ax, ay) from velocity
func (d *Dot) ApplyRepulsion(ax, ay float64) {
	physics.ApplyImpulse(&d.kin, -ax, -ay)
}

// Collide records a pointer contact, tinting the dot with the accent color
func (d *Dot) Collide(now time.Duration) {
	d.touched = true
	d.touchedAt = now
}

// KineticStep integrates one spring step toward rest and draws the dot
func (d *Dot) KineticStep(s Surface, now time.Duration) {
	d.state = DotReturning
	physics.SpringStep(&d.kin, d.rest, d.style.Spring)

	col := d.style.Primary
	if d.touched {
		elapsed := now - d.touchedAt
		if elapsed >= 0 && elapsed < constants.TouchGlow {
			col = render.Lerp(d.style.Accent, d.style.Primary, float64(elapsed)/float64(constants.TouchGlow))
		} else {
			d.touched = false
		}
	}
	s.FillCircle(d.kin.X, d.kin.Y, d.style.drawRadius(), col)
}
