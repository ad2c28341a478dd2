package kinetic

import (
	"strings"
	"time"
	"unicode"

	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/physics"
	"github.com/lixenwraith/kinetic-text/render"
	"github.com/lixenwraith/kinetic-text/vmath"
)

// Phase is the controller-wide animation phase
type Phase uint8

const (
	PhasePlucking Phase = iota
	PhaseKinetic
)

func (p Phase) String() string {
	switch p {
	case PhasePlucking:
		return "Plucking"
	case PhaseKinetic:
		return "Kinetic"
	default:
		return "Unknown"
	}
}

// Config holds the controller tunables, already validated by the caller
type Config struct {
	Text       string
	RandomText bool
	Seed       uint64

	DotRadius     float64
	RippleSpeed   float64
	PointerRadius float64

	Primary    core.RGB
	Background core.RGB
	Accent     core.RGB

	Spring physics.SpringProfile
}

// DefaultConfig returns the built-in tunables
func DefaultConfig() Config {
	return Config{
		Text:          constants.DefaultText,
		Seed:          1,
		DotRadius:     constants.DefaultDotRadius,
		RippleSpeed:   constants.DefaultRippleSpeed,
		PointerRadius: constants.DefaultPointerRadius,
		Primary:       render.MustParseColor(constants.DefaultPrimaryColor),
		Background:    render.MustParseColor(constants.DefaultBackgroundColor),
		Accent:        render.MustParseColor(constants.DefaultAccentColor),
		Spring: physics.SpringProfile{
			Spring:  constants.Spring,
			Damping: constants.Damping,
		},
	}
}

// Pointer is the last reported pointer; Active is false until the first move
type Pointer struct {
	X, Y   float64
	Radius float64
	Active bool
}

// Hooks are optional callbacks fired from inside controller calls
type Hooks struct {
	// OnPluck fires after a click restarts the pluck phase
	OnPluck func(origin core.Point, field core.Rect)
	// OnPhase fires on every phase change
	OnPhase func(Phase)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger; the default is a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHooks installs callbacks
func WithHooks(h Hooks) Option {
	return func(c *Controller) { c.hooks = h }
}

// WithViewport sets the viewport classifier; the default never reports small
func WithViewport(v Viewport) Option {
	return func(c *Controller) {
		if v != nil {
			c.viewport = v
		}
	}
}

// Controller owns the dot field and drives both phases
type Controller struct {
	surface  Surface
	raster   Rasterizer
	viewport Viewport
	cfg      Config
	style    DotStyle
	rng      *vmath.FastRand
	log      *zap.Logger
	hooks    Hooks

	text    string
	dots    []*Dot
	field   core.Rect
	ripple  *Ripple
	pointer Pointer
	clicked core.Point

	phase         Phase
	pluckCount    int
	maxPluckCount int
}

// New creates a controller; call Resize once the surface has a size
func New(surface Surface, frame Rasterizer, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		surface:  surface,
		raster:   frame,
		viewport: ViewportFunc(func() bool { return false }),
		cfg:      cfg,
		rng:      vmath.NewFastRand(cfg.Seed),
		log:      zap.NewNop(),
		ripple:   NewRipple(cfg.RippleSpeed),
		pointer:  Pointer{Radius: cfg.PointerRadius},
		phase:    PhaseKinetic,
	}
	c.style = DotStyle{
		Radius:     cfg.DotRadius,
		Primary:    cfg.Primary,
		Background: cfg.Background,
		Accent:     cfg.Accent,
		Spring:     cfg.Spring,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resize rasterizes the text for the current surface size, rebuilds every dot
// and restarts the pluck phase with a default click
func (c *Controller) Resize() {
	w, h := c.surface.Size()
	c.text = c.selectText()

	frame := c.raster.DrawTextFrame(c.text, w, h)
	c.field = frame.Field
	c.dots = make([]*Dot, len(frame.Dots))
	for i, p := range frame.Dots {
		c.dots[i] = NewDot(p, &c.style)
	}
	c.ripple = NewRipple(c.cfg.RippleSpeed)

	c.log.Debug("text rasterized",
		zap.String("text", c.text),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("dots", len(c.dots)),
		zap.Float64("font_size", frame.FontSize),
	)

	// Default click skips the small-viewport gate: on a fresh field it must always land
	if c.viewport.IsSmall() {
		c.pluck(0, 0)
		return
	}
	p := vmath.RectRandomPoint(c.field, c.rng)
	c.pluck(p.X, p.Y)
}

// SetText replaces the configured text and re-rasterizes
func (c *Controller) SetText(text string) {
	c.cfg.Text = text
	c.Resize()
}

// OnClick restarts the pluck phase at (x, y)
// On small viewports clicks inside the text field are ignored so touch scrolling
// over the text does not restart the animation; returns false when ignored
func (c *Controller) OnClick(x, y float64) bool {
	if c.viewport.IsSmall() && vmath.RectContains(c.field, core.Point{X: x, Y: y}) {
		c.log.Debug("click ignored", zap.Float64("x", x), zap.Float64("y", y))
		return false
	}
	c.pluck(x, y)
	return true
}

// PointerMove records the pointer position
func (c *Controller) PointerMove(x, y float64) {
	c.pointer.X = x
	c.pointer.Y = y
	c.pointer.Active = true
}

// Animate advances one frame
func (c *Controller) Animate(now time.Duration) {
	if c.phase == PhaseKinetic {
		c.surface.Clear()
		c.kineticAnimate(now)
		return
	}
	c.pluckAnimate()
}

func (c *Controller) pluck(x, y float64) {
	for _, d := range c.dots {
		d.Init()
	}
	c.pluckCount = 0
	c.clicked = core.Point{X: x, Y: y}
	c.maxPluckCount = c.ripple.Init(x, y, c.field)

	c.surface.Clear()
	for _, d := range c.dots {
		d.Draw(c.surface)
	}

	c.setPhase(PhasePlucking)
	c.log.Debug("pluck",
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("steps", c.maxPluckCount),
	)
	if c.hooks.OnPluck != nil {
		c.hooks.OnPluck(c.clicked, c.field)
	}
}

func (c *Controller) pluckAnimate() {
	c.ripple.Animate()
	for _, d := range c.dots {
		if c.ripple.Contains(d.rest) {
			d.PluckAnimate(c.surface)
		}
	}
	c.pluckCount++
	if c.pluckCount >= c.maxPluckCount {
		c.setPhase(PhaseKinetic)
	}
}

func (c *Controller) kineticAnimate(now time.Duration) {
	minDist := constants.PointerTouchRadius + c.pointer.Radius
	source := core.Point{X: c.pointer.X, Y: c.pointer.Y}

	for _, d := range c.dots {
		if c.pointer.Active {
			if ax, ay, ok := physics.Repulsion(source, d.Pos(), minDist); ok {
				d.ApplyRepulsion(ax, ay)
				d.Collide(now)
			}
		}
		d.KineticStep(c.surface, now)
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	c.phase = p
	c.log.Debug("phase", zap.Stringer("phase", p))
	if c.hooks.OnPhase != nil {
		c.hooks.OnPhase(p)
	}
}

// selectText returns the configured text, or one non-blank grapheme cluster of it
// picked by the seeded generator in random mode
func (c *Controller) selectText() string {
	if !c.cfg.RandomText {
		return c.cfg.Text
	}

	var clusters []string
	g := uniseg.NewGraphemes(c.cfg.Text)
	for g.Next() {
		s := g.Str()
		if strings.TrimFunc(s, unicode.IsSpace) == "" {
			continue
		}
		clusters = append(clusters, s)
	}
	if len(clusters) == 0 {
		return ""
	}
	return clusters[c.rng.Intn(len(clusters))]
}

func (c *Controller) Phase() Phase        { return c.phase }
func (c *Controller) Dots() []*Dot        { return c.dots }
func (c *Controller) Field() core.Rect    { return c.field }
func (c *Controller) Pointer() Pointer    { return c.pointer }
func (c *Controller) Ripple() *Ripple     { return c.ripple }
func (c *Controller) Text() string        { return c.text }
func (c *Controller) Clicked() core.Point { return c.clicked }

// PluckProgress returns the pluck steps taken and the steps needed
func (c *Controller) PluckProgress() (count, limit int) {
	return c.pluckCount, c.maxPluckCount
}
