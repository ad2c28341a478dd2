// Package engine runs the frame loop: one goroutine pumps host input into a
// channel, the other serializes those events with ticks of the animation.
package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/kinetic"
	"github.com/lixenwraith/kinetic-text/status"
	"github.com/lixenwraith/kinetic-text/surface"
)

// Metric keys published to the status registry
const (
	MetricFrames     = "frames"
	MetricDots       = "dots"
	MetricPluckStep  = "pluck_step"
	MetricPluckSteps = "pluck_steps"
	MetricFPS        = "fps"
	MetricPhase      = "phase"
)

// errHostClosed ends the loop when the host stops producing events
var errHostClosed = errors.New("host closed")

// Engine drives one controller on one host
type Engine struct {
	host     surface.Host
	ctrl     *kinetic.Controller
	clock    TimeProvider
	interval time.Duration
	log      *zap.Logger

	start time.Time
	stats rate.Sometimes

	status     *status.Registry
	frames     *atomic.Int64
	dots       *atomic.Int64
	pluckStep  *atomic.Int64
	pluckSteps *atomic.Int64
	fps        *status.AtomicFloat
	phase      *status.AtomicString
}

// Option configures an Engine
type Option func(*Engine)

func WithClock(c TimeProvider) Option {
	return func(e *Engine) { e.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithStatus publishes frame metrics to r instead of a private registry
func WithStatus(r *status.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.status = r
		}
	}
}

// WithInterval sets the frame period, floored at MinFrameInterval
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = max(d, constants.MinFrameInterval) }
}

// New creates an engine; Run takes ownership of host
func New(host surface.Host, ctrl *kinetic.Controller, opts ...Option) *Engine {
	e := &Engine{
		host:     host,
		ctrl:     ctrl,
		clock:    SystemClock{},
		interval: constants.FrameUpdateInterval,
		log:      zap.NewNop(),
		stats:    rate.Sometimes{Interval: constants.StatsLogInterval},
		status:   status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.frames = e.status.Ints.Get(MetricFrames)
	e.dots = e.status.Ints.Get(MetricDots)
	e.pluckStep = e.status.Ints.Get(MetricPluckStep)
	e.pluckSteps = e.status.Ints.Get(MetricPluckSteps)
	e.fps = e.status.Floats.Get(MetricFPS)
	e.phase = e.status.Strings.Get(MetricPhase)
	return e
}

// Run animates until ctx is cancelled, the user quits or the host closes
// The host is closed on return; quitting is not an error
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := e.host.Subscribe(e.handler(cancel))
	defer sub.Close()

	events := make(chan surface.Event, constants.EventQueueSize)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer surface.RecoverCrash()
		return e.pump(gctx, events)
	})
	g.Go(func() error {
		defer surface.RecoverCrash()
		defer e.host.Close()
		return e.loop(gctx, events)
	})

	err := g.Wait()
	e.log.Debug("engine stopped", zap.Int64("frames", e.frames.Load()), zap.Error(err))
	if errors.Is(err, context.Canceled) || errors.Is(err, errHostClosed) {
		return nil
	}
	return err
}

// handler maps host events onto the controller; runs on the loop goroutine
func (e *Engine) handler(quit context.CancelFunc) surface.Handler {
	return func(ev surface.Event) {
		switch ev.Type {
		case surface.EventPointer:
			e.ctrl.PointerMove(ev.X, ev.Y)
		case surface.EventClick:
			e.ctrl.OnClick(ev.X, ev.Y)
		case surface.EventResize:
			e.ctrl.Resize()
			e.log.Debug("resize", zap.Stringer("mode", e.host.Viewport().Mode))
		case surface.EventQuit:
			quit()
		}
	}
}

// pump forwards host events; PollEvent unblocks when the loop closes the host
func (e *Engine) pump(ctx context.Context, events chan<- surface.Event) error {
	for {
		ev, ok := e.host.PollEvent()
		if !ok {
			return errHostClosed
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (e *Engine) loop(ctx context.Context, events <-chan surface.Event) error {
	e.start = e.clock.Now()
	e.host.Resize()
	e.ctrl.Resize()
	e.host.Present()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			e.host.Dispatch(ev)
		case <-ticker.C:
			e.Step()
		}
	}
}

// Step animates and presents one frame at the clock's elapsed time
func (e *Engine) Step() {
	now := e.clock.Now().Sub(e.start)
	e.ctrl.Animate(now)
	e.host.Present()
	e.publish(now)

	e.stats.Do(func() {
		e.log.Debug("frame stats", e.status.Fields()...)
	})
}

func (e *Engine) publish(elapsed time.Duration) {
	frames := e.frames.Add(1)
	if elapsed > 0 {
		e.fps.Store(float64(frames) / elapsed.Seconds())
	}
	count, limit := e.ctrl.PluckProgress()
	e.pluckStep.Store(int64(count))
	e.pluckSteps.Store(int64(limit))
	e.dots.Store(int64(len(e.ctrl.Dots())))
	e.phase.Store(e.ctrl.Phase().String())
}

// Frames returns the number of frames stepped; safe from any goroutine
func (e *Engine) Frames() int64 {
	return e.frames.Load()
}

// Status exposes the metrics registry
func (e *Engine) Status() *status.Registry {
	return e.status
}
