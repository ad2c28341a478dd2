package surface

import (
	"sync"

	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/render"
)

// Headless is an in-memory host; events come from Post
type Headless struct {
	canvas *render.Canvas
	hub    hub

	mu         sync.Mutex
	cols, rows int
	presented  int

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewHeadless creates a host emulating a cols x rows terminal
func NewHeadless(cols, rows int, bg core.RGB) *Headless {
	h := &Headless{
		canvas: render.NewCanvas(0, 0, bg),
		cols:   cols,
		rows:   rows,
		events: make(chan Event, constants.EventQueueSize),
		done:   make(chan struct{}),
	}
	h.Resize()
	return h
}

func (h *Headless) Canvas() *render.Canvas { return h.canvas }

// Present counts frames
func (h *Headless) Present() {
	h.mu.Lock()
	h.presented++
	h.mu.Unlock()
}

// Presented returns the number of Present calls
func (h *Headless) Presented() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.presented
}

// Post queues a synthetic event; dropped after Close
func (h *Headless) Post(ev Event) {
	select {
	case <-h.done:
	case h.events <- ev:
	}
}

// SetSize changes the emulated terminal and posts EventResize
func (h *Headless) SetSize(cols, rows int) {
	h.mu.Lock()
	h.cols, h.rows = cols, rows
	h.mu.Unlock()
	h.Post(Event{Type: EventResize})
}

func (h *Headless) PollEvent() (Event, bool) {
	select {
	case <-h.done:
		return Event{}, false
	case ev := <-h.events:
		return ev, true
	}
}

func (h *Headless) Dispatch(ev Event) {
	if ev.Type == EventResize {
		h.Resize()
	}
	h.hub.dispatch(ev)
}

func (h *Headless) Subscribe(fn Handler) *Subscription {
	return h.hub.subscribe(fn)
}

// Subscribers returns the number of live subscriptions
func (h *Headless) Subscribers() int {
	return h.hub.count()
}

func (h *Headless) Resize() {
	h.mu.Lock()
	cols, rows := h.cols, h.rows
	h.mu.Unlock()
	h.canvas.Resize(render.CellsToPixels(cols, rows))
}

func (h *Headless) Viewport() Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return ViewportFor(h.cols, h.rows)
}

func (h *Headless) Close() {
	h.closeOnce.Do(func() {
		h.hub.closeAll()
		close(h.done)
	})
}
