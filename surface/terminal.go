package surface

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/render"
)

// Terminal is a tcell host drawing the canvas with upper half blocks
type Terminal struct {
	screen tcell.Screen
	canvas *render.Canvas
	hub    hub

	// Input state, owned by the PollEvent goroutine
	pending    []Event
	buttonDown bool

	closeOnce sync.Once
}

// NewTerminal initializes screen, or the real terminal when screen is nil
func NewTerminal(screen tcell.Screen, bg core.RGB) (*Terminal, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(rgbColor(bg)))

	t := &Terminal{
		screen: screen,
		canvas: render.NewCanvas(0, 0, bg),
	}
	t.Resize()
	registerCrashScreen(screen)
	return t, nil
}

func (t *Terminal) Canvas() *render.Canvas { return t.canvas }

// Present writes one half-block cell per column for every pair of pixel rows
func (t *Terminal) Present() {
	render.HalfBlocks(t.canvas, func(x, y int, upper, lower render.RGB) {
		style := tcell.StyleDefault.Foreground(rgbColor(upper)).Background(rgbColor(lower))
		t.screen.SetContent(x, y, render.UpperHalfBlock, nil, style)
	})
	t.screen.Show()
}

// PollEvent translates tcell events until one maps to a host event
func (t *Terminal) PollEvent() (Event, bool) {
	for len(t.pending) == 0 {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{}, false
		}
		t.pending = t.translate(ev, t.pending)
	}
	ev := t.pending[0]
	t.pending = t.pending[1:]
	return ev, true
}

// translate appends the host events for ev to dst
// Mouse motion always reports the pointer; a click fires on the button press edge only
func (t *Terminal) translate(ev tcell.Event, dst []Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev.Key(), ev.Rune()) {
			dst = append(dst, Event{Type: EventQuit})
		}
	case *tcell.EventResize:
		dst = append(dst, Event{Type: EventResize})
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := render.CellToPixel(cx, cy)
		dst = append(dst, Event{Type: EventPointer, X: x, Y: y})

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.buttonDown {
			dst = append(dst, Event{Type: EventClick, X: x, Y: y})
		}
		t.buttonDown = down
	}
	return dst
}

func isQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

func (t *Terminal) Dispatch(ev Event) {
	if ev.Type == EventResize {
		t.Resize()
		t.screen.Sync()
	}
	t.hub.dispatch(ev)
}

func (t *Terminal) Subscribe(h Handler) *Subscription {
	return t.hub.subscribe(h)
}

// Resize reallocates the canvas at two pixels per terminal row
func (t *Terminal) Resize() {
	cols, rows := t.screen.Size()
	w, h := render.CellsToPixels(cols, rows)
	if cw, ch := t.canvas.Size(); cw == w && ch == h {
		return
	}
	t.canvas.Resize(w, h)
}

func (t *Terminal) Viewport() Viewport {
	cols, rows := t.screen.Size()
	return ViewportFor(cols, rows)
}

// Close releases subscriptions and restores the terminal; PollEvent then returns false
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.hub.closeAll()
		registerCrashScreen(nil)
		t.screen.Fini()
	})
}

func rgbColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
