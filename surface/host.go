// Package surface connects the animation to a display and its input.
package surface

import "github.com/lixenwraith/kinetic-text/render"

// Host owns a canvas, presents it, and produces input events
//
// PollEvent may be called from a dedicated goroutine; every other method belongs
// to the frame loop goroutine
type Host interface {
	// Canvas is the pixel surface sized to the display
	Canvas() *render.Canvas
	// Present pushes the canvas to the display
	Present()
	// PollEvent blocks for the next event; ok is false once the host is closed
	PollEvent() (ev Event, ok bool)
	// Dispatch delivers ev to subscribers, resizing the canvas first on EventResize
	Dispatch(ev Event)
	// Subscribe registers h until the returned Subscription or the host is closed
	Subscribe(h Handler) *Subscription
	// Resize matches the canvas to the display
	Resize()
	// Viewport classifies the display as of now
	Viewport() Viewport
	// Close releases the display and every subscription
	Close()
}
