package surface

import "fmt"

// EventType identifies host events
type EventType uint8

const (
	EventNone EventType = iota
	EventPointer
	EventClick
	EventResize
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventPointer:
		return "Pointer"
	case EventClick:
		return "Click"
	case EventResize:
		return "Resize"
	case EventQuit:
		return "Quit"
	default:
		return fmt.Sprintf("EventType(%d)", t)
	}
}

// Event carries pointer coordinates in canvas pixels; zero for resize and quit
type Event struct {
	Type EventType
	X, Y float64
}

// Handler receives dispatched events on the frame loop goroutine
type Handler func(Event)
