package surface

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kinetic-text/core"
)

var testBg = core.RGB{R: 10, G: 10, B: 20}

func newSimTerminal(t *testing.T, cols, rows int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTerminal(screen, testBg)
	require.NoError(t, err)
	t.Cleanup(term.Close)
	screen.SetSize(cols, rows)
	term.Resize()
	return term, screen
}

func TestTerminalCanvasIsTwoPixelsPerRow(t *testing.T) {
	term, _ := newSimTerminal(t, 40, 10)
	w, h := term.Canvas().Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)
}

func TestTerminalPresentHalfBlocks(t *testing.T) {
	term, screen := newSimTerminal(t, 8, 4)
	upper := core.RGB{R: 255}
	lower := core.RGB{B: 255}
	term.Canvas().Set(2, 2, upper)
	term.Canvas().Set(2, 3, lower)
	term.Present()

	mainc, _, style, _ := screen.GetContent(2, 1)
	assert.Equal(t, '▀', mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	_, _, style, _ = screen.GetContent(0, 0)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, rgbColor(testBg), fg)
	assert.Equal(t, rgbColor(testBg), bg)
}

func TestTranslateMouse(t *testing.T) {
	term := &Terminal{}

	evs := term.translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone), nil)
	assert.Equal(t, []Event{{Type: EventPointer, X: 3.5, Y: 9}}, evs)

	evs = term.translate(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), nil)
	assert.Equal(t, []Event{
		{Type: EventPointer, X: 3.5, Y: 9},
		{Type: EventClick, X: 3.5, Y: 9},
	}, evs)

	// Dragging with the button held does not click again
	evs = term.translate(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone), nil)
	assert.Equal(t, []Event{{Type: EventPointer, X: 5.5, Y: 9}}, evs)

	term.translate(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone), nil)
	evs = term.translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone), nil)
	require.Len(t, evs, 2)
	assert.Equal(t, EventClick, evs[1].Type)
}

func TestTranslateResize(t *testing.T) {
	term := &Terminal{}
	evs := term.translate(tcell.NewEventResize(80, 24), nil)
	assert.Equal(t, []Event{{Type: EventResize}}, evs)
}

func TestIsQuitKey(t *testing.T) {
	assert.True(t, isQuitKey(tcell.KeyEscape, 0))
	assert.True(t, isQuitKey(tcell.KeyCtrlC, 0))
	assert.True(t, isQuitKey(tcell.KeyRune, 'q'))
	assert.False(t, isQuitKey(tcell.KeyRune, 'a'))
	assert.False(t, isQuitKey(tcell.KeyEnter, 0))
}

func TestTerminalViewport(t *testing.T) {
	term, screen := newSimTerminal(t, 40, 10)
	assert.True(t, term.Viewport().IsSmall())

	screen.SetSize(100, 30)
	assert.Equal(t, SizeRegular, term.Viewport().Mode)

	screen.SetSize(400, 30)
	assert.Equal(t, SizeLarge, term.Viewport().Mode)
}

func TestTerminalDispatchResize(t *testing.T) {
	term, screen := newSimTerminal(t, 20, 5)

	var got []Event
	sub := term.Subscribe(func(ev Event) {
		got = append(got, ev)
		// Canvas is already resized when handlers run
		w, h := term.Canvas().Size()
		assert.Equal(t, 30, w)
		assert.Equal(t, 14, h)
	})
	defer sub.Close()

	screen.SetSize(30, 7)
	term.Dispatch(Event{Type: EventResize})
	assert.Len(t, got, 1)
}
