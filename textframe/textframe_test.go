package textframe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/vmath"
)

func newTestFrame(t *testing.T, cfg Config) *TextFrame {
	t.Helper()
	tf, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { tf.Close() })
	return tf
}

func assertFieldContainsDots(t *testing.T, f Frame) {
	t.Helper()
	for i, d := range f.Dots {
		require.True(t, vmath.RectContains(f.Field, d), "dot %d %+v outside field %+v", i, d, f.Field)
	}
}

// TestDrawTextFrameSingleGlyph checks "A" on a 100x100 stage with a 20px pitch
func TestDrawTextFrameSingleGlyph(t *testing.T) {
	tf := newTestFrame(t, Config{PixelSize: 20})
	f := tf.DrawTextFrame("A", 100, 100)

	require.NotEmpty(t, f.Dots)
	assert.GreaterOrEqual(t, f.Field.X, 0.0)
	assert.GreaterOrEqual(t, f.Field.Y, 0.0)
	assert.LessOrEqual(t, f.Field.Right(), 100.0)
	assert.LessOrEqual(t, f.Field.Bottom(), 100.0)
	assert.False(t, f.Field.Empty())
	assertFieldContainsDots(t, f)

	// Every dot sits on a grid-cell center
	for _, d := range f.Dots {
		assert.Equal(t, 10.0, mod(d.X, 20), "x %v", d.X)
		assert.Equal(t, 10.0, mod(d.Y, 20), "y %v", d.Y)
	}
}

func mod(v, m float64) float64 {
	return v - m*float64(int(v/m))
}

// TestDrawTextFrameDeterministic verifies identical inputs give identical output
func TestDrawTextFrameDeterministic(t *testing.T) {
	for _, text := range []string{"A", "Kinetic", "dots\nmove", "  "} {
		a := newTestFrame(t, Config{PixelSize: 4}).DrawTextFrame(text, 160, 64)
		tf := newTestFrame(t, Config{PixelSize: 4})
		b := tf.DrawTextFrame(text, 160, 64)
		c := tf.DrawTextFrame(text, 160, 64)

		if diff := cmp.Diff(a.Dots, b.Dots); diff != "" {
			t.Errorf("%q: dots differ across instances (-a +b):\n%s", text, diff)
		}
		if diff := cmp.Diff(b.Dots, c.Dots); diff != "" {
			t.Errorf("%q: dots differ across calls (-b +c):\n%s", text, diff)
		}
		assert.Equal(t, a.Field, b.Field, text)
		assert.Equal(t, b.Field, c.Field, text)
		assertFieldContainsDots(t, a)
	}
}

func TestDrawTextFrameRowMajorOrder(t *testing.T) {
	f := newTestFrame(t, Config{PixelSize: 4}).DrawTextFrame("Hi", 120, 60)
	require.NotEmpty(t, f.Dots)
	for i := 1; i < len(f.Dots); i++ {
		prev, cur := f.Dots[i-1], f.Dots[i]
		ordered := cur.Y > prev.Y || (cur.Y == prev.Y && cur.X > prev.X)
		require.True(t, ordered, "dot %d %+v not after %+v", i, cur, prev)
	}
}

func TestDrawTextFrameDegenerate(t *testing.T) {
	tf := newTestFrame(t, Config{PixelSize: 4})

	for _, tc := range []struct {
		name string
		text string
		w, h int
	}{
		{"empty text", "", 100, 100},
		{"blank lines", "\n\n", 100, 100},
		{"zero width", "A", 0, 100},
		{"zero height", "A", 100, 0},
		{"negative stage", "A", -5, -5},
	} {
		f := tf.DrawTextFrame(tc.text, tc.w, tc.h)
		assert.Empty(t, f.Dots, tc.name)
		assert.Equal(t, core.Rect{}, f.Field, tc.name)
		assert.True(t, f.Field.Empty(), tc.name)
	}
}

// TestDrawTextFrameClipsOversizedText verifies a fixed font larger than the stage is clipped
func TestDrawTextFrameClipsOversizedText(t *testing.T) {
	tf := newTestFrame(t, Config{PixelSize: 3, FontSize: 200})
	f := tf.DrawTextFrame("WWW", 50, 40)

	require.NotEmpty(t, f.Dots)
	assert.Equal(t, 200.0, f.FontSize)
	for _, d := range f.Dots {
		require.True(t, d.X >= 0 && d.X <= 50 && d.Y >= 0 && d.Y <= 40, "dot %+v outside stage", d)
	}
	assert.LessOrEqual(t, f.Field.Right(), 50.0)
	assert.LessOrEqual(t, f.Field.Bottom(), 40.0)
	assertFieldContainsDots(t, f)
}

func TestDrawTextFrameFitsStage(t *testing.T) {
	tf := newTestFrame(t, Config{PixelSize: 2})
	f := tf.DrawTextFrame("fit", 200, 80)

	require.NotEmpty(t, f.Dots)
	assert.GreaterOrEqual(t, f.FontSize, minFontSize)
	// Padding of one cell keeps the field inside the stage with room to spare
	assert.Greater(t, f.Field.X, 0.0)
	assert.Less(t, f.Field.Right(), 200.0)
}

func TestDrawTextFrameMultiline(t *testing.T) {
	tf := newTestFrame(t, Config{PixelSize: 2})
	one := tf.DrawTextFrame("ab", 200, 120)
	two := tf.DrawTextFrame("ab\nab", 200, 120)

	require.NotEmpty(t, one.Dots)
	require.NotEmpty(t, two.Dots)
	assert.Greater(t, two.Field.Height, two.Field.Width/4, "two lines stack vertically")
	assertFieldContainsDots(t, two)
}

func TestNewRejectsBadFont(t *testing.T) {
	_, err := New(Config{PixelSize: 2, FontData: []byte("not a font")})
	assert.Error(t, err)
}

func TestNewClampsPixelSize(t *testing.T) {
	tf := newTestFrame(t, Config{PixelSize: 0})
	assert.Equal(t, 1, tf.PixelSize())
}

// TestFaceCacheHoldsDrawnSizeOnly resizes through many stage heights and checks only the
// size last drawn stays cached
func TestFaceCacheHoldsDrawnSizeOnly(t *testing.T) {
	tf := newTestFrame(t, Config{PixelSize: 4})

	var last Frame
	for h := 20; h <= 400; h += 2 {
		last = tf.DrawTextFrame("kinetic", 400, h)
		require.NotNil(t, tf.face, "height %d", h)
		require.Equal(t, last.FontSize, tf.faceSize, "height %d", h)
	}

	cached := tf.face
	again := tf.DrawTextFrame("kinetic", 400, 400)
	assert.Equal(t, last.FontSize, again.FontSize)
	assert.Same(t, cached, tf.face, "same size reuses the cached face")

	require.NoError(t, tf.Close())
	assert.Nil(t, tf.face)
	assert.Zero(t, tf.faceSize)
}
