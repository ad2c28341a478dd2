package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorForms(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"rgb(255, 0, 128)", RGB{R: 255, G: 0, B: 128}},
		{"rgb(1,2,3)", RGB{R: 1, G: 2, B: 3}},
		{"  RGB( 10 , 20 , 30 ) ", RGB{R: 10, G: 20, B: 30}},
		{"rgba(4, 5, 6, 0.5)", RGB{R: 4, G: 5, B: 6}},
		{"rgba(4, 5, 6, 1)", RGB{R: 4, G: 5, B: 6}},
		{"#ff8000", RGB{R: 255, G: 128, B: 0}},
		{"#fff", RGB{R: 255, G: 255, B: 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

// TestParseColorInvalid verifies every malformed form wraps ErrInvalidColorFormat
func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"red",
		"rgb(256, 0, 0)",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 0.5)",
		"rgba(1, 2, 3)",
		"rgb(-1, 2, 3)",
		"#zzzzzz",
		"#12",
	} {
		_, err := ParseColor(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidColorFormat), "%q: %v", in, err)
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	c := RGB{R: 12, G: 200, B: 99}
	got, err := ParseColor(FormatColor(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLerpEndpoints(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 200, G: 100, B: 0}

	assert.Equal(t, a, Lerp(a, b, -1))
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, b, Lerp(a, b, 3))

	mid := Lerp(a, b, 0.5)
	assert.InDelta(t, 100, int(mid.R), 1)
	assert.Equal(t, uint8(100), mid.G)
	assert.InDelta(t, 100, int(mid.B), 1)
}
