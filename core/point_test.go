package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 3, Y: -2}
	q := Point{X: 1, Y: 4}

	assert.Equal(t, Point{X: 4, Y: 2}, p.Add(q))
	assert.Equal(t, Point{X: 2, Y: -6}, p.Sub(q))
	assert.Equal(t, Point{X: 1.5, Y: -1}, p.Scale(0.5))
}
