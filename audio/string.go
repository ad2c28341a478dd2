package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/kinetic-text/vmath"
)

// StringGenerator is a Karplus-Strong plucked string: a noise burst circulating
// through a delay line one period long, averaged and attenuated on every pass
type StringGenerator struct {
	line  []float64
	pos   int
	decay float64
	gain  float64
}

// NewStringGenerator tunes a string to freq at sample rate sr
// The excitation noise comes from rng so identical seeds give identical output
func NewStringGenerator(sr beep.SampleRate, freq, decay, gain float64, rng *vmath.FastRand) *StringGenerator {
	period := 2
	if freq > 0 {
		period = max(int(math.Round(float64(sr)/freq)), 2)
	}
	line := make([]float64, period)
	for i := range line {
		line[i] = rng.Float64()*2 - 1
	}
	return &StringGenerator{
		line:  line,
		decay: decay,
		gain:  gain,
	}
}

// Period returns the delay line length in samples
func (g *StringGenerator) Period() int {
	return len(g.line)
}

func (g *StringGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	n = len(g.line)
	for i := range samples {
		cur := g.line[g.pos]
		next := g.line[(g.pos+1)%n]
		g.line[g.pos] = g.decay * 0.5 * (cur + next)
		g.pos = (g.pos + 1) % n

		s := cur * g.gain
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

func (g *StringGenerator) Err() error {
	return nil
}
