// Package audio plays a plucked string whenever the text is plucked.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/vmath"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Plucker mixes string plucks into the speaker
// Every method is safe to call before Initialize or after Close; they do nothing
type Plucker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *vmath.FastRand
	initialized bool
	lastPluck   time.Time
	log         *zap.Logger
}

// NewPlucker creates an uninitialized plucker; seed drives the excitation noise
func NewPlucker(seed uint64, log *zap.Logger) *Plucker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Plucker{
		mixer: &beep.Mixer{},
		rng:   vmath.NewFastRand(seed),
		log:   log,
	}
}

// Initialize opens the speaker; fails on hosts without an audio device
func (p *Plucker) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Pluck plays one string tuned by the horizontal position x across width
func (p *Plucker) Pluck(x float64, width int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.admit(time.Now()) {
		return
	}

	freq := PitchFor(x, width)
	gen := NewStringGenerator(sampleRate, freq, constants.PluckDecay, constants.PluckVolume, p.rng)
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(constants.PluckSoundDuration), gen))
	speaker.Unlock()
	p.log.Debug("pluck sound", zap.Float64("freq", freq))
}

// admit drops plucks arriving within MinPluckGap of the previous one
func (p *Plucker) admit(now time.Time) bool {
	if !p.lastPluck.IsZero() && now.Sub(p.lastPluck) < constants.MinPluckGap {
		return false
	}
	p.lastPluck = now
	return true
}

// Close silences every voice and releases the speaker
func (p *Plucker) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// PitchFor maps x across [0, width] exponentially onto [PluckMinFreq, PluckMaxFreq]
func PitchFor(x float64, width int) float64 {
	t := 0.5
	if width > 0 {
		t = min(max(x/float64(width), 0), 1)
	}
	return constants.PluckMinFreq * math.Pow(constants.PluckMaxFreq/constants.PluckMinFreq, t)
}
