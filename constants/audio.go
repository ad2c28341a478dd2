package constants

import "time"

// Pluck Sound
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// PluckSoundDuration is the length of one string pluck
	PluckSoundDuration = 900 * time.Millisecond

	// PluckDecay is the Karplus-Strong feedback gain per period, < 1
	PluckDecay = 0.996

	// PluckVolume is the output gain applied to the string
	PluckVolume = 0.35

	// Pitch range mapped across stage width, low on the left
	PluckMinFreq = 110.0
	PluckMaxFreq = 440.0

	// MinPluckGap drops clicks closer together than this
	MinPluckGap = 50 * time.Millisecond
)
