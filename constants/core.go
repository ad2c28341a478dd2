package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the animation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval caps the configurable frame rate at 240 FPS
	MinFrameInterval = 4 * time.Millisecond

	// EventQueueSize is the buffered capacity between the input pump and the frame loop
	EventQueueSize = 256

	// StatsLogInterval throttles frame statistics in the debug log
	StatsLogInterval = 5 * time.Second
)
