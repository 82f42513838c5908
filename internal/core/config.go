package core

import "errors"

// ErrIOFailure marks failures to write frames to a file, terminal or stream.
var ErrIOFailure = errors.New("io failure")

// Tick rate bounds for interactive playback.
const (
	MinTickRate = 1
	MaxTickRate = 120
)

// RuntimeConfig contains playback settings passed to the platform layer.
type RuntimeConfig struct {
	ScreenW  int  // Terminal width in characters
	ScreenH  int  // Terminal height in characters
	TickRate int  // Frames per second (default 30)
	Shaded   bool // Start with grayscale shading enabled
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// WithTickRate returns a copy of the config with the tick rate clamped to
// [MinTickRate, MaxTickRate].
func (c RuntimeConfig) WithTickRate(rate int) RuntimeConfig {
	c.TickRate = Clamp(rate, MinTickRate, MaxTickRate)
	return c
}
