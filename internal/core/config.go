package core

import "time"

// DefaultDelay is the fixed delay between two simulation ticks.
const DefaultDelay = 10 * time.Millisecond

// RuntimeConfig contains configuration passed to a game at initialization.
// The platform layer fills it from the terminal or window it runs in.
type RuntimeConfig struct {
	ViewportW int           // Viewport width in pixels
	ViewportH int           // Viewport height in pixels
	Delay     time.Duration // Fixed delay between ticks
	Seed      int64         // RNG seed for deterministic serves (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The viewport yields an 800x600 playfield with the default margins.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW: 920,
		ViewportH: 700,
		Delay:     DefaultDelay,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// TicksPerSecond converts the tick delay to a rate, at least 1.
func (c RuntimeConfig) TicksPerSecond() int {
	if c.Delay <= 0 {
		return int(time.Second / DefaultDelay)
	}
	return max(int(time.Second/c.Delay), 1)
}
