package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is a read-only view of the session, used by the platform for
// score saving and status display.
type GameState struct {
	Score  int
	Health int
	Speed  float64
	Lost   bool
	Paused bool
}
