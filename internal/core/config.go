package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from flags and the terminal (or SSH PTY) size.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for the secret number (0 = time based)
	Debug   bool  // Enables debug logging, including the secret number
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}
