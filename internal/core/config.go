package core

// RuntimeConfig contains settings the platform passes to a game at start.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	Seed       int64  // RNG seed for deterministic boards; 0 means use current time
	Difficulty string // Catalog key of the first game
	Player     string // Name recorded with results
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0,
		Difficulty: "easy",
		Player:     "local",
	}
}
