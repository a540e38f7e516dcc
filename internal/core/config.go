package core

// RuntimeConfig is passed to scenes when they start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// DeltaTime returns the length of one tick in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// SceneState is what a scene reports to the platform after each tick.
type SceneState struct {
	Score     int
	HighScore int
	Paused    bool
	GameOver  bool
}
