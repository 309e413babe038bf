package core

// MaxStepDT caps the integration step. A stalled terminal or a tick rate
// configured below 30 can never produce a step large enough to tunnel
// entities through each other.
const MaxStepDT = 1.0 / 30.0

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to derive their time step and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// StepDT returns the simulation time step in seconds, capped at MaxStepDT.
func (c RuntimeConfig) StepDT() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	dt := 1.0 / float64(rate)
	if dt > MaxStepDT {
		dt = MaxStepDT
	}
	return dt
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
