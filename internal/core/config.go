package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic terrain generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// A tick is one projectile motion step; 50 ticks/s matches the nominal
// 20ms motion interval.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Mode is the top-level game state machine value.
type Mode int

const (
	ModeMain     Mode = iota // Title screen, waiting for any key
	ModePlaying              // Active play: scrolling, input, collisions
	ModePaused               // Frozen; only unpause applies
	ModeGameOver             // Terminal until restart or quit
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Enemies destroyed this run
	Distance int  // Frames scrolled this run
	Mode     Mode // Current state machine value
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
