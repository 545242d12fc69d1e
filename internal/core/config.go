package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState is the HUD-facing view of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase         string  // Current phase name (MENU, PLAYING, ...)
	Status        string  // Human-readable status line
	Score         int     // Player score
	OpponentScore int     // Opponent (AI) score, 0 in solo games
	Goal          int     // Score needed to clear the level
	Level         int     // 1-based level number
	TimeLeft      float64 // Seconds remaining on the level timer
	GameOver      bool    // Whether the game has ended (win or loss)
	Paused        bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick a terminal state was entered.
	Ended bool
	// Result names how the game ended ("win", "ai_won", "time_up").
	// Empty unless Ended.
	Result string
}
