package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic target selection
	Player   string // Player name recorded with finished rounds
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

// Ticks converts a duration to a whole number of simulation ticks, never less than one.
func (c RuntimeConfig) Ticks(d time.Duration) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	n := int(d * time.Duration(rate) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Points for the finished round (0 while playing or on a loss)
	GameOver bool // Whether the round has ended and its reveal finished
	Paused   bool // Whether the game is paused (window too small)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RoundResult describes a finished round for persistence.
type RoundResult struct {
	Mode     string
	Target   string
	Guesses  []string
	Won      bool
	Attempts int
	Score    int
}
