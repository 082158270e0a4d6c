package wordle

// Snapshot captures the game state for tests and debugging.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Phase    Phase
	Target   string
	Current  string
	Guesses  []GuessRecord
	Outcome  Outcome
	Message  string
	TooSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Phase:    g.phase,
		Target:   g.round.Target(),
		Current:  string(g.current),
		Guesses:  g.round.Records(),
		Outcome:  g.round.Outcome(),
		Message:  g.message,
		TooSmall: g.tooSmall,
	}
}
