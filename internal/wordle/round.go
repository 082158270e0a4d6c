package wordle

import (
	"errors"
	"strings"
)

// Guess rejection reasons. A rejected guess leaves the round unchanged.
var (
	ErrNotEnoughLetters = errors.New("not enough letters")
	ErrNotInWordList    = errors.New("not in word list")
	ErrRoundOver        = errors.New("round is over")
)

// Lexicon is the legality check for guesses.
type Lexicon interface {
	Contains(word string) bool
}

// Outcome is the result of a round so far.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// GuessRecord is a scored guess.
type GuessRecord struct {
	Word     string
	Feedback Feedback
}

// Round is one play-through: a target word and the guesses made against it.
type Round struct {
	target  string
	lexicon Lexicon
	records []GuessRecord
	outcome Outcome
}

// NewRound starts a round for target, validating guesses against lexicon.
func NewRound(target string, lexicon Lexicon) *Round {
	return &Round{
		target:  strings.ToLower(target),
		lexicon: lexicon,
		records: make([]GuessRecord, 0, MaxAttempts),
	}
}

// Submit validates, scores and records a guess.
func (r *Round) Submit(word string) (GuessRecord, error) {
	if r.outcome != InProgress {
		return GuessRecord{}, ErrRoundOver
	}

	guess := strings.ToLower(strings.TrimSpace(word))
	if len(guess) != WordLen {
		return GuessRecord{}, ErrNotEnoughLetters
	}
	if r.lexicon == nil || !r.lexicon.Contains(guess) {
		return GuessRecord{}, ErrNotInWordList
	}

	rec := GuessRecord{Word: guess, Feedback: Score(guess, r.target)}
	r.records = append(r.records, rec)

	switch {
	case guess == r.target:
		r.outcome = Won
	case len(r.records) >= MaxAttempts:
		r.outcome = Lost
	}
	return rec, nil
}

// Target returns the secret word.
func (r *Round) Target() string {
	return r.target
}

// Records returns the scored guesses in submission order.
func (r *Round) Records() []GuessRecord {
	out := make([]GuessRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Attempts returns the number of accepted guesses.
func (r *Round) Attempts() int {
	return len(r.records)
}

// Outcome returns the current outcome.
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Over reports whether the round has ended.
func (r *Round) Over() bool {
	return r.outcome != InProgress
}

// Points returns the score for a finished round: 6 for a first-guess win down
// to 1 for a win on the last guess, 0 otherwise.
func (r *Round) Points() int {
	if r.outcome != Won {
		return 0
	}
	return MaxAttempts + 1 - len(r.records)
}
