// Package wordle implements the word-guessing game: guess scoring, the round
// state machine, and the playable game with its tile reveal animation.
package wordle

import "github.com/vovakirdan/tui-wordle/internal/words"

// WordLen is the number of letters per guess.
const WordLen = words.Length

// MaxAttempts is the number of guesses allowed per round.
const MaxAttempts = 6

// Classification is the feedback for one letter of a guess.
type Classification uint8

const (
	Absent  Classification = iota // Letter is not in the remaining target letters
	Present                       // Letter is in the target at another position
	Exact                         // Letter is in the target at this position
)

// String returns the lowercase name of the classification.
func (c Classification) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// Feedback holds one classification per letter, left to right.
type Feedback [WordLen]Classification

// Solved reports whether every position is Exact.
func (f Feedback) Solved() bool {
	for _, c := range f {
		if c != Exact {
			return false
		}
	}
	return true
}

// Score classifies each letter of guess against target.
// Both must be WordLen lowercase letters; the caller validates this.
//
// Exact matches are taken first and consume their target letter. Remaining
// letters are then matched left to right against the unconsumed target
// letters, each match consuming the leftmost remaining occurrence, so a letter
// is never reported more often than it appears in the target.
func Score(guess, target string) Feedback {
	var res Feedback
	var pool [WordLen]byte
	var used [WordLen]bool
	copy(pool[:], target)

	for i := range WordLen {
		if guess[i] == pool[i] {
			res[i] = Exact
			used[i] = true
		}
	}

	for i := range WordLen {
		if res[i] == Exact {
			continue
		}
		for j := range WordLen {
			if !used[j] && pool[j] == guess[i] {
				res[i] = Present
				used[j] = true
				break
			}
		}
	}

	return res
}
