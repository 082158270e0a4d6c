package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	A = Absent
	P = Present
	E = Exact
)

func TestScore(t *testing.T) {
	tests := []struct {
		guess, target string
		want          Feedback
	}{
		{"level", "lever", Feedback{E, E, E, E, A}},
		{"alloy", "llama", Feedback{P, E, P, A, A}},
		{"crane", "crane", Feedback{E, E, E, E, E}},
		{"zzzzz", "crane", Feedback{A, A, A, A, A}},
		{"speed", "abide", Feedback{A, A, P, A, P}},
		{"eerie", "there", Feedback{P, A, P, A, E}},
		{"nacre", "crane", Feedback{P, P, P, P, E}},
		// Only the first of three Ls is credited for the single L in the target
		{"lolly", "hotel", Feedback{P, E, A, A, A}},
	}

	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.guess, tt.target))
		})
	}
}

func TestScoreNeverOvercountsLetters(t *testing.T) {
	targets := []string{"llama", "hotel", "abide", "eerie", "sassy"}
	guesses := []string{"lolly", "level", "sissy", "geese", "alloy", "esses"}

	for _, target := range targets {
		for _, guess := range guesses {
			fb := Score(guess, target)
			for letter := byte('a'); letter <= 'z'; letter++ {
				inTarget := 0
				for i := 0; i < WordLen; i++ {
					if target[i] == letter {
						inTarget++
					}
				}
				marked := 0
				for i := 0; i < WordLen; i++ {
					if guess[i] == letter && fb[i] != Absent {
						marked++
					}
				}
				assert.LessOrEqual(t, marked, inTarget, "%s vs %s letter %c", guess, target, letter)
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	first := Score("alloy", "llama")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score("alloy", "llama"))
	}
}

func TestFeedbackSolved(t *testing.T) {
	assert.True(t, Score("crane", "crane").Solved())
	assert.False(t, Score("level", "lever").Solved())
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, "exact", Exact.String())
}
