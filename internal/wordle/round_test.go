package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordle/internal/words"
)

var testWords = []string{"crane", "slate", "level", "lever", "alloy", "llama", "pious", "store"}

func testVocabulary() *words.Vocabulary {
	return words.NewVocabulary(testWords)
}

func TestRoundRejectionsLeaveStateUnchanged(t *testing.T) {
	r := NewRound("crane", testVocabulary())

	tests := []struct {
		name  string
		guess string
		want  error
	}{
		{"too short", "cra", ErrNotEnoughLetters},
		{"too long", "cranes", ErrNotEnoughLetters},
		{"empty", "", ErrNotEnoughLetters},
		{"unknown word", "zzzzz", ErrNotInWordList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Submit(tt.guess)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, r.Attempts())
			assert.Equal(t, InProgress, r.Outcome())
		})
	}
}

func TestRoundWin(t *testing.T) {
	r := NewRound("crane", testVocabulary())

	rec, err := r.Submit("slate")
	require.NoError(t, err)
	assert.Equal(t, "slate", rec.Word)
	assert.Equal(t, InProgress, r.Outcome())

	rec, err = r.Submit("CRANE")
	require.NoError(t, err)
	assert.True(t, rec.Feedback.Solved())
	assert.Equal(t, Won, r.Outcome())
	assert.True(t, r.Over())
	assert.Equal(t, 2, r.Attempts())
	assert.Equal(t, 5, r.Points())

	_, err = r.Submit("slate")
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, 2, r.Attempts())
}

func TestRoundLoss(t *testing.T) {
	r := NewRound("crane", testVocabulary())

	guesses := []string{"slate", "level", "lever", "alloy", "llama", "pious"}
	for i, g := range guesses {
		_, err := r.Submit(g)
		require.NoError(t, err, "guess %d", i)
	}

	assert.Equal(t, Lost, r.Outcome())
	assert.Equal(t, MaxAttempts, r.Attempts())
	assert.Equal(t, 0, r.Points())

	_, err := r.Submit("store")
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Len(t, r.Records(), MaxAttempts)
}

func TestRoundWinOnLastGuess(t *testing.T) {
	r := NewRound("store", testVocabulary())

	for _, g := range []string{"slate", "level", "lever", "alloy", "llama"} {
		_, err := r.Submit(g)
		require.NoError(t, err)
	}
	_, err := r.Submit("store")
	require.NoError(t, err)

	assert.Equal(t, Won, r.Outcome())
	assert.Equal(t, 1, r.Points())
}

func TestRoundRecordsAreCopies(t *testing.T) {
	r := NewRound("crane", testVocabulary())
	_, err := r.Submit("slate")
	require.NoError(t, err)

	recs := r.Records()
	recs[0].Word = "xxxxx"
	assert.Equal(t, "slate", r.Records()[0].Word)
}

func TestRoundNilLexiconRejects(t *testing.T) {
	r := NewRound("crane", nil)
	_, err := r.Submit("crane")
	assert.ErrorIs(t, err, ErrNotInWordList)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
}
