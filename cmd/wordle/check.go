package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var flagStrict bool

var checkCmd = &cobra.Command{
	Use:   "check <guess> <target>",
	Short: "Score a guess against a target word",
	Long: `Print the per-letter feedback for a guess: exact (right letter, right
spot), present (in the word, elsewhere) or absent.

With --strict the guess must also be in the word list.

Examples:
  wordle check level lever
  wordle check alloy llama
  wordle check crane slate --strict`,
	Args: cobra.ExactArgs(2),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagStrict, "strict", false, "Reject guesses not in the word list")
}

var tileStyles = map[wordle.Classification]lipgloss.Style{
	wordle.Exact:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#538d4e")),
	wordle.Present: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#b59f3b")),
	wordle.Absent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#3a3a3c")),
}

func runCheck(_ *cobra.Command, args []string) {
	guess, ok := words.Normalize(args[0])
	if !ok {
		fail("%q is not a %d-letter word", args[0], wordle.WordLen)
	}
	target, ok := words.Normalize(args[1])
	if !ok {
		fail("%q is not a %d-letter word", args[1], wordle.WordLen)
	}

	var fb wordle.Feedback
	if flagStrict {
		cfg, err := loadConfig()
		if err != nil {
			fail("%v", err)
		}
		res := resolver(cfg, newLogger()).Resolve(context.Background())

		rec, err := wordle.NewRound(target, res.Vocabulary).Submit(guess)
		if errors.Is(err, wordle.ErrNotInWordList) {
			fail("Not in word list!")
		}
		if err != nil {
			fail("%v", err)
		}
		fb = rec.Feedback
	} else {
		fb = wordle.Score(guess, target)
	}

	var tiles, names []string
	for i, c := range fb {
		tiles = append(tiles, tileStyles[c].Render(" "+strings.ToUpper(guess[i:i+1])+" "))
		names = append(names, c.String())
	}

	fmt.Println(strings.Join(tiles, " "))
	fmt.Println(strings.Join(names, " "))
	if fb.Solved() {
		fmt.Println("Correct!")
	}
}
