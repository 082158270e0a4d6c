package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start playing the given mode (default: classic).

Modes:
  classic  - A random word every round
  daily    - The same word for everyone today (UTC)

Controls:
  A-Z        - Type a letter
  Backspace  - Erase the last letter
  Enter      - Submit the guess
  Y/Enter    - Play again (classic mode, after the round)
  N/Esc      - Quit
  Ctrl+C     - Quit at any time

Examples:
  wordle play
  wordle play daily
  wordle play --seed 42
  wordle play --words ./my-words.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode := string(wordle.ModeClassic)
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fail("unknown mode %q\nRun 'wordle list' to see available modes.", mode)
	}

	logger := newLogger()
	env, err := newEnv(logger)
	if err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(mode, env)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore(env.Config, logger)

	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
