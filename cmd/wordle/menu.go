package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for statistics.
After a round ends and you decline to play again, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected mode
  Tab          - Statistics
  Q            - Quit

Examples:
  wordle menu
  wordle menu --db ./rounds.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	env, err := newEnv(logger)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(env.Config, logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsStats {
			goBack, statsErr := tui.RunStats(store, cfg.Player, cfg.ScreenW, cfg.ScreenH)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.Mode, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		quit, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if quit {
			return
		}
	}
}
