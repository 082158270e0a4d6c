// wordle is a terminal word-guessing game: find the hidden five-letter word
// in six guesses.
//
// Usage:
//
//	wordle                       - Play a classic round
//	wordle play [mode]           - Play a mode (classic, daily)
//	wordle menu                  - Pick modes and view statistics interactively
//	wordle list                  - List available modes
//	wordle stats [mode]          - Show statistics and recent rounds
//	wordle words [--refresh]     - Resolve the word list and report its source
//	wordle check <guess> <word>  - Score a guess without playing
//	wordle rules                 - Show how to play
//	wordle serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.wordle/config.yaml)
//	--words <path>     - Local word list path
//	--db <path>        - Rounds database path
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible targets
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-wordle/internal/wordle"
)

var (
	// Global flags
	flagConfig   string
	flagWords    string
	flagDBPath   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - guess the five-letter word in your terminal",
	Long: `Wordle is a terminal word-guessing game. Guess the hidden five-letter
word in six tries; after each guess the tiles show which letters are in the
right spot (green), in the word elsewhere (yellow), or not in it (gray).

Running wordle without a command starts a classic round.

Examples:
  wordle
  wordle play daily
  wordle menu
  wordle check alloy llama
  wordle serve`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Optional .env with WORDLE_* overrides
		//nolint:errcheck // A missing .env file is not an error
		godotenv.Load()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to local word list (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to rounds database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
}
