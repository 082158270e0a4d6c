package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

var (
	flagRecent     int
	flagAllPlayers bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show statistics for a mode",
	Long: `Display win rate, streaks, guess distribution, best scores and the
most recent rounds. Without a mode, every mode is shown.

Win rate, streaks and the distribution are the current user's unless
--all-players is given. Recent rounds and top scores cover everyone.

Examples:
  wordle stats
  wordle stats daily
  wordle stats classic --recent 20
  wordle stats --all-players`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent rounds to list")
	statsCmd.Flags().BoolVar(&flagAllPlayers, "all-players", false, "Aggregate statistics over every player")
}

func runStats(_ *cobra.Command, args []string) {
	var modes []registry.GameInfo
	for _, g := range registry.List() {
		if len(args) == 0 || g.ID == args[0] {
			modes = append(modes, g)
		}
	}
	if len(modes) == 0 {
		fail("unknown mode %q\nRun 'wordle list' to see available modes.", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening rounds database: %v", err)
	}
	defer store.Close()

	player := playerName()
	if flagAllPlayers {
		player = ""
	}

	for i, g := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printStats(store, g, player); err != nil {
			fail("%v", err)
		}
	}
}

// printStats writes the statistics report for one mode. An empty player
// aggregates every player.
func printStats(store *storage.Store, g registry.GameInfo, player string) error {
	st, err := store.Stats(g.ID, player)
	if err != nil {
		return err
	}

	if player == "" {
		fmt.Printf("Statistics - %s (all players)\n", g.Title)
	} else {
		fmt.Printf("Statistics - %s (%s)\n", g.Title, player)
	}
	fmt.Println()

	if st.Played == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Printf("Play 'wordle play %s' to start your streak!\n", g.ID)
		return nil
	}

	fmt.Printf("  Played  %d\n", st.Played)
	fmt.Printf("  Win %%   %.0f\n", st.WinRate())
	fmt.Printf("  Streak  %d (max %d)\n", st.CurrentStreak, st.MaxStreak)
	fmt.Printf("  Best    %d\n", st.HighScore)
	fmt.Println()

	fmt.Println("Guess distribution")
	peak := 0
	for _, n := range st.Distribution {
		peak = max(peak, n)
	}
	for i, n := range st.Distribution {
		bar := 0
		if peak > 0 {
			bar = n * 30 / peak
		}
		fmt.Printf("  %d %s %d\n", i+1, strings.Repeat("#", bar), n)
	}

	recent, err := store.RecentRounds(g.ID, flagRecent)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent rounds")
	fmt.Printf("  %-16s  %-6s  %-6s  %-5s  %s\n", "Date", "Word", "Result", "Score", "Guesses")
	fmt.Printf("  %-16s  %-6s  %-6s  %-5s  %s\n", "----", "----", "------", "-----", "-------")
	for _, r := range recent {
		result := "X/6"
		if r.Won {
			result = fmt.Sprintf("%d/6", r.Attempts)
		}
		fmt.Printf("  %-16s  %-6s  %-6s  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			strings.ToUpper(r.Target),
			result,
			r.Score,
			strings.Join(r.Guesses, " "),
		)
	}

	top, err := store.TopScores(g.ID, 5)
	if err != nil {
		return err
	}
	if len(top) > 0 && top[0].Score > 0 {
		fmt.Println()
		fmt.Println("Top scores")
		for i, r := range top {
			if r.Score == 0 {
				break
			}
			fmt.Printf("  #%d  %d  %s  %s\n", i+1, r.Score, strings.ToUpper(r.Target), r.Player)
		}
	}

	return nil
}
