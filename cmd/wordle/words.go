package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
)

var (
	flagRefresh   bool
	flagPrintList bool
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Resolve the word list and report where it came from",
	Long: `Resolve the vocabulary the same way a round does: the local word list
first, then the remote list, then the built-in fallback. Downloaded lists are
saved to the local path for next time.

Examples:
  wordle words
  wordle words --refresh
  wordle words --print | grep ^cr`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Download the list again, keeping the local list if that fails")
	wordsCmd.Flags().BoolVar(&flagPrintList, "print", false, "Print every word")
}

func runWords(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	r := resolver(cfg, logger)
	ctx := context.Background()

	resolve := r.Resolve
	if flagRefresh {
		resolve = r.Refresh
	}
	res := resolve(ctx)

	if flagPrintList {
		for _, w := range res.Vocabulary.Words() {
			fmt.Println(w)
		}
		return
	}

	fmt.Printf("Source:  %s\n", res.Source)
	fmt.Printf("Words:   %d\n", res.Vocabulary.Len())
	fmt.Printf("Path:    %s\n", config.ExpandHome(cfg.Words.Path))
	fmt.Printf("URL:     %s\n", cfg.Words.URL)
}
