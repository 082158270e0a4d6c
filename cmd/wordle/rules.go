package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed rules.md
var rulesMarkdown string

var flagRulesWidth int

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show how to play",
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func init() {
	rulesCmd.Flags().IntVar(&flagRulesWidth, "width", 80, "Word wrap width")
}

func runRules(_ *cobra.Command, _ []string) {
	out, err := renderRules(flagRulesWidth)
	if err != nil {
		// Fall back to the raw markdown
		fmt.Print(rulesMarkdown)
		return
	}
	fmt.Print(out)
}

// renderRules renders the rules markdown for the terminal.
func renderRules(width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(rulesMarkdown)
}
