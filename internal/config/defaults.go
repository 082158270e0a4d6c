package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wordle.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/wordle.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Words: WordsConfig{
			Path:         "~/.wordle/wordlist.txt",
			URL:          "https://raw.githubusercontent.com/tabatkins/wordle-list/main/words",
			FetchTimeout: 8 * time.Second,
		},
		Animation: AnimationConfig{
			FlipMS:    280,
			StaggerMS: 120,
			FlashMS:   1600,
		},
		Daily: DailyConfig{
			Salt: "tui-wordle",
		},
		Storage: StorageConfig{
			DBPath: "~/.wordle/rounds.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
