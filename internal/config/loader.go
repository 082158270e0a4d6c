package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvWordListPath = "WORDLE_WORDLIST_PATH"
	EnvWordListURL  = "WORDLE_WORDLIST_URL"
	EnvDBPath       = "WORDLE_DB"
	EnvDailySalt    = "WORDLE_DAILY_SALT"
)

// Load loads the configuration.
// Search order: customPath -> ~/.wordle/config.yaml -> ./configs/wordle.yaml -> embedded default.
// Files overlay the defaults, so a partial file only changes what it names.
// Environment overrides are applied last.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "wordle.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			cfg = candidate
			break
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// embeddedDefault parses the embedded YAML over the hardcoded defaults.
func embeddedDefault() Config {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// applyEnvOverrides replaces settings with non-empty environment values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvWordListPath); v != "" {
		c.Words.Path = v
	}
	if v := os.Getenv(EnvWordListURL); v != "" {
		c.Words.URL = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv(EnvDailySalt); v != "" {
		c.Daily.Salt = v
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordle", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
// The path is returned unchanged if it has no ~ or home cannot be determined.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
