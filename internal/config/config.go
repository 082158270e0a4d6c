// Package config provides YAML-based configuration loading for the game:
// word sources, animation timing, daily salt, storage and SSH settings.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Words     WordsConfig     `yaml:"words"`
	Animation AnimationConfig `yaml:"animation"`
	Daily     DailyConfig     `yaml:"daily"`
	Storage   StorageConfig   `yaml:"storage"`
	SSH       SSHConfig       `yaml:"ssh"`
}

// WordsConfig describes where the vocabulary comes from.
type WordsConfig struct {
	Path         string        `yaml:"path"`
	URL          string        `yaml:"url"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// AnimationConfig controls tile reveal and message timing.
type AnimationConfig struct {
	FlipMS    int `yaml:"flip_ms"`    // One tile flip
	StaggerMS int `yaml:"stagger_ms"` // Delay between neighbouring flips
	FlashMS   int `yaml:"flash_ms"`   // How long rejection messages stay visible
}

// Flip returns the flip duration.
func (a AnimationConfig) Flip() time.Duration {
	return time.Duration(a.FlipMS) * time.Millisecond
}

// Stagger returns the delay between tile flips.
func (a AnimationConfig) Stagger() time.Duration {
	return time.Duration(a.StaggerMS) * time.Millisecond
}

// Flash returns how long a message is shown.
func (a AnimationConfig) Flash() time.Duration {
	return time.Duration(a.FlashMS) * time.Millisecond
}

// DailyConfig configures daily word selection.
type DailyConfig struct {
	Salt string `yaml:"salt"`
}

// StorageConfig configures round history persistence.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
