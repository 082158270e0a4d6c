package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{EnvWordListPath, EnvWordListURL, EnvDBPath, EnvDailySalt} {
		t.Setenv(key, "")
	}
	return home
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	assert.Equal(t, DefaultConfig(), embeddedDefault())
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 8*time.Second, cfg.Words.FetchTimeout)
	assert.Equal(t, 280*time.Millisecond, cfg.Animation.Flip())
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "words:\n  path: /tmp/words.txt\n  fetch_timeout: 2s\nanimation:\n  flip_ms: 100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/words.txt", cfg.Words.Path)
	assert.Equal(t, 2*time.Second, cfg.Words.FetchTimeout)
	assert.Equal(t, 100, cfg.Animation.FlipMS)

	// Untouched settings keep their defaults
	assert.Equal(t, DefaultConfig().Words.URL, cfg.Words.URL)
	assert.Equal(t, 120, cfg.Animation.StaggerMS)
	assert.Equal(t, ":23234", cfg.SSH.Address)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("words: [unclosed"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".wordle")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("daily:\n  salt: pepper\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pepper", cfg.Daily.Salt)
}

func TestLoadBrokenUserConfigIsIgnored(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".wordle")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("daily: [nope"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)

	t.Setenv(EnvWordListPath, "/data/words.txt")
	t.Setenv(EnvWordListURL, "http://example.test/words")
	t.Setenv(EnvDBPath, "/data/rounds.db")
	t.Setenv(EnvDailySalt, "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/data/words.txt", cfg.Words.Path)
	assert.Equal(t, "http://example.test/words", cfg.Words.URL)
	assert.Equal(t, "/data/rounds.db", cfg.Storage.DBPath)
	assert.Equal(t, "s3cret", cfg.Daily.Salt)
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)

	assert.Equal(t, filepath.Join(home, ".wordle", "x.txt"), ExpandHome("~/.wordle/x.txt"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~user/file", ExpandHome("~user/file"))
}
