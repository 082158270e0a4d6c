package main

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// newLogger builds the CLI logger on stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordle",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagWords != "" {
		cfg.Words.Path = flagWords
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}

// resolver builds the word source resolver for cfg.
func resolver(cfg config.Config, logger *log.Logger) *words.Resolver {
	return &words.Resolver{
		Path:    config.ExpandHome(cfg.Words.Path),
		URL:     cfg.Words.URL,
		Timeout: cfg.Words.FetchTimeout,
		Logger:  logger,
	}
}

// newEnv loads config and resolves the vocabulary shared by every mode.
func newEnv(logger *log.Logger) (registry.Env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return registry.Env{}, err
	}

	res := resolver(cfg, logger).Resolve(context.Background())
	logger.Debug("word list ready", "source", res.Source, "words", res.Vocabulary.Len())

	return registry.Env{
		Vocabulary: res.Vocabulary,
		Config:     cfg,
		Now:        time.Now,
	}, nil
}

// openStore opens the rounds database, or returns nil with a warning.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   playerName(),
	}
}

// playerName returns the local user name recorded with rounds.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
