package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wordle SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the mode menu. The word list is
resolved once at startup and shared by every session. Rounds are stored
per-server and recorded under the SSH user name.

Host key handling:
  - If --host-key (or ssh.host_key in the config) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.wordle/host_key

Examples:
  wordle serve                           # Listen on :23234 with auto-generated key
  wordle serve --ssh :2222               # Listen on port 2222
  wordle serve --host-key ./my_host_key  # Use specific host key
  wordle serve --db ./rounds.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger()
	env, err := newEnv(logger)
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.SSHServerConfigFrom(env.Config.SSH)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	store := openStore(env.Config, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, env, store, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting wordle SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
