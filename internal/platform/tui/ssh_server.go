package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.wordle/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int
}

// SSHServerConfigFrom builds the server configuration from the loaded config.
func SSHServerConfigFrom(cfg config.SSHConfig) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.Address,
		HostKeyPath: config.ExpandHome(cfg.HostKey),
		IdleTimeout: cfg.IdleTimeout,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server serving the game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	env    registry.Env
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. The vocabulary in env is shared by
// every session; store may be nil.
func NewSSHServer(cfg SSHServerConfig, env registry.Env, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "wordle-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		env:    env,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".wordle", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		wish.Fatalln(sshSession, "no PTY requested; connect with ssh -t")
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
		Player:   sshSession.User(),
	}

	model := NewSessionModel(s.env, s.store, cfg).WithRenderer(bubbletea.MakeRenderer(sshSession))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := uuid.NewString()
		start := time.Now()
		s.logger.Info("session started",
			"session", id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"session", id,
			"user", sshSession.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "words", s.env.Vocabulary.Len())

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionView is the screen a session is on.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewStats
)

// SessionModel manages the full session flow: menu -> game or stats -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	env      registry.Env
	store    *storage.Store
	config   core.RuntimeConfig
	renderer *lipgloss.Renderer
	view     sessionView
	menu     MenuModel
	game     Model
	stats    StatsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env registry.Env, store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		env:    env,
		store:  store,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

// WithRenderer sets the renderer for every screen of the session.
func (m SessionModel) WithRenderer(r *lipgloss.Renderer) SessionModel {
	m.renderer = r
	m.menu = m.menu.WithRenderer(r)
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsStats():
		m.stats = NewStatsModel(m.store, m.config.Player, m.config.ScreenW, m.config.ScreenH).WithRenderer(m.renderer)
		m.view = viewStats
		return m, m.stats.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().Mode, m.env)
		if err != nil {
			// Shouldn't happen since menu only shows registered modes
			return m, nil
		}
		m.config.Seed = time.Now().UnixNano()
		m.game = NewModel(game, m.store, m.config).WithRenderer(m.renderer)
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateStats handles updates when on the statistics screen.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if statsModel, ok := newModel.(StatsModel); ok {
		m.stats = statsModel
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stats.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so its statistics are current.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.store, m.config).WithRenderer(m.renderer)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewStats:
		return m.stats.View()
	default:
		return m.menu.View()
	}
}
