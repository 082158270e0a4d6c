package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// Model is the Bubble Tea model for playing a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *lipgloss.Renderer
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64
	quitting   bool
	backToMenu bool
	roundSaved bool // Whether the current round has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
	}
}

// WithRenderer sets the lipgloss renderer used for output (one per SSH session).
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.gameState.GameOver) {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc while playing, or N/Esc at the prompt, ends the session
	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events without restarting the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Loop != m.loop {
		return m, nil
	}

	// Check for play-again
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver && m.replayable() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.roundSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.loop, m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the round once, after the reveal has finished
	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

// replayer is implemented by games that limit play-again, such as daily mode.
type replayer interface {
	Replayable() bool
}

// replayable reports whether the game accepts a new round after this one.
func (m Model) replayable() bool {
	if r, ok := m.game.(replayer); ok {
		return r.Replayable()
	}
	return true
}

// saveRound persists the finished round.
func (m *Model) saveRound() {
	if m.store == nil {
		return
	}
	res := m.game.Result()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(storage.RoundRecord{
		RoundID:  uuid.NewString(),
		Mode:     res.Mode,
		Player:   m.config.Player,
		Target:   res.Target,
		Guesses:  res.Guesses,
		Won:      res.Won,
		Attempts: res.Attempts,
		Score:    res.Score,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := config.ExpandHome(filepath.Join("~", ".wordle", "screenshots"))
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.renderer, m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user ended the game without quitting.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for the given game.
// quit reports whether the user asked to leave entirely rather than end the game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return true, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return true, nil
	}
	return m.IsQuitting(), nil
}
