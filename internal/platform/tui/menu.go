package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	Mode    string
	Title   string
	Summary string // One-line stats, empty without storage
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	renderer  *lipgloss.Renderer
	quitting  bool
	selected  *MenuItem // Set when user selects a mode
	openStats bool      // True if user pressed Tab for statistics
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))

	for _, g := range modes {
		items = append(items, MenuItem{
			Mode:    g.ID,
			Title:   g.Title,
			Summary: modeSummary(store, g.ID, cfg.Player),
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		renderer:  lipgloss.DefaultRenderer(),
	}
}

// WithRenderer sets the lipgloss renderer used for output.
func (m MenuModel) WithRenderer(r *lipgloss.Renderer) MenuModel {
	if r != nil {
		m.renderer = r
	}
	return m
}

// modeSummary formats the player's headline statistics for a mode.
func modeSummary(store *storage.Store, mode, player string) string {
	if store == nil {
		return ""
	}
	st, err := store.Stats(mode, player)
	if err != nil || st.Played == 0 {
		return "not played yet"
	}
	return fmt.Sprintf("played %d · win %.0f%% · streak %d", st.Played, st.WinRate(), st.CurrentStreak)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the round
		}

	case MenuActionStats:
		m.openStats = true
		return m, tea.Quit // Exit menu to show statistics
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(palette[core.ColorTitle])
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(palette[core.ColorTileExact])
	mutedStyle := m.renderer.NewStyle().Foreground(palette[core.ColorMuted])

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("W O R D L E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if item.Summary != "" {
			b.WriteString(centerText(mutedStyle.Render(item.Summary), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Stats  |  Q: Quit"
	b.WriteString(centerText(mutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the statistics screen.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Mode       string
	Config     core.RuntimeConfig
	WantsStats bool
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsStats():
		result.WantsStats = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.Mode = m.Selected().Mode
	default:
		result.Quit = true
	}

	return result, nil
}
