package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// Statistics layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show mode list sidebar
	sidebarWidth       = 20  // Width of mode list sidebar
	maxRounds          = 100 // Max rounds to load
	distBarWidth       = 24  // Width of the longest distribution bar
)

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev mode"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next mode"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the statistics screen.
type StatsModel struct {
	modes       []registry.GameInfo
	modeCursor  int
	store       *storage.Store
	player      string // Whose streaks are shown; empty for everyone
	stats       *storage.Stats
	rounds      []storage.RoundRecord
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	renderer    *lipgloss.Renderer
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show mode list sidebar
}

// NewStatsModel creates a statistics model for player.
func NewStatsModel(store *storage.Store, player string, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		modes:       registry.List(),
		store:       store,
		player:      player,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		renderer:    lipgloss.DefaultRenderer(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()

	if len(m.modes) > 0 {
		m.load(m.modes[0].ID)
	}

	return m
}

// WithRenderer sets the lipgloss renderer used for output.
func (m StatsModel) WithRenderer(r *lipgloss.Renderer) StatsModel {
	if r != nil {
		m.renderer = r
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Word", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Score", Width: 6},
		{Title: "Player", Width: 10},
	}

	height := m.height - 20 // Title, summary, distribution, help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(palette[core.ColorLetter]).
		Background(palette[core.ColorTileExact]).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads statistics and recent rounds for the given mode.
func (m *StatsModel) load(mode string) {
	m.stats = &storage.Stats{Mode: mode, Player: m.player}
	m.rounds = nil

	if m.store != nil {
		if st, err := m.store.Stats(mode, m.player); err == nil {
			m.stats = st
		}
		if rounds, err := m.store.RecentRounds(mode, maxRounds); err == nil {
			m.rounds = rounds
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		result := "X/6"
		if r.Won {
			result = fmt.Sprintf("%d/6", r.Attempts)
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			strings.ToUpper(r.Target),
			result,
			fmt.Sprintf("%d", r.Score),
			r.Player,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the statistics model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode), key.Matches(msg, m.keys.Right):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + 1) % len(m.modes)
				m.load(m.modes[m.modeCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode), key.Matches(msg, m.keys.Left):
			if len(m.modes) > 0 {
				m.modeCursor--
				if m.modeCursor < 0 {
					m.modeCursor = len(m.modes) - 1
				}
				m.load(m.modes[m.modeCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(palette[core.ColorTitle])

	title := "STATISTICS"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("STATISTICS - %s", m.modes[m.modeCursor].Title)
	}

	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the statistics with a sidebar for mode selection.
func (m StatsModel) renderWideLayout() string {
	sidebarStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.modes {
		cursor := "  "
		style := m.renderer.NewStyle()
		if i == m.modeCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(palette[core.ColorTileExact])
		}

		name := g.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		m.renderPanel(),
	)
}

// renderNarrowLayout renders the statistics with mode tabs above the panel.
func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(palette[core.ColorLetter]).
		Background(palette[core.ColorTileExact]).
		Padding(0, 1)

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.modeCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.modes) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderPanel())

	return b.String()
}

// renderPanel renders the summary, distribution and round table.
func (m StatsModel) renderPanel() string {
	panelStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if m.stats == nil || m.stats.Played == 0 {
		emptyStyle := m.renderer.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return panelStyle.Render(emptyStyle.Render("No rounds recorded yet.\nPlay a round to start your streak!"))
	}

	parts := []string{
		m.renderSummary(),
		"",
		m.renderDistribution(),
		"",
		m.table.View(),
	}
	return panelStyle.Render(strings.Join(parts, "\n"))
}

// renderSummary renders the headline numbers.
func (m StatsModel) renderSummary() string {
	numStyle := m.renderer.NewStyle().Bold(true).Width(10).Align(lipgloss.Center)
	labelStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241")).Width(10).Align(lipgloss.Center)

	st := m.stats
	cells := []struct {
		value string
		label string
	}{
		{fmt.Sprintf("%d", st.Played), "Played"},
		{fmt.Sprintf("%.0f", st.WinRate()), "Win %"},
		{fmt.Sprintf("%d", st.CurrentStreak), "Streak"},
		{fmt.Sprintf("%d", st.MaxStreak), "Max"},
	}

	columns := make([]string, len(cells))
	for i, c := range cells {
		columns[i] = lipgloss.JoinVertical(lipgloss.Center, numStyle.Render(c.value), labelStyle.Render(c.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderDistribution renders one bar per number of guesses.
func (m StatsModel) renderDistribution() string {
	barStyle := m.renderer.NewStyle().
		Foreground(palette[core.ColorLetter]).
		Background(palette[core.ColorTileAbsent])

	peak := 0
	for _, n := range m.stats.Distribution {
		peak = max(peak, n)
	}

	lines := make([]string, 0, len(m.stats.Distribution))
	for i, n := range m.stats.Distribution {
		width := 1
		if peak > 0 {
			width = max(1, n*distBarWidth/peak)
		}
		label := fmt.Sprintf("%d", n)
		bar := label + strings.Repeat(" ", max(0, width-len(label)))
		lines = append(lines, fmt.Sprintf("%d %s", i+1, barStyle.Render(" "+bar+" ")))
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the statistics screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunStats(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	model := NewStatsModel(store, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
