package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

func newTestModel(t *testing.T) (Model, *wordle.Game, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	vocab := words.NewVocabulary([]string{"crane", "slate", "pious", "store"})
	game := wordle.New(wordle.ModeClassic, registry.Env{Vocabulary: vocab})

	m := NewModel(game, store, core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     7,
		Player:   "alice",
	})
	m.Init()
	return m, game, store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = send(t, m, TickMsg{Loop: m.loop})
	}
	return m
}

func typeGuess(t *testing.T, m Model, w string) Model {
	t.Helper()
	m, _ = send(t, m, runes(w))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return tick(t, m, 1)
}

func TestModelSavesRoundOnce(t *testing.T) {
	m, game, store := newTestModel(t)
	target := game.Snapshot().Target

	m = typeGuess(t, m, target)
	assert.False(t, m.gameState.GameOver, "round over must wait for the reveal")

	m = tick(t, m, 200)
	require.True(t, m.gameState.GameOver)

	rounds, err := store.RecentRounds("classic", 10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, target, rounds[0].Target)
	assert.Equal(t, "alice", rounds[0].Player)
	assert.True(t, rounds[0].Won)
	assert.Equal(t, 6, rounds[0].Score)
	assert.NotEmpty(t, rounds[0].RoundID)
}

func TestModelPlayAgain(t *testing.T) {
	m, game, store := newTestModel(t)

	m = typeGuess(t, m, game.Snapshot().Target)
	m = tick(t, m, 200)
	require.True(t, m.gameState.GameOver)

	m, _ = send(t, m, runes("y"))
	m = tick(t, m, 1)

	assert.False(t, m.gameState.GameOver)
	assert.Equal(t, wordle.PhaseAwaitingInput, game.Phase())
	assert.Empty(t, game.Snapshot().Guesses)

	// A second finished round is saved separately
	m = typeGuess(t, m, game.Snapshot().Target)
	tick(t, m, 200)

	rounds, err := store.RecentRounds("classic", 10)
	require.NoError(t, err)
	assert.Len(t, rounds, 2)
}

func TestModelDailyIgnoresPlayAgain(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	vocab := words.NewVocabulary([]string{"crane", "slate", "pious", "store"})
	game := wordle.New(wordle.ModeDaily, registry.Env{Vocabulary: vocab})
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7, Player: "alice"})
	m.Init()

	m = typeGuess(t, m, game.Snapshot().Target)
	m = tick(t, m, 200)
	require.True(t, m.gameState.GameOver)

	m, _ = send(t, m, runes("y"))
	m = tick(t, m, 5)

	assert.True(t, m.gameState.GameOver, "daily round must not restart")
	assert.Equal(t, wordle.PhaseRoundOver, game.Phase())
	assert.Len(t, game.Snapshot().Guesses, 1)

	rounds, err := store.RecentRounds("daily", 10)
	require.NoError(t, err)
	assert.Len(t, rounds, 1)

	m, _ = send(t, m, runes("n"))
	assert.True(t, m.BackToMenu())
}

func TestModelDeclinePlayAgain(t *testing.T) {
	m, game, _ := newTestModel(t)

	m = typeGuess(t, m, game.Snapshot().Target)
	m = tick(t, m, 200)
	require.True(t, m.gameState.GameOver)

	m, cmd := send(t, m, runes("n"))
	assert.True(t, m.BackToMenu())
	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.View())
}

func TestModelResizeKeepsRound(t *testing.T) {
	m, game, _ := newTestModel(t)

	m, _ = send(t, m, runes("sl"))
	m = tick(t, m, 1)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = tick(t, m, 1)

	assert.Equal(t, "sl", game.Current())
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := send(t, m, TickMsg{Loop: m.loop + 1000})
	assert.Nil(t, cmd)

	_, cmd = send(t, m, TickMsg{Loop: m.loop})
	assert.NotNil(t, cmd)
}

func TestModelCtrlCQuits(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = tick(t, m, 1)

	assert.Contains(t, m.View(), "W O R D L E")
}

func TestMenuSummaryIsPerPlayer(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, player := range []string{"alice", "bob", "bob"} {
		_, err := store.SaveRound(storage.RoundRecord{
			RoundID:  uuid.NewString(),
			Mode:     "classic",
			Player:   player,
			Target:   "crane",
			Guesses:  []string{"crane"},
			Won:      player == "alice",
			Attempts: 1,
			Score:    6,
		})
		require.NoError(t, err)
	}

	summary := modeSummary(store, "classic", "alice")
	assert.Equal(t, "played 1 · win 100% · streak 1", summary)

	summary = modeSummary(store, "classic", "bob")
	assert.Equal(t, "played 2 · win 0% · streak 0", summary)
}
