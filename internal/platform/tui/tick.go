// Package tui provides the Bubble Tea integration for the word game.
// It handles the terminal UI loop, input mapping, and round persistence.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it; a replaced model's pending tick is dropped.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick loop identifier.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
