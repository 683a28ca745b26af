package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is the periodic signal that drives the countdown.
type TickMsg struct {
	At time.Time
}

// Tick schedules the next TickMsg after interval.
func Tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}
