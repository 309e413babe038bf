// Package tui provides the Bubble Tea integration for the arcade.
// It owns the terminal loop, key-to-action mapping, menu navigation,
// and the projection of game screen buffers onto styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to drive one fixed simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command emitting tick messages at the
// given rate. A non-positive rate falls back to 60 fps.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
