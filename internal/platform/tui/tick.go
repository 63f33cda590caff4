// Package tui hosts the arcade in the terminal with Bubble Tea: the game
// picker, the scoreboard and the fixed-rate loop that drives a game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per simulation frame.
type TickMsg time.Time

// frameInterval returns the duration of one frame at tickRate frames per
// second. Non-positive rates fall back to 60.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
