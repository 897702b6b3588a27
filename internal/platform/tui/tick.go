// Package tui runs the Pong game in a terminal through Bubble Tea.
// It translates key messages to key identifiers, draws onto a cell buffer
// and drives the game loop with generation-tagged ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one loop tick. Gen is the loop chain that armed it;
// ticks from a cancelled chain are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a command that sends one tick after delay.
func tickCmd(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
