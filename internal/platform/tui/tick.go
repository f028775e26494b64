// Package tui provides the Bubble Tea integration for the sweeper:
// the game screen, the difficulty menu, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is the game clock resolution.
const TickInterval = time.Second

// TickMsg advances the game clock. Gen identifies the game the tick was
// scheduled for; ticks from a replaced game are dropped.
type TickMsg struct {
	Gen int
	At  time.Time
}

// generations hands out tick generations. They are unique across every
// game in the process so that an SSH session switching games never accepts
// a tick from the previous one.
var generations atomic.Int64

func nextGen() int {
	return int(generations.Add(1))
}

// tickCmd returns a Bubble Tea command that sends one tick for game gen.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
