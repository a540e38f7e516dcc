// Package tui runs Steelwall in a terminal with Bubble Tea. It maps keys and
// the mouse to scene actions, drives the scene director at a fixed tick
// rate, and serves the same program over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/steelwall/internal/core"
)

// TickMsg advances the director by one frame of DT seconds.
type TickMsg struct {
	At time.Time
	DT float64
}

// tickCmd schedules the next frame. A non-positive tick rate falls back to
// the runtime default instead of ticking with a zero interval.
func tickCmd(rt core.RuntimeConfig) tea.Cmd {
	dt := rt.DeltaTime()
	return tea.Tick(time.Duration(dt*float64(time.Second)), func(at time.Time) tea.Msg {
		return TickMsg{At: at, DT: dt}
	})
}
