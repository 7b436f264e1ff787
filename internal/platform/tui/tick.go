// Package tui provides the Bubble Tea integration for breakout.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta bounds the simulated time of one frame so a stalled
// terminal does not tunnel the simulation forward in one huge step.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock converts tick timestamps into frame deltas in seconds.
type frameClock struct {
	last time.Time
}

// delta returns the seconds since the previous tick, clamped to
// [0, maxFrameDelta]. The first tick yields 1/tickRate.
func (c *frameClock) delta(now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	if c.last.IsZero() {
		c.last = now
		return 1 / float64(tickRate)
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return max(0, min(dt, maxFrameDelta))
}
