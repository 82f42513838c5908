// Package tui provides the Bubble Tea front end for interactive donut
// playback, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-donut/internal/core"
)

// TickMsg asks the model to advance the rotation and draw a new frame.
type TickMsg time.Time

// frameInterval converts a frame rate into the pause between frames.
// Rates outside [core.MinTickRate, core.MaxTickRate] are clamped.
func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(core.Clamp(fps, core.MinTickRate, core.MaxTickRate))
}

// tickCmd schedules the next frame at fps frames per second.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
