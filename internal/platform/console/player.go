// Package console plays the donut on a plain ANSI terminal without taking
// over the screen, redrawing each frame from the cursor home position.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/torus"
)

// ANSI control sequences.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
)

// Player writes frames to Out until Limit frames have been shown or the
// context is cancelled.
type Player struct {
	Out   io.Writer
	Delay time.Duration // Pause between frames
	Limit int           // Frames to show (0 = until cancelled)
	Clear bool          // Clear the screen once before the first frame
}

// Run plays r: each iteration advances the rotation, renders the frame and
// writes it. Cancellation is a normal stop and returns nil. Write failures
// wrap core.ErrIOFailure.
func (p Player) Run(ctx context.Context, r *torus.Renderer) (shown int, err error) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	if p.Clear {
		if _, err := io.WriteString(out, clearScreen); err != nil {
			return 0, fmt.Errorf("console: %w: %v", core.ErrIOFailure, err)
		}
	}

	var timer *time.Timer
	if p.Delay > 0 {
		timer = time.NewTimer(p.Delay)
		defer timer.Stop()
	}

	for p.Limit == 0 || shown < p.Limit {
		if ctx.Err() != nil {
			return shown, nil
		}

		r.Advance()
		frame := r.Frame()
		if _, err := io.WriteString(out, cursorHome+frame.Spaced()+"\n"); err != nil {
			return shown, fmt.Errorf("console: %w: %v", core.ErrIOFailure, err)
		}
		shown++

		if timer == nil {
			continue
		}
		timer.Reset(p.Delay)
		select {
		case <-ctx.Done():
			return shown, nil
		case <-timer.C:
		}
	}
	return shown, nil
}

// FitSize returns the largest frame size that fits the terminal behind fd
// with reserved rows left free, or fallback when fd is not a terminal.
func FitSize(fd int, reserved, fallback int) int {
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fallback
	}
	return core.FitSquare(w, h, reserved)
}
