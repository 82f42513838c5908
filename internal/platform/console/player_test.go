package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/torus"
)

func newRenderer(t *testing.T) *torus.Renderer {
	t.Helper()
	cfg := torus.DefaultConfig()
	cfg.View.ScreenSize = 10
	cfg.Sampling = torus.Sampling{ThetaSpacing: 0.3, PhiSpacing: 0.1}
	r, err := torus.New(cfg)
	if err != nil {
		t.Fatalf("torus.New() failed: %v", err)
	}
	return r
}

// failingWriter accepts ok writes, then fails.
type failingWriter struct {
	ok int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errors.New("broken pipe")
	}
	w.ok--
	return len(p), nil
}

func TestPlayerWritesLimitFrames(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(t)
	ref := newRenderer(t)

	shown, err := Player{Out: &buf, Limit: 3}.Run(context.Background(), r)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if shown != 3 {
		t.Errorf("shown = %d, expected 3", shown)
	}

	var want strings.Builder
	for i := 0; i < 3; i++ {
		ref.Advance()
		want.WriteString("\x1b[H" + ref.Frame().Spaced() + "\n")
	}
	if buf.String() != want.String() {
		t.Error("output does not match cursor-home + spaced frames")
	}
	if n := strings.Count(buf.String(), "\x1b[H"); n != 3 {
		t.Errorf("found %d cursor-home sequences, expected 3", n)
	}
}

func TestPlayerClear(t *testing.T) {
	var buf bytes.Buffer
	_, err := Player{Out: &buf, Limit: 2, Clear: true}.Run(context.Background(), newRenderer(t))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1b[2J\x1b[H") {
		t.Error("output should start with clear screen then cursor home")
	}
	if n := strings.Count(buf.String(), "\x1b[2J"); n != 1 {
		t.Errorf("screen cleared %d times, expected once", n)
	}
}

func TestPlayerWriteFailure(t *testing.T) {
	tests := []struct {
		name      string
		ok        int
		clear     bool
		wantShown int
	}{
		{"first frame", 0, false, 0},
		{"third frame", 2, false, 2},
		{"clear screen", 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{Out: &failingWriter{ok: tt.ok}, Limit: 5, Clear: tt.clear}
			shown, err := p.Run(context.Background(), newRenderer(t))
			if !errors.Is(err, core.ErrIOFailure) {
				t.Errorf("expected ErrIOFailure, got %v", err)
			}
			if shown != tt.wantShown {
				t.Errorf("shown = %d, expected %d", shown, tt.wantShown)
			}
		})
	}
}

func TestPlayerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	shown, err := Player{Out: &buf, Delay: 5 * time.Millisecond}.Run(ctx, newRenderer(t))
	if err != nil {
		t.Errorf("cancellation should not be an error, got %v", err)
	}
	if shown == 0 {
		t.Error("expected at least one frame before cancellation")
	}
}

func TestPlayerCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	r := newRenderer(t)
	before := r.Rotation()

	shown, err := Player{Out: &buf}.Run(ctx, r)
	if err != nil || shown != 0 || buf.Len() != 0 {
		t.Errorf("Run() = %d, %v with %d bytes written, expected nothing", shown, err, buf.Len())
	}
	if r.Rotation() != before {
		t.Error("rotation should not advance when cancelled before start")
	}
}

func TestFitSizeFallback(t *testing.T) {
	// -1 is never a terminal
	if got := FitSize(-1, 1, 40); got != 40 {
		t.Errorf("FitSize() = %d, expected fallback 40", got)
	}
}
