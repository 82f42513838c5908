package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/framecache"
	"github.com/vovakirdan/tui-donut/internal/storage"
	"github.com/vovakirdan/tui-donut/internal/torus"
)

func newTestRenderer(t *testing.T, size int) *torus.Renderer {
	t.Helper()
	cfg := torus.DefaultConfig()
	cfg.View.ScreenSize = size
	cfg.Sampling = torus.Sampling{ThetaSpacing: 0.3, PhiSpacing: 0.1}
	r, err := torus.New(cfg)
	if err != nil {
		t.Fatalf("torus.New() failed: %v", err)
	}
	return r
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}
	if opts.Preset == "" {
		opts.Preset = "classic"
	}
	return NewModel(newTestRenderer(t, 12), core.DefaultConfig(), opts)
}

// send delivers msg and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return updated
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t, Options{})
	start := m.renderer.Rotation()
	step := m.renderer.Step()

	m = send(t, m, TickMsg(time.Now()))
	m = send(t, m, TickMsg(time.Now()))

	want := torus.Rotation{A: start.A + step.A + step.A, B: start.B + step.B + step.B}
	if got := m.renderer.Rotation(); got != want {
		t.Errorf("rotation after two ticks = %+v, expected %+v", got, want)
	}
	if m.frames != 2 {
		t.Errorf("frames = %d, expected 2", m.frames)
	}
	if m.frame.Rotation() != want {
		t.Errorf("displayed frame rotation = %+v, expected %+v", m.frame.Rotation(), want)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.paused {
		t.Fatal("space should pause playback")
	}

	before := m.renderer.Rotation()
	m = send(t, m, TickMsg(time.Now()))
	if m.renderer.Rotation() != before || m.frames != 0 {
		t.Error("paused playback should not advance")
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("status line should show paused state")
	}

	m = send(t, m, runeKey("p"))
	if m.paused {
		t.Error("p should resume playback")
	}
}

func TestModelShadeToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.config.Shaded {
		t.Fatal("shading should start disabled")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.config.Shaded {
		t.Error("enter should enable shading")
	}
	m = send(t, m, runeKey("s"))
	if m.config.Shaded {
		t.Error("s should disable shading")
	}
}

func TestModelSpeed(t *testing.T) {
	m := newTestModel(t, Options{})
	rate := m.config.TickRate

	m = send(t, m, runeKey("+"))
	if m.config.TickRate != rate+1 {
		t.Errorf("TickRate = %d, expected %d", m.config.TickRate, rate+1)
	}

	for i := 0; i < 200; i++ {
		m = send(t, m, runeKey("+"))
	}
	if m.config.TickRate != core.MaxTickRate {
		t.Errorf("TickRate = %d, expected clamp at %d", m.config.TickRate, core.MaxTickRate)
	}

	for i := 0; i < 200; i++ {
		m = send(t, m, runeKey("-"))
	}
	if m.config.TickRate != core.MinTickRate {
		t.Errorf("TickRate = %d, expected clamp at %d", m.config.TickRate, core.MinTickRate)
	}
}

func TestModelResizeKeepsRotation(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(t, m, TickMsg(time.Now()))
	rot := m.renderer.Rotation()

	tests := []struct {
		width, height int
		wantSize      int
	}{
		{30, 13, 12},  // height bound: 13 - 1
		{30, 40, 15},  // width bound: (30 + 1) / 2
		{101, 60, 51}, // width bound
		{1, 1, 1},     // never below one cell
	}

	for _, tt := range tests {
		m = send(t, m, tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
		if got := m.frame.Size(); got != tt.wantSize {
			t.Errorf("%dx%d: frame size = %d, expected %d", tt.width, tt.height, got, tt.wantSize)
		}
		if m.renderer.Rotation() != rot {
			t.Errorf("%dx%d: rotation changed to %+v", tt.width, tt.height, m.renderer.Rotation())
		}
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir, Preset: "lowpoly"})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.notice, "saved ") {
		t.Fatalf("notice = %q, expected a saved path", m.notice)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "lowpoly_*.txt"))
	if len(matches) != 1 {
		t.Fatalf("expected 1 screenshot, found %v", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != m.frame.String()+"\n" {
		t.Error("screenshot does not match the displayed frame")
	}
}

func TestSaveScreenshotFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	os.WriteFile(blocker, []byte("x"), 0o644)

	f := newTestRenderer(t, 4).Frame()
	_, err := SaveScreenshot(filepath.Join(blocker, "shots"), "classic", f, time.Now())
	if !errors.Is(err, core.ErrIOFailure) {
		t.Errorf("expected ErrIOFailure, got %v", err)
	}
}

func TestModelQuitRecordsSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Options{Store: store, Preset: "donutc"})
	for i := 0; i < 3; i++ {
		m = send(t, m, TickMsg(time.Now()))
	}

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	m = next.(Model)
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	// A second record attempt is a no-op
	m.recordSession()

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if s := sessions[0]; s.Preset != "donutc" || s.Origin != OriginLocal || s.Frames != 3 {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestModelUsesCache(t *testing.T) {
	cache := framecache.New(16)
	a := newTestModel(t, Options{Cache: cache})
	b := newTestModel(t, Options{Cache: cache})

	a = send(t, a, TickMsg(time.Now()))
	b = send(t, b, TickMsg(time.Now()))
	if a.frame != b.frame {
		t.Error("models at the same rotation should share a cached frame")
	}
}

func TestRenderFrame(t *testing.T) {
	f := newTestRenderer(t, 12).Frame()

	if got := RenderFrame(f, false); got != f.Spaced() {
		t.Error("plain rendering should match the spaced frame")
	}

	// Styles may be stripped without a color terminal, the text must survive.
	shaded := RenderFrame(f, true)
	if stripped := stripANSI(shaded); stripped != f.Spaced() {
		t.Errorf("shaded rendering lost glyphs:\n%s\nexpected:\n%s", stripped, f.Spaced())
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
