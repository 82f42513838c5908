package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/framecache"
	"github.com/vovakirdan/tui-donut/internal/storage"
	"github.com/vovakirdan/tui-donut/internal/torus"
)

// statusLines is the number of terminal rows kept below the frame.
const statusLines = 1

// Origins recorded with playback sessions.
const (
	OriginLocal = "local"
	originSSH   = "ssh:"
)

// Options configures a playback model.
type Options struct {
	Preset        string            // Name shown in the status line and used for screenshots
	Origin        string            // Session origin recorded in history (default "local")
	Cache         *framecache.Cache // Shared frame cache, may be nil
	Store         *storage.Store    // Session history, may be nil
	ScreenshotDir string            // Default ~/.donut/screenshots
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model for interactive donut playback.
type Model struct {
	renderer *torus.Renderer
	frame    *torus.Frame
	opts     Options
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	started  time.Time
	frames   int    // Frames advanced since start
	notice   string // One-off message shown in the status line
	paused   bool
	quitting bool
	recorded bool // Whether the session has been saved to history
}

// NewModel creates a playback model for r. The renderer is advanced in
// place as the model ticks.
func NewModel(r *torus.Renderer, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Origin == "" {
		opts.Origin = OriginLocal
	}
	cfg = cfg.WithTickRate(cfg.TickRate)

	return Model{
		renderer: r,
		frame:    opts.Cache.Frame(r),
		opts:     opts,
		config:   cfg,
		keys:     NewKeyMapper(),
		help:     help.New(),
		started:  time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.recordSession()
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionShade:
		m.config.Shaded = !m.config.Shaded
	case core.ActionFaster:
		m.config = m.config.WithTickRate(m.config.TickRate + 1)
	case core.ActionSlower:
		m.config = m.config.WithTickRate(m.config.TickRate - 1)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionScreenshot:
		path, err := SaveScreenshot(m.opts.ScreenshotDir, m.opts.Preset, m.frame, time.Now())
		if err != nil {
			m.notice = "screenshot failed: " + err.Error()
		} else {
			m.notice = "saved " + path
		}
	}

	return m, nil
}

// handleResize re-fits the frame to the window, keeping the rotation.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	size := core.FitSquare(msg.Width, msg.Height, statusLines)
	cfg := m.renderer.Config()
	if size == cfg.View.ScreenSize {
		return m, nil
	}

	rot := m.renderer.Rotation()
	cfg.View.ScreenSize = size
	cfg.Initial = &rot

	r, err := torus.New(cfg)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.renderer = r
	m.frame = m.opts.Cache.Frame(r)
	return m, nil
}

// handleTick advances the rotation and renders the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.renderer.Advance()
		m.frame = m.opts.Cache.Frame(m.renderer)
		m.frames++
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordSession saves the session to history once.
func (m *Model) recordSession() {
	if m.recorded || m.opts.Store == nil {
		return
	}
	m.recorded = true

	//nolint:errcheck // Best-effort save, playback ends regardless
	m.opts.Store.SaveSession(storage.SessionRecord{
		Preset:   m.opts.Preset,
		Origin:   m.opts.Origin,
		Frames:   m.frames,
		Duration: time.Since(m.started),
	})
}

// View renders the current frame and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderFrame(m.frame, m.config.Shaded))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine describes the playback state followed by the key help.
func (m Model) statusLine() string {
	state := fmt.Sprintf("%s  %d fps  frame %d", m.opts.Preset, m.config.TickRate, m.frames)
	if m.paused {
		state += "  paused"
	}
	if m.notice != "" {
		state += "  " + noticeStyle.Render(m.notice)
	}
	return statusStyle.Render(state) + "  " + statusStyle.Render(m.help.View(m.keys.Keys()))
}

// SaveScreenshot writes f to dir as <preset>_<timestamp>.txt and returns
// the file path. An empty dir means ~/.donut/screenshots.
func SaveScreenshot(dir, preset string, f *torus.Frame, now time.Time) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: %w: cannot get home directory: %v", core.ErrIOFailure, err)
		}
		dir = filepath.Join(home, ".donut", "screenshots")
	}
	if preset == "" {
		preset = "donut"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: %w: cannot create %s: %v", core.ErrIOFailure, dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", preset, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(f.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: %w: cannot write %s: %v", core.ErrIOFailure, path, err)
	}
	return path, nil
}

// Run starts the Bubble Tea program for r and records the session when it
// ends.
func Run(r *torus.Renderer, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(r, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.recordSession()
	}
	return err
}
