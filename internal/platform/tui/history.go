package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-donut/internal/storage"
)

// History layout constants
const (
	maxHistoryRows = 100 // Max entries to load per tab
	historyChrome  = 8   // Rows used by title, tabs, borders and help
)

// HistoryTab selects which records the history view shows.
type HistoryTab int

const (
	TabCaptures HistoryTab = iota
	TabSessions
)

// String returns the tab title.
func (t HistoryTab) String() string {
	if t == TabSessions {
		return "Sessions"
	}
	return "Captures"
}

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing captures and sessions.
type HistoryModel struct {
	store     *storage.Store
	tab       HistoryTab
	rows      []table.Row
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	loadErr   error
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewHistoryModel creates a new history model. A nil store shows an
// empty history.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRows()
	return m
}

// columns returns the table columns for the current tab.
func (m HistoryModel) columns() []table.Column {
	if m.tab == TabSessions {
		return []table.Column{
			{Title: "Date", Width: 16},
			{Title: "Preset", Width: 10},
			{Title: "Origin", Width: 16},
			{Title: "Frames", Width: 8},
			{Title: "Time", Width: 8},
		}
	}

	// Path takes what is left of the width
	pathWidth := m.width - 16 - 10 - 8 - 6 - 8 - 16
	if pathWidth < 12 {
		pathWidth = 12
	}
	return []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Preset", Width: 10},
		{Title: "Frames", Width: 8},
		{Title: "Size", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Path", Width: pathWidth},
	}
}

// createTable creates a new table for the current tab.
func (m HistoryModel) createTable() table.Model {
	height := m.height - historyChrome
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRows reads the current tab's records into the table.
func (m *HistoryModel) loadRows() {
	m.rows = nil
	m.loadErr = nil

	if m.store != nil {
		switch m.tab {
		case TabCaptures:
			captures, err := m.store.RecentCaptures(maxHistoryRows)
			m.loadErr = err
			for _, c := range captures {
				m.rows = append(m.rows, table.Row{
					c.CreatedAt.Format("Jan 02 15:04"),
					c.Preset,
					fmt.Sprintf("%d", c.Frames),
					fmt.Sprintf("%d", c.ScreenSize),
					c.Duration.Round(time.Millisecond).String(),
					c.Path,
				})
			}
		case TabSessions:
			sessions, err := m.store.RecentSessions(maxHistoryRows)
			m.loadErr = err
			for _, s := range sessions {
				m.rows = append(m.rows, table.Row{
					s.CreatedAt.Format("Jan 02 15:04"),
					s.Preset,
					s.Origin,
					fmt.Sprintf("%d", s.Frames),
					s.Duration.Round(time.Second).String(),
				})
			}
		}
	}

	// Rows must match the columns, so clear before switching
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// switchTab moves to the tab delta steps away.
func (m *HistoryModel) switchTab(delta int) {
	m.tab = HistoryTab((int(m.tab) + delta + 2) % 2)
	m.loadRows()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("HISTORY"), m.width))
	b.WriteString("\n\n")

	// Tabs
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, t := range []HistoryTab{TabCaptures, TabSessions} {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.rows) == 0 && m.tab == TabCaptures:
		return emptyStyle.Render("No captures recorded yet.\nRun 'donut capture' to make one!")
	case len(m.rows) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nRun 'donut spin' to start one!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history view.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
