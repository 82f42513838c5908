package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-donut/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{"p pauses", runeKey("p"), core.ActionPause},
		{"enter shades", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionShade},
		{"s shades", runeKey("s"), core.ActionShade},
		{"plus speeds up", runeKey("+"), core.ActionFaster},
		{"equals speeds up", runeKey("="), core.ActionFaster},
		{"minus slows down", runeKey("-"), core.ActionSlower},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"question mark toggles help", runeKey("?"), core.ActionHelp},
		{"unbound letter", runeKey("x"), core.ActionNone},
		{"arrow keys do nothing", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("FullHelp lists %d bindings, expected 7", total)
	}
}
