package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/torus"
)

// grayStyles returns one foreground style per illumination level,
// darkest first.
func grayStyles(levels int) []lipgloss.Style {
	styles := make([]lipgloss.Style, levels)
	for i := range styles {
		c := core.GrayLevel(i, levels)
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c))))
	}
	return styles
}

// RenderFrame converts a frame to a string for display, one space between
// glyphs. In shaded mode each glyph is also tinted by its illumination.
// Groups adjacent cells with the same level to minimize ANSI escape sequences.
func RenderFrame(f *torus.Frame, shaded bool) string {
	if !shaded {
		return f.Spaced()
	}

	styles := grayStyles(f.Palette().Levels())
	size := f.Size()

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(size*size*4 + size)

	for y := range size {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			level := f.Level(x, y)

			// Collect consecutive cells with the same level
			var run strings.Builder
			for x < size && f.Level(x, y) == level {
				if run.Len() > 0 {
					run.WriteByte(' ')
				}
				run.WriteByte(f.Glyph(x, y))
				x++
			}

			if level < 0 {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles[level].Render(run.String()))
		}
	}
	return sb.String()
}
