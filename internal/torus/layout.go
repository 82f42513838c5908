package torus

import (
	"fmt"
	"strings"
)

// Layout selects how a frame is laid out as text.
type Layout string

const (
	// LayoutScreen writes one line per screen row, as the frame is shown.
	LayoutScreen Layout = "screen"
	// LayoutReference writes one line per screen column, the orientation
	// of donut.json files produced by the reference renderer.
	LayoutReference Layout = "reference"
)

// ParseLayout parses a layout name. The empty string means screen.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(s); l {
	case "":
		return LayoutScreen, nil
	case LayoutScreen, LayoutReference:
		return l, nil
	default:
		return "", fmt.Errorf("torus: %w: unknown layout %q (use screen or reference)", ErrInvalidConfiguration, s)
	}
}

// Text renders the frame for files in the given layout. Unknown layouts
// fall back to screen.
func (f *Frame) Text(l Layout) string {
	if l == LayoutReference {
		return f.transposed()
	}
	return f.String()
}

// transposed renders columns as lines, left to right.
func (f *Frame) transposed() string {
	size := f.Size()
	var sb strings.Builder
	sb.Grow(size*size + size)
	for x := 0; x < size; x++ {
		if x > 0 {
			sb.WriteByte('\n')
		}
		for y := 0; y < size; y++ {
			sb.WriteByte(f.Glyph(x, y))
		}
	}
	return sb.String()
}
