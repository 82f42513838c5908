package core

import (
	"strings"
)

// Background is the glyph used for cells nothing has been drawn into.
const Background = ' '

// Grid is a 2D glyph buffer. Frames are built on top of it, and the
// platform layers read it back row by row for display or serialization.
type Grid struct {
	width  int
	height int
	cells  []byte
}

// NewGrid creates a new grid with the given dimensions, filled with Background.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	g.cells = make([]byte, g.width*g.height)
	g.Clear()
	return g
}

// Width returns the grid width in glyphs.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in glyphs.
func (g *Grid) Height() int {
	return g.height
}

// Clear fills the entire grid with Background.
func (g *Grid) Clear() {
	g.Fill(Background)
}

// Fill fills the entire grid with the given glyph.
func (g *Grid) Fill(b byte) {
	for i := range g.cells {
		g.cells[i] = b
	}
}

// Set places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(x, y int, b byte) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = b
}

// Get returns the glyph at the given position.
// Returns Background for out-of-bounds coordinates.
func (g *Grid) Get(x, y int) byte {
	if !g.InBounds(x, y) {
		return Background
	}
	return g.cells[y*g.width+x]
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// String converts the grid to text, one line per row, glyphs unseparated.
func (g *Grid) String() string {
	return g.Join("")
}

// Join renders the grid with sep between adjacent glyphs of a row and
// newlines between rows. There is no trailing newline.
func (g *Grid) Join(sep string) string {
	var sb strings.Builder
	rowLen := g.width + Max(g.width-1, 0)*len(sep)
	sb.Grow(rowLen*g.height + g.height)

	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteString(sep)
			}
			sb.WriteByte(g.cells[y*g.width+x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return strings.Repeat(string(Background), g.width)
	}
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// Rows returns every row of the grid, top to bottom.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// Count returns how many cells differ from Background.
func (g *Grid) Count() int {
	n := 0
	for _, b := range g.cells {
		if b != Background {
			n++
		}
	}
	return n
}
