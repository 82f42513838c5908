package torus

import "github.com/vovakirdan/tui-donut/internal/core"

// Frame is one rendered image. It is immutable and safe to share.
type Frame struct {
	grid     *core.Grid
	levels   []int16
	palette  Palette
	rotation Rotation
}

// newFrame resolves a finished depth buffer into glyphs.
func newFrame(depth *depthBuffer, palette Palette, rot Rotation) *Frame {
	size := depth.size
	f := &Frame{
		grid:     core.NewGrid(size, size),
		levels:   make([]int16, size*size),
		palette:  palette,
		rotation: rot,
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			level := keyLevel(depth.load(x, y))
			f.levels[y*size+x] = int16(level)
			if level >= 0 {
				f.grid.Set(x, y, palette.Glyph(level))
			}
		}
	}
	return f
}

// Size returns the edge length of the square frame.
func (f *Frame) Size() int {
	return f.grid.Width()
}

// Rotation returns the rotation the frame was rendered at.
func (f *Frame) Rotation() Rotation {
	return f.rotation
}

// Palette returns the palette the frame was shaded with.
func (f *Frame) Palette() Palette {
	return f.palette
}

// Glyph returns the glyph at (x, y), core.Background when unlit.
func (f *Frame) Glyph(x, y int) byte {
	return f.grid.Get(x, y)
}

// Level returns the illumination level at (x, y), or -1 for background
// and out-of-range coordinates.
func (f *Frame) Level(x, y int) int {
	if !f.grid.InBounds(x, y) {
		return -1
	}
	return int(f.levels[y*f.Size()+x])
}

// Lit returns the number of non-background cells.
func (f *Frame) Lit() int {
	return f.grid.Count()
}

// String renders the frame for files: rows of unseparated glyphs joined
// by newlines.
func (f *Frame) String() string {
	return f.grid.String()
}

// Spaced renders the frame for consoles: glyphs separated by one space so
// the torus keeps its aspect ratio in a terminal.
func (f *Frame) Spaced() string {
	return f.grid.Join(" ")
}

// Rows returns the frame's rows, top to bottom.
func (f *Frame) Rows() []string {
	return f.grid.Rows()
}
