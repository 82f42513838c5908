// Package core provides fundamental types and utilities shared by the
// renderer and the platform layers. It contains no external dependencies
// (especially no Bubble Tea) to keep frame generation pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FitSquare returns the largest square grid size that fits a terminal of
// w columns and h rows when every row is drawn with a space between glyphs
// and reserved rows are kept free at the bottom. Never returns less than 1.
func FitSquare(w, h, reserved int) int {
	cols := (w + 1) / 2
	rows := h - reserved
	return Max(Min(cols, rows), 1)
}
