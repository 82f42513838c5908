// Package torus renders a rotating torus as a square grid of ASCII glyphs.
//
// Each frame samples the torus surface on a (theta, phi) lattice, rotates
// every sample about two axes, projects it with a perspective divide and
// keeps the closest sample per cell. Visible samples are shaded by how
// directly their surface normal faces a fixed light.
package torus

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned by New for geometrically
// nonsensical parameters.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// DefaultPalette orders glyphs from darkest to brightest.
const DefaultPalette Palette = ".,-~:;=!*#$@"

// maxPaletteLen keeps palette indices addressable by a byte.
const maxPaletteLen = 255

// Surface describes the torus: a tube of radius R1 whose center circle has
// radius R2 around the torus axis.
type Surface struct {
	R1 float64
	R2 float64
}

// Sampling sets the angular step between samples around the tube (theta)
// and around the torus axis (phi).
type Sampling struct {
	ThetaSpacing float64
	PhiSpacing   float64
}

// View sets the output grid size and the camera distance K2.
type View struct {
	ScreenSize int
	K2         float64
}

// Rotation holds the two rotation angles in radians. A rotates about the
// x axis, B about the z axis, in that order.
type Rotation struct {
	A float64
	B float64
}

// Step is the per-frame rotation increment. The zero Step reuses the
// sampling spacing (theta for A, phi for B).
type Step struct {
	A float64
	B float64
}

// Palette is a string of single-byte glyphs, darkest first.
type Palette string

// Levels returns the number of illumination levels.
func (p Palette) Levels() int {
	return len(p)
}

// Glyph returns the glyph for an illumination level, clamping the level
// into the palette's range.
func (p Palette) Glyph(level int) byte {
	if level < 0 {
		level = 0
	}
	if level >= len(p) {
		level = len(p) - 1
	}
	return p[level]
}

// Contains reports whether b is one of the palette's glyphs.
func (p Palette) Contains(b byte) bool {
	for i := 0; i < len(p); i++ {
		if p[i] == b {
			return true
		}
	}
	return false
}

func (p Palette) validate() error {
	if len(p) == 0 {
		return invalid("palette is empty")
	}
	if len(p) > maxPaletteLen {
		return invalid("palette has %d glyphs, at most %d allowed", len(p), maxPaletteLen)
	}
	for i := 0; i < len(p); i++ {
		if p[i] <= ' ' || p[i] > '~' {
			return invalid("palette glyph %q at %d is not a printable non-space ASCII character", p[i], i)
		}
	}
	return nil
}

// Config collects everything a Renderer needs.
type Config struct {
	Surface  Surface
	Sampling Sampling
	View     View
	Palette  Palette // Empty means DefaultPalette
	Initial  *Rotation
	Step     Step
	Workers  int // Goroutines compositing one frame; 0 or 1 renders serially
}

// DefaultConfig returns the reference donut: a 40x40 grid, R1=1, R2=2,
// K2=5, theta spacing 0.07 and phi spacing 0.02.
func DefaultConfig() Config {
	return Config{
		Surface:  Surface{R1: 1, R2: 2},
		Sampling: Sampling{ThetaSpacing: 0.07, PhiSpacing: 0.02},
		View:     View{ScreenSize: 40, K2: 5},
		Palette:  DefaultPalette,
	}
}

// Validate reports whether the configuration describes a renderable torus.
// Failures wrap ErrInvalidConfiguration.
func (c Config) Validate() error {
	s, v := c.Surface, c.View
	switch {
	case !finite(s.R1) || s.R1 <= 0:
		return invalid("tube radius R1 must be positive, got %g", s.R1)
	case !finite(s.R2) || s.R2 <= s.R1:
		return invalid("torus radius R2 must exceed R1 (%g), got %g", s.R1, s.R2)
	case v.ScreenSize < 1:
		return invalid("screen size must be at least 1, got %d", v.ScreenSize)
	case !finite(v.K2) || v.K2 <= s.R1+s.R2:
		return invalid("camera distance K2 must exceed R1+R2 (%g), got %g", s.R1+s.R2, v.K2)
	case !finite(c.Sampling.ThetaSpacing) || c.Sampling.ThetaSpacing <= 0:
		return invalid("theta spacing must be positive, got %g", c.Sampling.ThetaSpacing)
	case !finite(c.Sampling.PhiSpacing) || c.Sampling.PhiSpacing <= 0:
		return invalid("phi spacing must be positive, got %g", c.Sampling.PhiSpacing)
	case !finite(c.Step.A) || !finite(c.Step.B):
		return invalid("rotation step must be finite, got (%g, %g)", c.Step.A, c.Step.B)
	case c.Initial != nil && (!finite(c.Initial.A) || !finite(c.Initial.B)):
		return invalid("initial rotation must be finite, got (%g, %g)", c.Initial.A, c.Initial.B)
	case c.Workers < 0:
		return invalid("workers must not be negative, got %d", c.Workers)
	}
	if c.Palette == "" {
		return nil
	}
	return c.Palette.validate()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("torus: %w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
