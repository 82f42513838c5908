// Package config provides YAML-based configuration loading for the donut
// renderer and its playback modes.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/torus"
)

// DonutConfig contains all configuration for rendering and playback.
type DonutConfig struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Sampling SamplingConfig `yaml:"sampling"`
	View     ViewConfig     `yaml:"view"`
	Rotation RotationConfig `yaml:"rotation"`
	Palette  string         `yaml:"palette"`
	Render   RenderConfig   `yaml:"render"`
	Display  DisplayConfig  `yaml:"display"`
	Capture  CaptureConfig  `yaml:"capture"`
}

// SurfaceConfig defines the torus shape.
type SurfaceConfig struct {
	R1 float64 `yaml:"r1"` // Tube radius
	R2 float64 `yaml:"r2"` // Distance from the torus axis to the tube center
}

// SamplingConfig defines the angular sampling density.
type SamplingConfig struct {
	ThetaSpacing float64 `yaml:"theta_spacing"`
	PhiSpacing   float64 `yaml:"phi_spacing"`
}

// ViewConfig defines the output grid and camera distance.
type ViewConfig struct {
	ScreenSize int     `yaml:"screen_size"`
	K2         float64 `yaml:"k2"`
}

// RotationConfig defines the starting angles and per-frame increments.
// Zero steps reuse the sampling spacing.
type RotationConfig struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	StepA float64 `yaml:"step_a"`
	StepB float64 `yaml:"step_b"`
}

// RenderConfig tunes frame production.
type RenderConfig struct {
	Workers int `yaml:"workers"` // Goroutines compositing one frame (0 = serial)
}

// DisplayConfig defines playback settings.
type DisplayConfig struct {
	FPS     int  `yaml:"fps"`      // Interactive tick rate
	DelayMs int  `yaml:"delay_ms"` // Pause between frames in plain console mode
	Shaded  bool `yaml:"shaded"`   // Start interactive playback in grayscale mode
}

// CaptureConfig defines batch capture settings.
type CaptureConfig struct {
	Output string `yaml:"output"`
	Frames int    `yaml:"frames"` // 0 = screen_size squared
	Layout string `yaml:"layout"` // screen (default) or reference
}

// Torus converts the configuration into renderer parameters.
func (c DonutConfig) Torus() torus.Config {
	return torus.Config{
		Surface:  torus.Surface{R1: c.Surface.R1, R2: c.Surface.R2},
		Sampling: torus.Sampling{ThetaSpacing: c.Sampling.ThetaSpacing, PhiSpacing: c.Sampling.PhiSpacing},
		View:     torus.View{ScreenSize: c.View.ScreenSize, K2: c.View.K2},
		Palette:  torus.Palette(c.Palette),
		Initial:  &torus.Rotation{A: c.Rotation.A, B: c.Rotation.B},
		Step:     torus.Step{A: c.Rotation.StepA, B: c.Rotation.StepB},
		Workers:  c.Render.Workers,
	}
}

// NewRenderer builds a renderer from the configuration.
func (c DonutConfig) NewRenderer() (*torus.Renderer, error) {
	r, err := torus.New(c.Torus())
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return r, nil
}

// Runtime returns the playback settings for the platform layer.
func (c DonutConfig) Runtime() core.RuntimeConfig {
	cfg := core.DefaultConfig().WithTickRate(c.Display.FPS)
	cfg.Shaded = c.Display.Shaded
	return cfg
}

// Delay returns the pause between frames in plain console mode.
func (c DonutConfig) Delay() time.Duration {
	return time.Duration(c.Display.DelayMs) * time.Millisecond
}

// CaptureFrames returns how many frames a batch capture produces.
func (c DonutConfig) CaptureFrames() int {
	if c.Capture.Frames > 0 {
		return c.Capture.Frames
	}
	return c.View.ScreenSize * c.View.ScreenSize
}

// CaptureLayout returns the text layout of captured frames.
func (c DonutConfig) CaptureLayout() torus.Layout {
	l, err := torus.ParseLayout(c.Capture.Layout)
	if err != nil {
		return torus.LayoutScreen
	}
	return l
}

// Validate checks the configuration. Failures wrap
// torus.ErrInvalidConfiguration.
func (c DonutConfig) Validate() error {
	if err := c.Torus().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch {
	case c.Display.FPS < 0:
		return fmt.Errorf("config: %w: fps must not be negative, got %d", torus.ErrInvalidConfiguration, c.Display.FPS)
	case c.Display.DelayMs < 0:
		return fmt.Errorf("config: %w: delay_ms must not be negative, got %d", torus.ErrInvalidConfiguration, c.Display.DelayMs)
	case c.Capture.Frames < 0:
		return fmt.Errorf("config: %w: capture frames must not be negative, got %d", torus.ErrInvalidConfiguration, c.Capture.Frames)
	}
	if _, err := torus.ParseLayout(c.Capture.Layout); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Quality scales sampling density.
type Quality string

const (
	QualityDraft  Quality = "draft"
	QualityNormal Quality = "normal"
	QualityFine   Quality = "fine"
)

// ParseQuality parses a quality name. The empty string means normal.
func ParseQuality(s string) (Quality, error) {
	switch q := Quality(s); q {
	case "", QualityNormal:
		return QualityNormal, nil
	case QualityDraft, QualityFine:
		return q, nil
	default:
		return "", fmt.Errorf("config: unknown quality %q (want draft, normal or fine)", s)
	}
}

// spacingScale returns the factor applied to both spacings.
func (q Quality) spacingScale() float64 {
	switch q {
	case QualityDraft:
		return 3
	case QualityFine:
		return 0.5
	default:
		return 1
	}
}
