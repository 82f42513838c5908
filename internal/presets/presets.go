// Package presets registers the built-in donut presets.
package presets

import (
	"github.com/vovakirdan/tui-donut/internal/config"
	"github.com/vovakirdan/tui-donut/internal/registry"
)

// Default is the preset used when none is named.
const Default = "classic"

func init() {
	registry.Register("classic", "Classic donut (rotation tied to sampling)", Classic)
	registry.Register("termbox", "Termbox donut (far camera, dense sampling)", Termbox)
	registry.Register("donutc", "donut.c timing (0.04/0.02 per frame)", DonutC)
	registry.Register("lowpoly", "Low-poly preview (sparse sampling)", LowPoly)
}

// Classic is the reference configuration. The rotation step is left at
// zero, so each frame turns by the sampling spacing.
func Classic() config.DonutConfig {
	return config.DefaultConfig()
}

// Termbox pulls the camera back and samples densely, which lessens the
// see-through effect of sparse sampling.
func Termbox() config.DonutConfig {
	cfg := config.DefaultConfig()
	cfg.View.K2 = 6
	cfg.Sampling.ThetaSpacing = 0.01
	cfg.Sampling.PhiSpacing = 0.01
	cfg.Rotation.StepA = 0.07
	cfg.Rotation.StepB = 0.03
	cfg.Render.Workers = 4
	return cfg
}

// DonutC keeps the classic sampling but uses donut.c's rotation speed.
func DonutC() config.DonutConfig {
	cfg := config.DefaultConfig()
	cfg.Rotation.A = 0
	cfg.Rotation.B = 0
	cfg.Rotation.StepA = 0.04
	cfg.Rotation.StepB = 0.02
	return cfg
}

// LowPoly samples sparsely for a fast, speckled preview.
func LowPoly() config.DonutConfig {
	cfg := config.DefaultConfig()
	cfg.Sampling.ThetaSpacing = 0.3
	cfg.Sampling.PhiSpacing = 0.1
	cfg.Rotation.StepA = 0.07
	cfg.Rotation.StepB = 0.03
	return cfg
}
