package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/donut.yaml
var defaultDonutYAML []byte

// DefaultConfig returns the default configuration: the reference donut
// captured to donut.json.
func DefaultConfig() DonutConfig {
	return DonutConfig{
		Surface: SurfaceConfig{
			R1: 1,
			R2: 2,
		},
		Sampling: SamplingConfig{
			ThetaSpacing: 0.07,
			PhiSpacing:   0.02,
		},
		View: ViewConfig{
			ScreenSize: 40,
			K2:         5,
		},
		Rotation: RotationConfig{
			A: 1,
			B: 1,
		},
		Palette: ".,-~:;=!*#$@",
		Display: DisplayConfig{
			FPS:     30,
			DelayMs: 10,
		},
		Capture: CaptureConfig{
			Output: "donut.json",
			Layout: "screen",
		},
	}
}

// Embedded returns the configuration from the embedded default YAML,
// falling back to DefaultConfig if it cannot be parsed.
func Embedded() DonutConfig {
	var cfg DonutConfig
	if err := yaml.Unmarshal(defaultDonutYAML, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDonutYAML
}
