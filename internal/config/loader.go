package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the donut configuration.
// Search order: customPath -> ~/.donut/configs/donut.yaml -> ./configs/donut.yaml -> embedded default
func Load(customPath string) (DonutConfig, error) {
	base := Embedded()

	// Try custom path first
	if customPath != "" {
		return LoadOver(base, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("donut.yaml"); userCfgPath != "" {
		if cfg, err := LoadOver(base, userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadOver(base, filepath.Join("configs", "donut.yaml")); err == nil {
		return cfg, nil
	}

	return base, nil
}

// LoadOver reads the YAML file at path on top of base. Keys missing from
// the file keep base's values.
func LoadOver(base DonutConfig, path string) (DonutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(base, data)
	if err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data on top of base.
func Parse(base DonutConfig, data []byte) (DonutConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg DonutConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".donut", "configs", filename)
}

// ApplyQuality scales the sampling spacing by the quality preset. A step
// left at zero is pinned to the unscaled spacing first, so the animation
// keeps its speed when only the density changes.
func ApplyQuality(cfg *DonutConfig, q Quality) {
	scale := q.spacingScale()
	if scale == 1 {
		return
	}
	if cfg.Rotation.StepA == 0 && cfg.Rotation.StepB == 0 {
		cfg.Rotation.StepA = cfg.Sampling.ThetaSpacing
		cfg.Rotation.StepB = cfg.Sampling.PhiSpacing
	}
	cfg.Sampling.ThetaSpacing *= scale
	cfg.Sampling.PhiSpacing *= scale
}
