package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-donut/internal/config"
	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/presets"
	"github.com/vovakirdan/tui-donut/internal/registry"
	"github.com/vovakirdan/tui-donut/internal/storage"
)

// customPreset names configurations loaded from a file without --preset.
const customPreset = "custom"

// configRequest collects the flags that shape the donut configuration.
type configRequest struct {
	Preset  string
	Config  string
	Quality string

	// Overrides, applied only when set
	Size    *int
	Theta   *float64
	Phi     *float64
	Workers *int
	FPS     *int
	Frames  *int
	Output  *string
	Layout  *string
}

// resolveConfig builds the configuration from a preset or the config
// search path, then applies quality and flag overrides. It returns the
// configuration and the name recorded in history.
func resolveConfig(req configRequest) (config.DonutConfig, string, error) {
	var (
		cfg  config.DonutConfig
		name string
		err  error
	)

	switch {
	case req.Preset != "":
		if !registry.Exists(req.Preset) {
			return cfg, "", fmt.Errorf("unknown preset %q (run 'donut list')", req.Preset)
		}
		if cfg, err = registry.Create(req.Preset); err != nil {
			return cfg, "", err
		}
		name = req.Preset
		if req.Config != "" {
			if cfg, err = config.LoadOver(cfg, req.Config); err != nil {
				return cfg, "", err
			}
		}
	case req.Config != "":
		if cfg, err = config.Load(req.Config); err != nil {
			return cfg, "", err
		}
		name = customPreset
	default:
		if cfg, err = config.Load(""); err != nil {
			return cfg, "", err
		}
		name = presets.Default
	}

	quality, err := config.ParseQuality(req.Quality)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyQuality(&cfg, quality)

	if req.Size != nil {
		cfg.View.ScreenSize = *req.Size
	}
	if req.Theta != nil {
		cfg.Sampling.ThetaSpacing = *req.Theta
	}
	if req.Phi != nil {
		cfg.Sampling.PhiSpacing = *req.Phi
	}
	if req.Workers != nil {
		cfg.Render.Workers = *req.Workers
	}
	if req.FPS != nil {
		cfg.Display.FPS = *req.FPS
	}
	if req.Frames != nil {
		cfg.Capture.Frames = *req.Frames
	}
	if req.Output != nil {
		cfg.Capture.Output = *req.Output
	}
	if req.Layout != nil {
		cfg.Capture.Layout = *req.Layout
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, name, nil
}

// requestFromFlags reads the global flags, and any local override flags
// the command defines, into a configRequest.
func requestFromFlags(cmd *cobra.Command) configRequest {
	req := configRequest{
		Preset:  flagPreset,
		Config:  flagConfig,
		Quality: flagQuality,
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		req.Size = &flagSize
	}
	if flags.Changed("theta") {
		req.Theta = &flagTheta
	}
	if flags.Changed("phi") {
		req.Phi = &flagPhi
	}
	if flags.Changed("workers") {
		req.Workers = &flagWorkers
	}
	if flags.Changed("fps") {
		req.FPS = &flagFPS
	}
	if flags.Changed("frames") {
		req.Frames = &flagFrames
	}
	if flags.Changed("out") {
		req.Output = &flagOutput
	}
	if flags.Changed("layout") {
		req.Layout = &flagLayout
	}
	return req
}

// mustConfig resolves the configuration or exits.
func mustConfig(cmd *cobra.Command) (config.DonutConfig, string) {
	cfg, name, err := resolveConfig(requestFromFlags(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, name
}

// defaultRuntime returns playback settings before a preset is chosen.
func defaultRuntime() core.RuntimeConfig {
	return core.DefaultConfig()
}

// newLogger returns a timestamped stderr logger; --verbose enables debug
// output.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openStore opens the history database. History is optional: on failure
// it logs a warning and returns nil.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		// Continue without storage
		return nil
	}
	return store
}
