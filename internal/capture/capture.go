// Package capture renders a fixed number of frames and writes them to disk
// as a JSON array of strings.
package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/torus"
)

// Options tunes a capture run.
type Options struct {
	Workers int          // Frames rendered concurrently (0 = GOMAXPROCS)
	Layout  torus.Layout // Text layout of each frame ("" = screen)
	Logger  *log.Logger  // nil = log.Default()
}

// Result summarizes a finished capture.
type Result struct {
	Path    string
	Frames  int
	Size    int
	Elapsed time.Duration
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Capture advances r n times and returns the frame rendered after each
// advance, in order. Rotations are stepped serially; frames are rendered
// concurrently. The renderer is left at its last rotation.
func Capture(ctx context.Context, r *torus.Renderer, n int, opts Options) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("capture: %w: frame count must not be negative, got %d", torus.ErrInvalidConfiguration, n)
	}

	rotations := make([]torus.Rotation, n)
	for i := range rotations {
		r.Advance()
		rotations[i] = r.Rotation()
	}

	frames := make([]string, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, rot := range rotations {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			frames[i] = r.Render(rot).Text(opts.Layout)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	// Wait only reports errors from goroutines that started; gctx is
	// always cancelled once Wait returns, so check the caller's context.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	opts.logger().Debug("frames rendered", "frames", n, "workers", opts.workers())
	return frames, nil
}

// WriteJSON writes frames to path as a JSON array, creating parent
// directories as needed. Failures wrap core.ErrIOFailure.
func WriteJSON(path string, frames []string) error {
	if frames == nil {
		frames = []string{}
	}

	data, err := json.Marshal(frames)
	if err != nil {
		return fmt.Errorf("capture: %w: cannot encode frames: %v", core.ErrIOFailure, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("capture: %w: cannot create directory %s: %v", core.ErrIOFailure, dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("capture: %w: cannot write %s: %v", core.ErrIOFailure, path, err)
	}
	return nil
}

// ReadJSON loads frames previously written by WriteJSON.
func ReadJSON(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("capture: %w: cannot read %s: %v", core.ErrIOFailure, path, err)
	}

	var frames []string
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("capture: invalid frame file %s: %w", path, err)
	}
	return frames, nil
}

// Run captures n frames from r and writes them to path.
func Run(ctx context.Context, r *torus.Renderer, n int, path string, opts Options) (Result, error) {
	logger := opts.logger()
	start := time.Now()

	logger.Info("capturing frames", "frames", n, "size", r.Config().View.ScreenSize, "path", path)

	frames, err := Capture(ctx, r, n, opts)
	if err != nil {
		return Result{}, err
	}
	if err := WriteJSON(path, frames); err != nil {
		return Result{}, err
	}

	res := Result{
		Path:    path,
		Frames:  len(frames),
		Size:    r.Config().View.ScreenSize,
		Elapsed: time.Since(start),
	}
	logger.Info("capture complete", "frames", res.Frames, "path", res.Path, "elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}
