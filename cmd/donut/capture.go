package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-donut/internal/capture"
	"github.com/vovakirdan/tui-donut/internal/config"
	"github.com/vovakirdan/tui-donut/internal/storage"
)

var (
	flagOutput string
	flagFrames int
	flagJobs   int
	flagLayout string
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture frames to a JSON file",
	Long: `Render frames of the spinning donut and write them to a JSON array of
strings. Each frame is screen_size rows joined by newlines.

By default screen_size² frames are captured, which at the default size of
40 is 1600 frames. Frames are rendered in parallel.

Examples:
  donut capture
  donut capture --frames 100 --out frames.json
  donut capture --preset lowpoly --size 20
  donut capture --layout reference`,
	Args: cobra.NoArgs,
	Run:  runCapture,
}

func init() {
	addCaptureFlags(captureCmd)
}

func addCaptureFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOutput, "out", "o", "donut.json", "Output file")
	cmd.Flags().IntVarP(&flagFrames, "frames", "n", 0, "Number of frames (0 = screen size squared)")
	cmd.Flags().IntVarP(&flagJobs, "jobs", "j", 0, "Frames rendered concurrently (0 = one per CPU)")
	cmd.Flags().StringVar(&flagLayout, "layout", "screen", "Frame text layout: screen or reference (one line per column)")
}

func runCapture(cmd *cobra.Command, _ []string) {
	cfg, preset := mustConfig(cmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := captureToFile(ctx, cfg, preset, newLogger("donut"), os.Stdout); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// captureToFile renders cfg's capture frames to cfg.Capture.Output,
// records the run in history and prints "done" to out.
func captureToFile(ctx context.Context, cfg config.DonutConfig, preset string, logger *log.Logger, out io.Writer) error {
	r, err := cfg.NewRenderer()
	if err != nil {
		return err
	}

	res, err := capture.Run(ctx, r, cfg.CaptureFrames(), cfg.Capture.Output, capture.Options{
		Workers: flagJobs,
		Layout:  cfg.CaptureLayout(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if store := openStore(logger); store != nil {
		if _, err := store.SaveCapture(storage.CaptureRecord{
			Preset:     preset,
			Path:       res.Path,
			Frames:     res.Frames,
			ScreenSize: res.Size,
			Duration:   res.Elapsed,
		}); err != nil {
			logger.Warn("could not record capture", "error", err)
		}
		store.Close()
	}

	_, err = fmt.Fprintln(out, "done")
	return err
}
