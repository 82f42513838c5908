package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-donut/internal/platform/console"
	"github.com/vovakirdan/tui-donut/internal/platform/tui"
	"github.com/vovakirdan/tui-donut/internal/storage"
	"github.com/vovakirdan/tui-donut/internal/torus"
)

// originConsole marks plain console sessions in history.
const originConsole = "console"

var (
	flagPlain bool
	flagFPS   int
	flagLimit int
	flagFit   bool
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Play the spinning donut",
	Long: `Play the donut in the terminal.

By default the donut runs in a full-screen interactive view that fits the
frame to the window. With --plain it is drawn with ANSI cursor-home
sequences and a fixed delay between frames, like the classic program.

Controls:
  Space/P    - Pause
  Enter/S    - Toggle grayscale shading
  +/-        - Faster/slower
  Ctrl+S     - Save a screenshot to ~/.donut/screenshots
  ?          - Help
  Q/Ctrl+C   - Quit

Examples:
  donut spin
  donut spin --preset termbox --fps 60
  donut spin --plain --size 30
  donut spin --plain --limit 200
  donut spin --plain --fit`,
	Args: cobra.NoArgs,
	Run:  runSpin,
}

func init() {
	spinCmd.Flags().BoolVar(&flagPlain, "plain", false, "Plain ANSI output instead of the interactive view")
	spinCmd.Flags().IntVar(&flagFPS, "fps", 30, "Tick rate of the interactive view")
	spinCmd.Flags().IntVar(&flagLimit, "limit", 0, "Frames to show in plain mode (0 = until interrupted)")
	spinCmd.Flags().BoolVar(&flagFit, "fit", false, "Fit plain output to the terminal size")
}

func runSpin(cmd *cobra.Command, _ []string) {
	cfg, preset := mustConfig(cmd)
	logger := newLogger("donut")

	// Plain output keeps the configured size unless asked to fit
	if flagPlain && flagFit {
		cfg.View.ScreenSize = console.FitSize(int(os.Stdout.Fd()), 1, cfg.View.ScreenSize)
		logger.Debug("fitted to terminal", "size", cfg.View.ScreenSize)
	}

	r, err := cfg.NewRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	var runErr error
	if flagPlain {
		runErr = spinPlain(r, cfg.Delay(), preset, store)
	} else {
		rt := cfg.Runtime()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rt.ScreenW = w
			rt.ScreenH = h
		}
		runErr = tui.Run(r, rt, tui.Options{
			Preset: preset,
			Origin: tui.OriginLocal,
			Store:  store,
		})
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// spinPlain plays r with plain ANSI output until interrupted or the
// frame limit is reached.
func spinPlain(r *torus.Renderer, delay time.Duration, preset string, store *storage.Store) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	player := console.Player{
		Out:   os.Stdout,
		Delay: delay,
		Limit: flagLimit,
		Clear: true,
	}
	shown, err := player.Run(ctx, r)

	if store != nil {
		//nolint:errcheck // Best-effort save, playback ends regardless
		store.SaveSession(storage.SessionRecord{
			Preset:   preset,
			Origin:   originConsole,
			Frames:   shown,
			Duration: time.Since(start),
		})
	}
	return err
}
