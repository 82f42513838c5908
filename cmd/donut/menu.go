package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-donut/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a preset interactively",
	Long: `Start donut in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to spin the selected preset.
When playback ends, you return to the menu. Tab opens the history view.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Spin preset
  Tab          - History
  Q            - Quit

Examples:
  donut menu
  donut menu --quality draft
  donut menu --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	logger := newLogger("donut")
	store := openStore(logger)

	// Get terminal size
	rt := defaultRuntime()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rt = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, rt.ScreenW, rt.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		req := requestFromFlags(cmd)
		req.Preset = menuResult.Preset
		cfg, preset, err := resolveConfig(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		r, err := cfg.NewRenderer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		playRT := cfg.Runtime()
		playRT.ScreenW, playRT.ScreenH = rt.ScreenW, rt.ScreenH
		if err := tui.Run(r, playRT, tui.Options{Preset: preset, Store: store}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
