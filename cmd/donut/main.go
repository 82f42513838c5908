// donut renders a spinning ASCII torus in the terminal.
//
// Usage:
//
//	donut                    - Capture screen_size² frames to donut.json
//	donut capture            - Capture frames to a JSON file
//	donut spin               - Play the donut interactively
//	donut spin --plain       - Play the donut with plain ANSI output
//	donut menu               - Pick a preset interactively
//	donut serve              - Start SSH server for remote viewing
//	donut list               - List available presets
//	donut history            - Show recent captures and sessions
//
// Global flags:
//
//	--preset <name>  - Start from a named preset (default: classic)
//	--config <path>  - Load a YAML config file
//	--db <path>      - Set database path (default: ~/.donut/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import presets to register them
	_ "github.com/vovakirdan/tui-donut/internal/presets"
)

var (
	// Global flags
	flagPreset  string
	flagConfig  string
	flagDBPath  string
	flagQuality string
	flagVerbose bool
	flagSize    int
	flagTheta   float64
	flagPhi     float64
	flagWorkers int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "donut",
	Short: "Donut - a spinning ASCII torus in your terminal",
	Long: `Donut renders a rotating torus as ASCII art using perspective projection,
a depth buffer and a brightness ramp of glyphs.

Without a subcommand it captures screen_size² frames to donut.json.

Available commands:
  capture  - Capture frames to a JSON file
  spin     - Play the donut in the terminal
  menu     - Pick a preset interactively
  serve    - Start SSH server for remote viewing
  list     - Show all presets
  history  - Show recent captures and sessions

Examples:
  donut
  donut capture --frames 100 --out frames.json
  donut spin --preset termbox
  donut spin --plain --size 30
  donut serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runCapture,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset name (see 'donut list')")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.donut/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagQuality, "quality", "normal", "Sampling quality: draft, normal, fine")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Screen size in cells (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&flagTheta, "theta", 0, "Theta spacing in radians (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&flagPhi, "phi", 0, "Phi spacing in radians (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Goroutines per frame (overrides config)")

	// The root command captures, so it shares the capture flags
	addCaptureFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(spinCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
}
