package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-donut/internal/platform/tui"
	"github.com/vovakirdan/tui-donut/internal/storage"
)

var (
	flagHistoryLimit       int
	flagHistoryInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent captures and playback sessions",
	Long: `Display the most recent captures and playback sessions recorded in the
history database, followed by totals.

Examples:
  donut history
  donut history --limit 5
  donut history -i
  donut history --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Entries to show per section")
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse history in a full-screen view")
}

func runHistory(_ *cobra.Command, _ []string) {
	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	captures, err := store.RecentCaptures(flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving captures: %v\n", err)
		os.Exit(1)
	}

	sessions, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.Stats()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Captures")
	fmt.Println()
	if len(captures) == 0 {
		fmt.Println("  No captures recorded yet. Run 'donut capture' to make one.")
	} else {
		fmt.Printf("  %-16s  %-10s  %-6s  %-4s  %-8s  %s\n", "Date", "Preset", "Frames", "Size", "Time", "Path")
		fmt.Printf("  %-16s  %-10s  %-6s  %-4s  %-8s  %s\n", "----", "------", "------", "----", "----", "----")
		for _, c := range captures {
			fmt.Printf("  %-16s  %-10s  %-6d  %-4d  %-8s  %s\n",
				c.CreatedAt.Format("2006-01-02 15:04"), c.Preset, c.Frames, c.ScreenSize,
				c.Duration.Round(time.Millisecond), c.Path)
		}
	}

	fmt.Println()
	fmt.Println("Sessions")
	fmt.Println()
	if len(sessions) == 0 {
		fmt.Println("  No sessions recorded yet. Run 'donut spin' to start one.")
	} else {
		fmt.Printf("  %-16s  %-10s  %-16s  %-6s  %s\n", "Date", "Preset", "Origin", "Frames", "Time")
		fmt.Printf("  %-16s  %-10s  %-16s  %-6s  %s\n", "----", "------", "------", "------", "----")
		for _, s := range sessions {
			fmt.Printf("  %-16s  %-10s  %-16s  %-6d  %s\n",
				s.CreatedAt.Format("2006-01-02 15:04"), s.Preset, s.Origin, s.Frames,
				s.Duration.Round(time.Second))
		}
	}

	fmt.Println()
	fmt.Printf("Total: %d captures (%d frames), %d sessions (%d frames)\n",
		stats.Captures, stats.CapturedFrames, stats.Sessions, stats.PlayedFrames)
	if !stats.LastActivity.IsZero() {
		fmt.Printf("Last activity: %s\n", stats.LastActivity.Format("2006-01-02 15:04"))
	}
}
