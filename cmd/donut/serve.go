package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-donut/internal/framecache"
	"github.com/vovakirdan/tui-donut/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagCacheSize   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the donut SSH server",
	Long: `Start an SSH server that plays the donut to every connection.

Each SSH connection gets its own interactive view, fitted to its terminal.
Sessions playing the same size share rendered frames through an in-memory
cache, and every session is recorded in the history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.donut/host_key

Examples:
  donut serve                           # Listen on :23234 with auto-generated key
  donut serve --ssh :2222               # Listen on port 2222
  donut serve --preset termbox          # Serve a different preset
  donut serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagCacheSize, "cache-size", framecache.DefaultSize, "Frames shared between sessions")
	serveCmd.Flags().IntVar(&flagFPS, "fps", 30, "Tick rate of each session")
}

func runServe(cmd *cobra.Command, _ []string) {
	donut, preset := mustConfig(cmd)
	logger := newLogger("donut-ssh")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Preset:      preset,
		Donut:       donut,
		CacheSize:   flagCacheSize,
		Store:       store,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}

	fmt.Printf("Starting donut SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
