package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-donut/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available presets",
	Long:  `Shows a list of all registered presets with their main parameters.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %-11s  %s\n", maxNameLen, "Name", "Size", "Spacing", "Title")
	fmt.Printf("  %-*s  %-5s  %-11s  %s\n", maxNameLen, "----", "----", "-------", "-----")

	// Print presets
	for _, p := range presets {
		cfg, err := registry.Create(p.Name)
		if err != nil {
			continue
		}
		spacing := fmt.Sprintf("%g/%g", cfg.Sampling.ThetaSpacing, cfg.Sampling.PhiSpacing)
		fmt.Printf("  %-*s  %-5d  %-11s  %s\n", maxNameLen, p.Name, cfg.View.ScreenSize, spacing, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'donut spin --preset <name>' to play a preset.")
}
