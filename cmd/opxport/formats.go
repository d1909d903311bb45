package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opxport/opxport/internal/export"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available output formats",
	Long: `List all output formats that conversions can target.

Each format defines its own column set and field mapping. Use the
--format flag with the convert command to pick one.

Examples:
  # List all formats
  opxport formats`,
	Run: runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	exporters := export.DefaultRegistry().List()

	fmt.Println("Available output formats:")
	fmt.Println()

	for _, exporter := range exporters {
		fmt.Printf("  %-12s %s\n", exporter.Name(), exporter.Description())
		fmt.Printf("  %-12s Output: %s\n", "", exporter.OutputName("<input>"))
		fmt.Println()
	}

	fmt.Println("Use 'opxport convert -f <format> <file.1pux>' to convert an archive.")
}
