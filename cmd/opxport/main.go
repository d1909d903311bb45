// Package main provides the entry point for the opxport CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-edge"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "opxport",
	Short: "Convert 1Password exports to CSV",
	Long: `opxport converts 1Password export archives (.1pux) into CSV files
that other password managers can import.

A .1pux archive is a zip container holding a JSON export of your accounts,
vaults, and items. opxport extracts it, picks out the login items, and
writes them as a CSV in the selected output format.

Examples:
  # Convert next to the input file
  opxport convert vault.1pux

  # Convert into a specific directory
  opxport convert vault.1pux --output-dir ~/exports

  # Inspect the archive without converting
  opxport preview vault.1pux`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
