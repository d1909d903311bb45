package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/opxport/opxport/internal/model"
	"github.com/opxport/opxport/internal/onepux"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.1pux>",
	Short: "Preview an archive without conversion",
	Long: `Preview the contents of a 1Password export archive without writing
any output.

The preview command shows item counts by category and by vault, so you
can see what a conversion would pick up before running it.

Examples:
  # Preview an export archive
  opxport preview vault.1pux`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	archive, err := onepux.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	items, err := archive.Read()
	if err != nil {
		return fmt.Errorf("failed to read export data: %w", err)
	}

	printPreview(inputPath, archive.Attributes(), items)
	return nil
}

// printPreview outputs the archive summary to stdout.
func printPreview(inputPath string, attrs *onepux.Attributes, items []model.Item) {
	fmt.Printf("Archive: %s\n", inputPath)
	if attrs != nil {
		fmt.Printf("Export format version: %d\n", attrs.Version)
	}
	fmt.Printf("Items: %d total\n", len(items))

	// Count by category
	typeCounts := make(map[string]int)
	for i := range items {
		typeCounts[items[i].Category.String()]++
	}

	typeNames := make([]string, 0, len(typeCounts))
	for t := range typeCounts {
		typeNames = append(typeNames, t)
	}
	sort.Strings(typeNames)

	for _, typeName := range typeNames {
		fmt.Printf("  - %d %s\n", typeCounts[typeName], typeName)
	}

	// Count by vault
	vaultCounts := make(map[string]int)
	for i := range items {
		vault := items[i].Vault
		if vault == "" {
			vault = "(unnamed vault)"
		}
		vaultCounts[vault]++
	}

	if len(vaultCounts) > 0 {
		vaultNames := make([]string, 0, len(vaultCounts))
		for v := range vaultCounts {
			vaultNames = append(vaultNames, v)
		}
		sort.Strings(vaultNames)

		fmt.Println("\nVaults:")
		for _, vault := range vaultNames {
			fmt.Printf("  - %s (%d items)\n", vault, vaultCounts[vault])
		}
	}
}
