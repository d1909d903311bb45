package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opxport/opxport/internal/config"
	"github.com/opxport/opxport/internal/export"
	"github.com/opxport/opxport/internal/logging"
	"github.com/opxport/opxport/internal/model"
	"github.com/opxport/opxport/internal/onepux"
)

var convertFlags struct {
	outputDir string
	format    string
	dryRun    bool
	verbose   bool
	quiet     bool
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.1pux>",
	Short: "Convert a .1pux archive to CSV",
	Long: `Convert a 1Password export archive to a CSV import file.

The convert command extracts the archive, reads every vault of every
account in it, and writes the login items as one CSV file. Non-login
items (cards, identities, secure notes) are not part of the CSV schema
and are skipped.

The output file is named after the input file with the format's
extension and is placed next to the input unless --output-dir is given.
Defaults for --output-dir and --format can also be set via the
OPXPORT_OUTPUT_DIR and OPXPORT_FORMAT environment variables.

Examples:
  # Convert to vault.csv next to the input
  opxport convert vault.1pux

  # Convert into a specific directory
  opxport convert vault.1pux -o ~/exports

  # Check what would be written
  opxport convert vault.1pux --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFlags.outputDir, "output-dir", "o", "", "Output directory (default: directory of the input file)")
	convertCmd.Flags().StringVarP(&convertFlags.format, "format", "f", "", "Output format (default: icloud)")
	convertCmd.Flags().BoolVar(&convertFlags.dryRun, "dry-run", false, "Run the conversion without writing output")
	convertCmd.Flags().BoolVarP(&convertFlags.verbose, "verbose", "v", false, "Verbose output")
	convertCmd.Flags().BoolVarP(&convertFlags.quiet, "quiet", "q", false, "Suppress all output except errors")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, cfg)

	log := logging.New(convertFlags.verbose, convertFlags.quiet)

	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".1pux" {
		log.Warn().Str("path", inputPath).Msg("input does not have a .1pux extension")
	}

	// Resolve format before touching the archive so an unknown format
	// fails fast.
	formatName := convertFlags.format
	exporter, ok := export.DefaultRegistry().Get(formatName)
	if !ok {
		return &export.ErrUnknownFormat{Name: formatName}
	}

	archive, err := onepux.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	if attrs := archive.Attributes(); attrs != nil {
		log.Debug().Int("version", attrs.Version).Msg("export format version")
	}

	items, err := archive.Read()
	if err != nil {
		return fmt.Errorf("failed to read export data: %w", err)
	}

	log.Debug().Int("items", len(items)).Msg("parsed export payload")

	if empty := countEmptyItems(items); empty > 0 {
		log.Debug().Int("count", empty).Msg("export contains items with no data")
	}

	outputPath := resolveOutputPath(inputPath, convertFlags.outputDir, exporter)

	if convertFlags.dryRun {
		printConversionSummary(items, inputPath, exporter.Name())
		if !convertFlags.quiet {
			fmt.Fprintln(os.Stderr, "\n[Dry run - no output written]")
		}
		return nil
	}

	written, err := exporter.Export(items, outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printConversionSummary(items, inputPath, exporter.Name())
	if !convertFlags.quiet {
		fmt.Fprintf(os.Stderr, "\n%d records written to: %s\n", written, outputPath)
	}

	return nil
}

// applyConfigDefaults fills in flag values from the environment config
// for flags the user did not set explicitly.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("output-dir") && cfg.OutputDir != "" {
		convertFlags.outputDir = cfg.OutputDir
	}
	if !cmd.Flags().Changed("format") && convertFlags.format == "" {
		convertFlags.format = cfg.Format
	}
	if !cmd.Flags().Changed("quiet") && cfg.Quiet {
		convertFlags.quiet = true
	}
	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		convertFlags.verbose = true
	}
}

// countEmptyItems reports how many items carry no meaningful data. Empty
// items are still exported; the count is surfaced for diagnostics only.
func countEmptyItems(items []model.Item) int {
	n := 0
	for i := range items {
		if items[i].IsEmpty() {
			n++
		}
	}
	return n
}

// resolveOutputPath builds the output file path: the exporter names the
// file after the input stem, placed in outputDir or next to the input.
func resolveOutputPath(inputPath, outputDir string, exporter export.Exporter) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	return filepath.Join(dir, exporter.OutputName(stem))
}

// printConversionSummary prints item counts by category to stderr.
// The decorative summary is skipped when output is piped, unless the
// user asked for verbose output.
func printConversionSummary(items []model.Item, inputPath, formatName string) {
	if convertFlags.quiet {
		return
	}
	if !convertFlags.verbose && !term.IsTerminal(int(os.Stderr.Fd())) {
		return
	}

	typeCounts := make(map[string]int)
	for i := range items {
		typeCounts[items[i].Category.String()]++
	}

	typeNames := make([]string, 0, len(typeCounts))
	for t := range typeCounts {
		typeNames = append(typeNames, t)
	}
	sort.Strings(typeNames)

	fmt.Fprintf(os.Stderr, "\nSource: %s (format: %s)\n", inputPath, formatName)
	fmt.Fprintf(os.Stderr, "Items: %d total\n", len(items))

	for _, typeName := range typeNames {
		fmt.Fprintf(os.Stderr, "  - %d %s\n", typeCounts[typeName], typeName)
	}
}
