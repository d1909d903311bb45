package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/opxport/opxport/internal/model"
)

// iCloud Passwords CSV columns, in import order.
var icloudColumns = []string{"Title", "URL", "Username", "Password", "Notes", "OTPAuth"}

// ICloudExporter renders items as a CSV file importable by Apple iCloud
// Passwords (and Safari).
type ICloudExporter struct{}

// NewICloudExporter creates a new iCloud Passwords exporter.
func NewICloudExporter() *ICloudExporter {
	return &ICloudExporter{}
}

// Name returns the unique identifier for this format.
func (e *ICloudExporter) Name() string {
	return "icloud"
}

// Description returns a human-readable description.
func (e *ICloudExporter) Description() string {
	return "Apple iCloud Passwords / Safari CSV import"
}

// OutputName returns the output file name for the given input stem.
func (e *ICloudExporter) OutputName(stem string) string {
	return stem + ".csv"
}

// Export writes all login-category items to outputPath as CSV.
// Non-login items (cards, identities, notes) are skipped: the iCloud
// import schema only models website logins. The file is written to a
// temporary sibling and renamed into place, so a failed export never
// leaves a partial CSV at the final path.
func (e *ICloudExporter) Export(items []model.Item, outputPath string) (int, error) {
	rows := make([][]string, 0, len(items))
	for i := range items {
		if items[i].Category != model.CategoryLogin {
			continue
		}
		rows = append(rows, e.transformItem(&items[i]))
	}

	if err := writeCSVAtomic(outputPath, icloudColumns, rows); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// transformItem maps one login item to an iCloud CSV row.
// Missing fields map to empty strings; a record with all-empty optional
// fields is valid output.
func (e *ICloudExporter) transformItem(it *model.Item) []string {
	title := it.Title
	if title == "" {
		title = model.DefaultTitle
	}

	return []string{
		title,
		it.PrimaryURL(),
		it.Username,
		it.Password,
		it.Notes,
		it.OTP.URI(),
	}
}

// writeCSVAtomic writes header and rows to outputPath with standard
// RFC 4180 quoting. The content goes to a temporary file in the target
// directory first and is renamed over outputPath only after a clean flush.
func writeCSVAtomic(outputPath string, header []string, rows [][]string) error {
	dir := filepath.Dir(outputPath)

	tmp, err := os.CreateTemp(dir, ".opxport-*.csv")
	if err != nil {
		return &ErrFileSystem{Path: outputPath, Op: "create output file for", Err: err}
	}
	tmpPath := tmp.Name()

	// On any failure below the temporary file is removed; the final
	// path is only ever touched by the rename.
	fail := func(op string, err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return &ErrFileSystem{Path: outputPath, Op: op, Err: err}
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		return fail("write header to", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fail("write rows to", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fail("write", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &ErrFileSystem{Path: outputPath, Op: "flush", Err: err}
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return &ErrFileSystem{Path: outputPath, Op: "rename output into", Err: err}
	}

	return nil
}

// init registers the iCloud exporter with the default registry.
func init() {
	RegisterDefault(NewICloudExporter())
}

// Ensure ICloudExporter implements Exporter interface
var _ Exporter = (*ICloudExporter)(nil)
