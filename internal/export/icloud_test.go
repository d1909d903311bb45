package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/opxport/opxport/internal/model"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	return records
}

func TestICloudExporter_Interface(t *testing.T) {
	e := NewICloudExporter()

	if e.Name() != "icloud" {
		t.Errorf("Name() = %v, want icloud", e.Name())
	}
	if e.Description() == "" {
		t.Error("Description() should not be empty")
	}
	if got := e.OutputName("vault"); got != "vault.csv" {
		t.Errorf("OutputName(vault) = %v, want vault.csv", got)
	}
}

func TestICloudExporter_Export(t *testing.T) {
	e := NewICloudExporter()

	t.Run("Header and round-trip", func(t *testing.T) {
		items := []model.Item{
			{
				Category: model.CategoryLogin,
				Title:    "Example Site",
				URLs:     []string{"https://example.com", "https://backup.example.com"},
				Username: "jane",
				Password: "s3cret",
				Notes:    "some notes",
				OTP:      &model.OTPData{Secret: "otpauth://totp/Example:jane?secret=JBSWY3DPEHPK3PXP"},
			},
		}

		outputPath := filepath.Join(t.TempDir(), "out.csv")
		written, err := e.Export(items, outputPath)
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if written != 1 {
			t.Errorf("Export() wrote %d records, want 1", written)
		}

		records := readCSV(t, outputPath)
		if len(records) != 2 {
			t.Fatalf("got %d CSV rows, want header + 1 record", len(records))
		}

		wantHeader := []string{"Title", "URL", "Username", "Password", "Notes", "OTPAuth"}
		if !reflect.DeepEqual(records[0], wantHeader) {
			t.Errorf("header = %v, want %v", records[0], wantHeader)
		}

		wantRow := []string{
			"Example Site",
			"https://example.com",
			"jane",
			"s3cret",
			"some notes",
			"otpauth://totp/Example:jane?secret=JBSWY3DPEHPK3PXP",
		}
		if !reflect.DeepEqual(records[1], wantRow) {
			t.Errorf("row = %v, want %v", records[1], wantRow)
		}
	})

	t.Run("Skips non-login items", func(t *testing.T) {
		items := []model.Item{
			{Category: model.CategoryLogin, Title: "Login"},
			{Category: model.CategoryCreditCard, Title: "Visa"},
			{Category: model.CategorySecureNote, Title: "Note"},
			{Category: model.CategoryLogin, Title: "Another Login"},
		}

		outputPath := filepath.Join(t.TempDir(), "out.csv")
		written, err := e.Export(items, outputPath)
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if written != 2 {
			t.Errorf("Export() wrote %d records, want 2", written)
		}

		records := readCSV(t, outputPath)
		if len(records) != 3 {
			t.Fatalf("got %d CSV rows, want header + 2 records", len(records))
		}
		if records[1][0] != "Login" || records[2][0] != "Another Login" {
			t.Errorf("rows out of source order: %v", records[1:])
		}
	})

	t.Run("Defaults for missing fields", func(t *testing.T) {
		items := []model.Item{{Category: model.CategoryLogin}}

		outputPath := filepath.Join(t.TempDir(), "out.csv")
		if _, err := e.Export(items, outputPath); err != nil {
			t.Fatalf("Export() error = %v", err)
		}

		records := readCSV(t, outputPath)
		wantRow := []string{model.DefaultTitle, "", "", "", "", ""}
		if !reflect.DeepEqual(records[1], wantRow) {
			t.Errorf("row = %v, want %v", records[1], wantRow)
		}
	})

	t.Run("Quoting round-trips tricky values", func(t *testing.T) {
		note := `comma, "quoted", and
a newline`
		items := []model.Item{
			{
				Category: model.CategoryLogin,
				Title:    "Tricky",
				Password: `pa,ss"word`,
				Notes:    note,
			},
		}

		outputPath := filepath.Join(t.TempDir(), "out.csv")
		if _, err := e.Export(items, outputPath); err != nil {
			t.Fatalf("Export() error = %v", err)
		}

		records := readCSV(t, outputPath)
		if records[1][3] != `pa,ss"word` {
			t.Errorf("password = %q, want original value after CSV round-trip", records[1][3])
		}
		if records[1][4] != note {
			t.Errorf("notes = %q, want original value after CSV round-trip", records[1][4])
		}
	})

	t.Run("Empty item list still writes header", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "out.csv")
		written, err := e.Export(nil, outputPath)
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if written != 0 {
			t.Errorf("Export() wrote %d records, want 0", written)
		}

		records := readCSV(t, outputPath)
		if len(records) != 1 {
			t.Errorf("got %d CSV rows, want header only", len(records))
		}
	})

	t.Run("Idempotent output", func(t *testing.T) {
		items := []model.Item{
			{Category: model.CategoryLogin, Title: "Stable", Username: "u", Password: "p"},
		}

		outputPath := filepath.Join(t.TempDir(), "out.csv")
		if _, err := e.Export(items, outputPath); err != nil {
			t.Fatalf("first Export() error = %v", err)
		}
		first, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := e.Export(items, outputPath); err != nil {
			t.Fatalf("second Export() error = %v", err)
		}
		second, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(first, second) {
			t.Error("repeated exports should be byte-identical")
		}
	})

	t.Run("Missing output directory", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv")
		_, err := e.Export([]model.Item{{Category: model.CategoryLogin}}, outputPath)

		if err == nil {
			t.Fatal("Export() to missing directory should fail")
		}
		var fsErr *ErrFileSystem
		if !errors.As(err, &fsErr) {
			t.Errorf("Export() error = %T, want *ErrFileSystem", err)
		}
		if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
			t.Error("no output file should exist after a failed export")
		}
	})
}
