package onepux

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Archive entry names per the 1pux format.
const (
	// entryData is the JSON payload with all accounts and items.
	entryData = "export.data"

	// entryAttributes is the optional archive metadata document.
	entryAttributes = "export.attributes"
)

// extractPayload opens path as a zip container and extracts the payload
// entry into destDir. It returns the path of the extracted JSON file and
// the raw bytes of export.attributes when that entry is present.
func extractPayload(path, destDir string) (string, []byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return "", nil, &ErrInvalidArchive{
				Path:    path,
				Details: "not a zip container",
				Err:     err,
			}
		}
		if os.IsNotExist(err) || os.IsPermission(err) {
			return "", nil, &ErrFileSystem{Path: path, Op: "open", Err: err}
		}
		return "", nil, &ErrInvalidArchive{Path: path, Err: err}
	}
	defer zr.Close()

	var dataEntry, attrsEntry *zip.File
	for _, f := range zr.File {
		switch f.Name {
		case entryData:
			dataEntry = f
		case entryAttributes:
			attrsEntry = f
		}
	}

	if dataEntry == nil {
		return "", nil, &ErrInvalidArchive{
			Path:    path,
			Details: entryData + " not found in archive",
		}
	}

	dataPath := filepath.Join(destDir, entryData)
	if err := extractEntry(dataEntry, dataPath); err != nil {
		return "", nil, err
	}

	// export.attributes is optional; older exports omit it.
	var attrs []byte
	if attrsEntry != nil {
		attrs, err = readEntry(attrsEntry)
		if err != nil {
			return "", nil, err
		}
	}

	return dataPath, attrs, nil
}

// extractEntry copies a single archive entry to destPath.
func extractEntry(entry *zip.File, destPath string) error {
	rc, err := entry.Open()
	if err != nil {
		return &ErrInvalidArchive{
			Path:    entry.Name,
			Details: "cannot read archive entry",
			Err:     err,
		}
	}
	defer rc.Close()

	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return &ErrFileSystem{Path: destPath, Op: "create", Err: err}
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return &ErrFileSystem{Path: destPath, Op: "extract to", Err: err}
	}

	if err := out.Close(); err != nil {
		return &ErrFileSystem{Path: destPath, Op: "close", Err: err}
	}

	return nil
}

// readEntry reads a single archive entry into memory.
func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, &ErrInvalidArchive{
			Path:    entry.Name,
			Details: "cannot read archive entry",
			Err:     err,
		}
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
