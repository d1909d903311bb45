// Package onepux reads 1Password .1pux export archives.
//
// A .1pux file is a zip container holding a JSON payload (export.data)
// that describes accounts, vaults, and items. The File type extracts the
// payload into a scoped temporary directory, parses it, and normalizes
// the items into the internal model. Close removes the temporary
// directory; callers must always pair Open with a deferred Close.
package onepux

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opxport/opxport/internal/model"
	"github.com/opxport/opxport/internal/security"
)

// File is an opened 1pux archive.
type File struct {
	path     string
	tempDir  string
	dataPath string
	attrs    *Attributes
	isOpen   bool
	items    []model.Item
}

// Open validates the input path, extracts the archive payload into a
// fresh temporary directory, and returns a File ready for Read.
// The temporary directory is removed on every failure path here and by
// Close afterwards.
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &ErrFileSystem{Path: path, Op: "stat", Err: err}
	}
	if info.IsDir() {
		return nil, &ErrInvalidArchive{
			Path:    path,
			Details: "path is a directory, not a .1pux file",
		}
	}

	tempDir, err := os.MkdirTemp("", "opxport-")
	if err != nil {
		return nil, &ErrFileSystem{Path: path, Op: "create extraction directory for", Err: err}
	}

	dataPath, attrsRaw, err := extractPayload(path, tempDir)
	if err != nil {
		os.RemoveAll(tempDir)
		return nil, err
	}

	f := &File{
		path:     path,
		tempDir:  tempDir,
		dataPath: dataPath,
		isOpen:   true,
	}

	// export.attributes is informational; a missing or unreadable one
	// never fails the conversion.
	if len(attrsRaw) > 0 {
		var attrs Attributes
		if err := json.Unmarshal(attrsRaw, &attrs); err == nil {
			f.attrs = &attrs
		}
	}

	return f, nil
}

// Path returns the input file path the archive was opened from.
func (f *File) Path() string {
	return f.path
}

// Attributes returns the archive metadata, or nil when the export did not
// carry an export.attributes entry.
func (f *File) Attributes() *Attributes {
	return f.attrs
}

// Read parses the extracted payload and returns all items, normalized,
// in source order (account, then vault, then item). May be called multiple
// times; results are cached after the first call.
func (f *File) Read() ([]model.Item, error) {
	if !f.isOpen {
		return nil, ErrNotOpen
	}

	if f.items != nil {
		return f.items, nil
	}

	raw, err := os.ReadFile(f.dataPath)
	if err != nil {
		return nil, &ErrFileSystem{Path: f.dataPath, Op: "read", Err: err}
	}
	defer security.Wipe(&raw)

	var export Export
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, &ErrMalformedData{
			Path:    f.path,
			Details: "payload is not valid JSON",
			Err:     err,
		}
	}

	if len(export.Accounts) == 0 {
		return nil, &ErrMalformedData{
			Path:    f.path,
			Details: "no accounts found in export data",
		}
	}

	var items []model.Item
	for _, account := range export.Accounts {
		accountName := account.Attrs.AccountName
		if accountName == "" {
			accountName = account.Attrs.Name
		}
		for _, vault := range account.Vaults {
			for _, item := range vault.Items {
				items = append(items, normalizeItem(&item, accountName, vault.Attrs.Name))
			}
		}
	}

	f.items = items
	return items, nil
}

// Close removes the temporary extraction directory.
func (f *File) Close() error {
	if !f.isOpen {
		return nil
	}
	f.isOpen = false
	f.items = nil
	f.dataPath = ""

	if f.tempDir != "" {
		err := os.RemoveAll(f.tempDir)
		f.tempDir = ""
		return err
	}
	return nil
}

// normalizeItem converts a raw export item into the internal model.
// Identity fields are whitespace-trimmed; secret values pass through
// verbatim (model.Item.Sanitize).
func normalizeItem(src *Item, account, vault string) model.Item {
	id := src.UUID
	if id == "" {
		id = uuid.New().String()
	}

	title := strings.TrimSpace(src.Overview.Title)
	if title == "" {
		title = model.DefaultTitle
	}

	it := model.Item{
		ID:       id,
		Category: model.ParseCategoryUUID(src.CategoryUUID),
		Title:    title,
		URLs:     collectURLs(&src.Overview),
		Notes:    src.Details.NotesPlain,
		Account:  account,
		Vault:    vault,
	}

	if src.CreatedAt > 0 {
		it.Created = time.Unix(src.CreatedAt, 0).UTC()
	}
	if src.UpdatedAt > 0 {
		it.Updated = time.Unix(src.UpdatedAt, 0).UTC()
	}

	it.Username, it.Password = parseLoginFields(src.Details.LoginFields)

	if otp := findOTP(&src.Details); otp != "" {
		it.OTP = model.NewOTPData(otp)
		it.OTP.AccountName = it.Username
		it.OTP.Issuer = src.Overview.Title
	}

	it.Sanitize()
	return it
}

// collectURLs gathers the item's URLs with the primary URL first,
// skipping empties and duplicates of the primary.
func collectURLs(ov *Overview) []string {
	var urls []string
	if ov.URL != "" {
		urls = append(urls, ov.URL)
	}
	for _, entry := range ov.URLs {
		if entry.URL == "" || entry.URL == ov.URL {
			continue
		}
		urls = append(urls, entry.URL)
	}
	return urls
}

// parseLoginFields extracts username and password from an item's login
// fields. Fields are matched by designation, falling back to the field
// name for exports that predate designations.
func parseLoginFields(fields []LoginField) (username, password string) {
	for _, field := range fields {
		switch fieldRole(&field) {
		case designationUsername:
			if username == "" {
				username = field.Value
			}
		case designationPassword:
			if password == "" {
				password = field.Value
			}
		}
	}
	return username, password
}

// findOTP returns the item's one-time-password value: a login field
// designated as TOTP, or the first totp-valued section field.
func findOTP(details *Details) string {
	for _, field := range details.LoginFields {
		if fieldRole(&field) == designationTOTP && field.Value != "" {
			return field.Value
		}
	}
	for _, section := range details.Sections {
		for _, field := range section.Fields {
			if field.Value.TOTP != nil && *field.Value.TOTP != "" {
				return *field.Value.TOTP
			}
		}
	}
	return ""
}

// fieldRole resolves the role of a login field.
func fieldRole(field *LoginField) string {
	if field.Designation != "" {
		return strings.ToLower(field.Designation)
	}
	return strings.ToLower(field.Name)
}
