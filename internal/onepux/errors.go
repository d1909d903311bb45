package onepux

import (
	"errors"
	"fmt"
)

// Common errors returned by the archive reader.
var (
	// ErrNotOpen is returned when Read is called before Open.
	ErrNotOpen = errors.New("archive not open")

	// ErrClosed is returned when operations are attempted on a closed archive.
	ErrClosed = errors.New("archive is closed")
)

// ErrInvalidArchive indicates that the input is not a valid 1pux archive:
// either the file is not a zip container, or the expected payload entry
// is missing from it.
type ErrInvalidArchive struct {
	Path    string // Input file path
	Details string // What was wrong
	Err     error  // Underlying error, if any
}

func (e *ErrInvalidArchive) Error() string {
	msg := fmt.Sprintf("invalid 1pux archive %q", e.Path)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrInvalidArchive) Unwrap() error {
	return e.Err
}

// ErrMalformedData indicates that the extracted payload is not valid JSON
// or does not match the minimally expected export shape.
type ErrMalformedData struct {
	Path    string // Payload file path
	Details string // What was wrong
	Err     error  // Underlying error, if any
}

func (e *ErrMalformedData) Error() string {
	msg := fmt.Sprintf("malformed export data in %q", e.Path)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrMalformedData) Unwrap() error {
	return e.Err
}

// ErrFileSystem indicates a file-system level failure: the input path does
// not exist or is unreadable, or the temporary extraction area could not
// be created.
type ErrFileSystem struct {
	Path string // File path
	Op   string // Operation that failed (stat, open, extract, ...)
	Err  error  // Underlying error
}

func (e *ErrFileSystem) Error() string {
	msg := fmt.Sprintf("cannot %s %q", e.Op, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrFileSystem) Unwrap() error {
	return e.Err
}

// IsInvalidArchive returns true if the error is an invalid archive error.
func IsInvalidArchive(err error) bool {
	var archiveErr *ErrInvalidArchive
	return errors.As(err, &archiveErr)
}

// IsMalformedData returns true if the error is a malformed data error.
func IsMalformedData(err error) bool {
	var dataErr *ErrMalformedData
	return errors.As(err, &dataErr)
}

// IsFileSystem returns true if the error is a file-system error.
func IsFileSystem(err error) bool {
	var fsErr *ErrFileSystem
	return errors.As(err, &fsErr)
}
