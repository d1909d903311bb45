// Package logging configures the zerolog logger used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New constructs a console logger writing to os.Stderr.
//
// The level is warn by default so a normal run stays quiet on the log
// side (the conversion summary is printed separately). Verbose lowers
// the level to debug; quiet raises it to error. Quiet wins when both
// are set.
func New(verbose, quiet bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, verbose, quiet)
}

// NewWithWriter is like New but writes to the given writer.
// Used in tests to capture output.
func NewWithWriter(w io.Writer, verbose, quiet bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards all output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
