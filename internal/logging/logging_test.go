package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter_Levels(t *testing.T) {
	t.Run("Default hides debug, shows warn", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, false, false)

		log.Debug().Msg("debug line")
		log.Warn().Msg("warn line")

		out := buf.String()
		if strings.Contains(out, "debug line") {
			t.Error("debug output should be suppressed by default")
		}
		if !strings.Contains(out, "warn line") {
			t.Error("warn output should be visible by default")
		}
	})

	t.Run("Verbose shows debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, true, false)

		log.Debug().Msg("debug line")

		if !strings.Contains(buf.String(), "debug line") {
			t.Error("debug output should be visible with verbose")
		}
	})

	t.Run("Quiet hides warn, wins over verbose", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, true, true)

		log.Warn().Msg("warn line")
		log.Error().Msg("error line")

		out := buf.String()
		if strings.Contains(out, "warn line") {
			t.Error("warn output should be suppressed when quiet")
		}
		if !strings.Contains(out, "error line") {
			t.Error("error output should still be visible when quiet")
		}
	})
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error().Msg("discarded") // must not panic or write anywhere
}
