// Package security provides utilities for handling sensitive data in memory.
package security

import (
	"crypto/subtle"
)

// Wipe zeroes and nils out a byte slice holding sensitive data.
// This should be called via defer to ensure cleanup.
func Wipe(data *[]byte) {
	if data == nil || *data == nil {
		return
	}
	b := *data
	for i := range b {
		b[i] = 0
	}
	// Double-check using subtle to prevent compiler optimization
	if len(b) > 0 {
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
	*data = nil
}

// WipeString attempts to clear a string variable holding sensitive data.
// Note: this is best-effort as Go strings are immutable; prefer byte
// slices and Wipe for anything secret.
func WipeString(s *string) {
	if s == nil {
		return
	}
	b := []byte(*s)
	for i := range b {
		b[i] = 0
	}
	*s = ""
}
