// Package id owns the public identifier scheme: 32 lowercase hex characters,
// 16 random bytes, no separators. Every aggregate exposes ids in this form.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a fresh identifier.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Valid reports whether s is a well-formed identifier. Used by the edge
// layers to reject malformed ids before they reach a query.
func Valid(s string) bool {
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
