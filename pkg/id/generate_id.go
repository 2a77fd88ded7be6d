package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a random public identifier: exactly 32 lowercase hex
// characters, no separators or prefixes.
func NewID32() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the OS entropy source is gone;
		// there is no sane fallback for identifier generation.
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
