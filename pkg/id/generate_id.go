package id

import (
	"crypto/rand"
	"encoding/hex"
)

// 16 random bytes hex-encode to the 32-character public id width.
const rawLen = 16

// NewID32 returns exactly 32 lowercase hex characters, no separators or
// prefixes.
func NewID32() string {
	b := make([]byte, rawLen)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
