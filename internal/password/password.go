package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// cost is the bcrypt work factor. Hashing is intentionally the dominant
// latency of registration and login.
const cost = 12

// Codec performs one-way password hashing and verification.
type Codec struct{}

// NewCodec creates a new bcrypt-backed Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Hash derives an opaque digest from plaintext. The plaintext is never
// stored or logged.
func (c *Codec) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. The comparison is
// constant-time relative to the digest.
func (c *Codec) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
