package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a session token; hex encoding doubles the
// printable length to 48 characters.
const tokenBytes = 24

// TokenSource issues opaque session tokens.
type TokenSource interface {
	NewToken() (string, error)
}

// RandomTokenSource draws tokens from the operating system CSPRNG.
type RandomTokenSource struct{}

// NewRandomTokenSource creates RandomTokenSource.
func NewRandomTokenSource() *RandomTokenSource {
	return &RandomTokenSource{}
}

// NewToken returns a fresh hex encoded token.
func (s *RandomTokenSource) NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
