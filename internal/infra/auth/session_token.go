package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"potluck/internal/domain/service"

	"github.com/pkg/errors"
)

// tokenBytes is the entropy of a raw session token. 32 bytes keeps the cookie
// value unguessable for the lifetime of any session.
const tokenBytes = 32

// sessionTokenService issues opaque cookie tokens and their storage hashes.
type sessionTokenService struct{}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService() service.SessionTokenService {
	return &sessionTokenService{}
}

// Generate returns a new random raw token and its SHA-256 storage hash.
func (s *sessionTokenService) Generate() (string, string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate session token")
	}

	raw := hex.EncodeToString(buf)

	return raw, s.HashToken(raw), nil
}

// HashToken returns the SHA-256 hex digest stored for a raw cookie token.
func (s *sessionTokenService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
