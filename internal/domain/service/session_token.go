package service

// SessionTokenService issues and digests the opaque tokens carried by the
// session cookie. The raw token goes to the browser; only the hash is stored,
// so the two halves of a session never live in the same place.
type SessionTokenService interface {
	// Generate returns a new cryptographically random raw token together with
	// its storage hash.
	Generate() (raw string, hash string, err error)

	// HashToken returns the storage hash for a raw token presented by a cookie.
	HashToken(raw string) string
}
