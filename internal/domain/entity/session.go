package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated browser session. The browser holds an
// opaque token in an HttpOnly cookie; only the SHA-256 hash of that token is
// stored here, so a leaked database row cannot be replayed as a cookie.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // The authenticated principal this session belongs to.
	TokenHash string    // SHA-256 hex digest of the raw cookie token.
	ExpiresAt time.Time // The exact time when this session becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was opened (login time).
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
