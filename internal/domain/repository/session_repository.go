package repository

import (
	"context"
	"errors"

	"potluck/internal/domain/entity"
)

// Session lookup errors. Expired sessions are reported distinctly so callers
// can treat them the same as missing ones while logging them apart.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionRepository defines the operations for the server-side session store.
// The browser only ever holds the raw opaque token; every lookup here is by
// the token's SHA-256 hash.
type SessionRepository interface {
	// Create persists a new session, opened at login or registration.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a live session by the hash of its cookie token.
	// Returns ErrSessionExpired when the row exists but is past its expiry.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session (logout). Returns ErrSessionNotFound
	// when no session matches.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
