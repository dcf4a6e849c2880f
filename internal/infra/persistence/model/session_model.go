package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table, the server side of the cookie
// session store. Only the SHA-256 hash of the cookie token is persisted.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
