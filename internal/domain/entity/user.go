// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// PasswordHash holds the bcrypt hash of the account password; the plaintext
// secret is never stored.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Email        string    // The user's unique email, used as the login identifier.
	PasswordHash string    // The bcrypt-hashed account password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
