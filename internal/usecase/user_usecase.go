// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"potluck/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Validation runs AFTER the duplicate-email precheck, matching the order the
// registration form reports its errors in.
type RegisterInput struct {
	FirstName       string `json:"first_name" form:"first_name" validate:"required,min=2"`
	LastName        string `json:"last_name" form:"last_name" validate:"required,min=2"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with the raw session
// token destined for the cookie. The token hash never leaves the storage.
type AuthOutput struct {
	User         *entity.User
	SessionToken string
	ExpiresAt    time.Time
}

// UserUsecase defines the interface for registration, login and logout.
// This is the contract that the delivery layer (HTTP handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and opens a session for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates by email and password and opens a session.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout closes the session behind the given raw cookie token.
	Logout(ctx context.Context, rawToken string) error

	// Authenticate resolves a raw cookie token to the current user. Called by
	// the auth middleware on every guarded request; the user row is re-read
	// each time, never cached.
	Authenticate(ctx context.Context, rawToken string) (*entity.User, error)
}
