package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a free-text label attachable to many dishes. Labels are created
// lazily while creating or updating a dish and are never deleted by this
// system; duplicate labels are rejected by an exact, case-sensitive match.
type Category struct {
	ID        uuid.UUID // The unique identifier for the category.
	Label     string    // The label text as the user typed it.
	CreatedAt time.Time // Timestamp of when this category was created.
	UpdatedAt time.Time // Timestamp of the last modification to this category.
}
