// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dish is a recipe shared by one user with everyone else. The creator is fixed
// at creation time and is the only user allowed to edit or delete the dish.
type Dish struct {
	ID              uuid.UUID   // The unique identifier for the dish.
	Title           string      // Short display title of the recipe.
	Description     string      // Free-text body of the recipe.
	CreatedByUserID uuid.UUID   // The creator's user id. Immutable after creation.
	CreatedBy       *User       // The creator, when the lookup preloaded it. May be nil.
	Categories      []*Category // Labels currently attached to this dish.
	CreatedAt       time.Time   // Timestamp of when this dish was created.
	UpdatedAt       time.Time   // Timestamp of the last modification to this dish.
}

// IsCreatedBy reports whether the given user created this dish.
func (d *Dish) IsCreatedBy(userID uuid.UUID) bool {
	return d.CreatedByUserID == userID
}
