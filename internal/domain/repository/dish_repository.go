package repository

import (
	"context"
	"errors"

	"potluck/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDishNotFound is a domain-specific error returned when a dish is not found.
var ErrDishNotFound = errors.New("dish not found")

// DishRepository defines the standard operations for dish persistence,
// including the dish-category associations and each user's personal
// "added dishes" collection.
type DishRepository interface {
	// FindByID retrieves a single dish with its creator and categories preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)

	// FindAllExcluding retrieves every dish whose id is NOT in excludeIDs,
	// newest first. An empty excludeIDs returns all dishes.
	FindAllExcluding(ctx context.Context, excludeIDs []uuid.UUID) ([]*entity.Dish, error)

	// FindAddedByUser retrieves the dishes in the given user's personal collection.
	FindAddedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Dish, error)

	// Create persists a new dish entity to the storage.
	Create(ctx context.Context, dish *entity.Dish) error

	// Update persists the dish's title and description.
	Update(ctx context.Context, dish *entity.Dish) error

	// Delete removes the dish and all of its association rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// AttachCategory associates a category with a dish. Attaching an already
	// associated category is a no-op.
	AttachCategory(ctx context.Context, dishID, categoryID uuid.UUID) error

	// DetachCategory removes a category association from this dish only; the
	// category itself keeps existing. Detaching an absent association is a no-op.
	DetachCategory(ctx context.Context, dishID, categoryID uuid.UUID) error

	// AddToUser puts the dish into the user's personal collection. Idempotent.
	AddToUser(ctx context.Context, dishID, userID uuid.UUID) error

	// RemoveFromUser removes the dish from the user's personal collection. Idempotent.
	RemoveFromUser(ctx context.Context, dishID, userID uuid.UUID) error

	// IsAddedByUser reports whether the dish is in the user's personal collection.
	IsAddedByUser(ctx context.Context, dishID, userID uuid.UUID) (bool, error)
}
