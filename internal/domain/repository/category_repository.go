package repository

import (
	"context"
	"errors"

	"potluck/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByLabel retrieves a category by its exact, case-sensitive label text.
	FindByLabel(ctx context.Context, label string) (*entity.Category, error)

	// FindAll retrieves every category, newest first.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindAllExcluding retrieves every category whose id is NOT in excludeIDs.
	FindAllExcluding(ctx context.Context, excludeIDs []uuid.UUID) ([]*entity.Category, error)

	// Create persists a new category entity to the storage.
	Create(ctx context.Context, category *entity.Category) error
}
