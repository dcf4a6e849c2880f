package usecase

import (
	"context"

	"github.com/google/uuid"

	"potluck/internal/domain/entity"
)

// DashboardOutput splits the catalogue for one viewer: the dishes already in
// their personal list and everything else still up for grabs.
type DashboardOutput struct {
	User            *entity.User
	AddedDishes     []*entity.Dish
	AvailableDishes []*entity.Dish
}

// CollectionUsecase defines the interface for a user's personal dish list.
type CollectionUsecase interface {
	// Dashboard returns the viewer's added dishes and the remaining dishes.
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardOutput, error)

	// AddDish puts a dish into the user's list. Adding a dish already in the
	// list is a no-op.
	AddDish(ctx context.Context, dishID, userID uuid.UUID) error

	// RemoveDish takes a dish out of the user's list without touching the
	// dish itself.
	RemoveDish(ctx context.Context, dishID, userID uuid.UUID) error

	// CompleteDish marks a dish in the user's list as done. Completion
	// retires the dish for everyone: the dish row and all of its
	// associations are deleted, so it disappears from every list.
	CompleteDish(ctx context.Context, dishID, userID uuid.UUID) error
}
