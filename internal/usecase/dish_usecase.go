package usecase

import (
	"context"

	"github.com/google/uuid"

	"potluck/internal/domain/entity"
)

// --- Input DTOs ---

// CreateDishInput defines the data required to create a dish. Exactly one of
// CategoryText or CategoryIDs is typically set, but either may be combined;
// a non-empty CategoryText is checked against existing labels first.
type CreateDishInput struct {
	Title        string      `json:"title" form:"title" validate:"required,min=3"`
	Description  string      `json:"description" form:"description" validate:"required,min=10"`
	CategoryText string      `json:"category_text" form:"category_text"`
	CategoryIDs  []uuid.UUID `json:"category_ids" form:"category_ids"`
	CreatorID    uuid.UUID   `json:"-" validate:"required"`
}

// UpdateDishInput defines the data required to update an existing dish.
// RequesterID is taken from the session, never from the request body.
type UpdateDishInput struct {
	DishID       uuid.UUID   `json:"-" validate:"required"`
	Title        string      `json:"title" form:"title" validate:"required,min=3"`
	Description  string      `json:"description" form:"description" validate:"required,min=10"`
	CategoryText string      `json:"category_text" form:"category_text"`
	CategoryIDs  []uuid.UUID `json:"category_ids" form:"category_ids"`
	RequesterID  uuid.UUID   `json:"-" validate:"required"`
}

// --- Output DTOs ---

// DishDetailOutput carries a dish plus the flags the detail page renders
// differently per viewer.
type DishDetailOutput struct {
	Dish       *entity.Dish
	IsOwner    bool
	InUserList bool
}

// DishFormOutput carries the choices offered by the create and edit forms.
type DishFormOutput struct {
	Dish       *entity.Dish       // nil on the create form
	Categories []*entity.Category // selectable categories
}

// DishUsecase defines the interface for dish creation and maintenance.
type DishUsecase interface {
	// NewDishForm returns the data backing the create form: every category.
	NewDishForm(ctx context.Context) (*DishFormOutput, error)

	// CreateDish stores a new dish owned by the creator, attaching selected
	// categories and, when CategoryText names a new label, creating it.
	CreateDish(ctx context.Context, input *CreateDishInput) (*entity.Dish, error)

	// GetDish returns a dish with its creator and categories preloaded.
	GetDish(ctx context.Context, dishID, viewerID uuid.UUID) (*DishDetailOutput, error)

	// EditDishForm returns the data backing the edit form. Only the owner may
	// open it.
	EditDishForm(ctx context.Context, dishID, requesterID uuid.UUID) (*DishFormOutput, error)

	// UpdateDish rewrites a dish's fields and synchronizes its category set to
	// exactly the submitted selection. Only the owner may update.
	UpdateDish(ctx context.Context, input *UpdateDishInput) (*entity.Dish, error)

	// DeleteDish removes a dish and its associations. Only the owner may
	// delete.
	DeleteDish(ctx context.Context, dishID, requesterID uuid.UUID) error
}
