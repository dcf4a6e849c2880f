package postgres

import (
	"context"

	"potluck/internal/domain/entity"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/domain/repository"
	"potluck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dishRepository implements the domain.DishRepository interface using GORM.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{db: db}
}

// FindByID retrieves a single dish with its creator and categories preloaded.
func (repo *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dishM model.DishModel
	err := repo.db.WithContext(ctx).
		Preload("CreatedByUser").
		Preload("Categories").
		Where("id = ?", id).
		First(&dishM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish by id")
	}

	return toDishDomain(&dishM), nil
}

// FindAllExcluding retrieves every dish whose id is NOT in excludeIDs, newest first.
func (repo *dishRepository) FindAllExcluding(ctx context.Context, excludeIDs []uuid.UUID) ([]*entity.Dish, error) {
	query := repo.db.WithContext(ctx).
		Preload("CreatedByUser").
		Preload("Categories").
		Order("created_at DESC")

	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var dishMs []*model.DishModel
	if err := query.Find(&dishMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dishes")
	}

	return toDishDomainList(dishMs), nil
}

// FindAddedByUser retrieves the dishes in the given user's personal collection.
func (repo *dishRepository) FindAddedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Dish, error) {
	var dishMs []*model.DishModel
	err := repo.db.WithContext(ctx).
		Preload("CreatedByUser").
		Preload("Categories").
		Joins("JOIN user_added_dishes ON user_added_dishes.dish_model_id = dishes.id").
		Where("user_added_dishes.user_model_id = ?", userID).
		Order("dishes.created_at DESC").
		Find(&dishMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list added dishes")
	}

	return toDishDomainList(dishMs), nil
}

// Create persists a new dish entity to the database.
func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(dishM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("dish creator does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required dish information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt
	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

// Update persists the dish's title and description. The creator column is
// never touched here; ownership is immutable.
func (repo *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DishModel{}).
		Where("id = ?", dish.ID).
		Updates(map[string]any{
			"title":       dish.Title,
			"description": dish.Description,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dish")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// Delete removes the dish. The join rows in dish_categories and
// user_added_dishes go with it.
func (repo *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	dishM := &model.DishModel{ID: id}

	result := repo.db.WithContext(ctx).Select(clause.Associations).Delete(dishM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dish")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// AttachCategory associates a category with a dish. GORM's Append upserts the
// join row, so attaching twice is a no-op.
func (repo *dishRepository) AttachCategory(ctx context.Context, dishID, categoryID uuid.UUID) error {
	dishM := &model.DishModel{ID: dishID}
	categoryM := &model.CategoryModel{ID: categoryID}

	err := repo.db.WithContext(ctx).
		Model(dishM).
		Association("Categories").
		Append(categoryM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to attach category to dish")
	}

	return nil
}

// DetachCategory removes the dish-category join row only; the category row
// itself is untouched. Detaching an absent association is a no-op.
func (repo *dishRepository) DetachCategory(ctx context.Context, dishID, categoryID uuid.UUID) error {
	dishM := &model.DishModel{ID: dishID}
	categoryM := &model.CategoryModel{ID: categoryID}

	err := repo.db.WithContext(ctx).
		Model(dishM).
		Association("Categories").
		Delete(categoryM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach category from dish")
	}

	return nil
}

// AddToUser puts the dish into the user's personal collection. Idempotent.
func (repo *dishRepository) AddToUser(ctx context.Context, dishID, userID uuid.UUID) error {
	dishM := &model.DishModel{ID: dishID}
	userM := &model.UserModel{ID: userID}

	err := repo.db.WithContext(ctx).
		Model(dishM).
		Association("AddedUsers").
		Append(userM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add dish to user collection")
	}

	return nil
}

// RemoveFromUser removes the dish from the user's personal collection. Idempotent.
func (repo *dishRepository) RemoveFromUser(ctx context.Context, dishID, userID uuid.UUID) error {
	dishM := &model.DishModel{ID: dishID}
	userM := &model.UserModel{ID: userID}

	err := repo.db.WithContext(ctx).
		Model(dishM).
		Association("AddedUsers").
		Delete(userM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove dish from user collection")
	}

	return nil
}

// IsAddedByUser reports whether the dish is in the user's personal collection.
func (repo *dishRepository) IsAddedByUser(ctx context.Context, dishID, userID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Table("user_added_dishes").
		Where("dish_model_id = ? AND user_model_id = ?", dishID, userID).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to check dish membership")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toDishDomain converts a GORM DishModel to a domain Dish entity.
func toDishDomain(data *model.DishModel) *entity.Dish {
	if data == nil {
		return nil
	}

	categories := make([]*entity.Category, 0, len(data.Categories))
	for _, categoryM := range data.Categories {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return &entity.Dish{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		CreatedByUserID: data.CreatedByUserID,
		CreatedBy:       toUserDomain(data.CreatedByUser),
		Categories:      categories,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toDishDomainList converts a slice of GORM models to domain entities.
func toDishDomainList(data []*model.DishModel) []*entity.Dish {
	dishes := make([]*entity.Dish, 0, len(data))
	for _, dishM := range data {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes
}

// fromDishDomain converts a domain Dish entity to a GORM DishModel for persistence.
func fromDishDomain(data *entity.Dish) *model.DishModel {
	if data == nil {
		return nil
	}

	return &model.DishModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		CreatedByUserID: data.CreatedByUserID,
	}
}
