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
)

// categoryRepository implements the domain.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindByID retrieves a single category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindByLabel retrieves a category by its exact label text. Postgres string
// comparison is case-sensitive here, which the duplicate precheck relies on.
func (repo *categoryRepository) FindByLabel(ctx context.Context, label string) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("label = ?", label).
		First(&categoryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by label")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindAll retrieves every category, newest first.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&categoryMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomainList(categoryMs), nil
}

// FindAllExcluding retrieves every category whose id is NOT in excludeIDs.
func (repo *categoryRepository) FindAllExcluding(ctx context.Context, excludeIDs []uuid.UUID) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var categoryMs []*model.CategoryModel
	if err := query.Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories excluding ids")
	}

	return toCategoryDomainList(categoryMs), nil
}

// Create persists a new category entity to the database.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Label:     data.Label,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toCategoryDomainList converts a slice of GORM models to domain entities.
func toCategoryDomainList(data []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for _, categoryM := range data {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:    data.ID,
		Label: data.Label,
	}
}
