package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "potluck/internal/delivery/context"
	"potluck/internal/domain/entity"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/domain/repository"
	"potluck/internal/usecase"
	"potluck/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dishService implements the DishUsecase interface.
type dishService struct {
	txManager    repository.TransactionManager
	dishRepo     repository.DishRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// DishServiceParams holds dependencies for DishService, injected by Fx.
type DishServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DishRepo     repository.DishRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewDishService is the constructor for dishService.
func NewDishService(params DishServiceParams) usecase.DishUsecase {
	return &dishService{
		txManager:    params.TxManager,
		dishRepo:     params.DishRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *dishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NewDishForm returns every category for the create form's checklist.
func (srv *dishService) NewDishForm(ctx context.Context) (*usecase.DishFormOutput, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load categories for dish form", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load categories for dish form")
	}

	return &usecase.DishFormOutput{Categories: categories}, nil
}

// CreateDish stores a new dish for its creator. The duplicate check on a
// typed category label runs before field validation, matching the order the
// dish form surfaces its errors; label matching is exact and case-sensitive.
func (srv *dishService) CreateDish(ctx context.Context, input *usecase.CreateDishInput) (*entity.Dish, error) {
	srv.log(ctx).Info("Creating dish", slog.String("title", input.Title), slog.Any("creatorID", input.CreatorID))

	categoryText := strings.TrimSpace(input.CategoryText)

	if categoryText != "" {
		if err := srv.assertLabelAvailable(ctx, categoryText); err != nil {
			return nil, err
		}
	}

	if err := validation.Struct(input); err != nil {
		srv.log(ctx).Warn("Dish input invalid", slog.Any("error", err))

		return nil, err
	}

	newDish := &entity.Dish{
		Title:           input.Title,
		Description:     input.Description,
		CreatedByUserID: input.CreatorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dishRepo := repoFactory.DishRepo()
		categoryRepo := repoFactory.CategoryRepo()

		if err := dishRepo.Create(ctx, newDish); err != nil {
			return errors.Wrap(err, "failed to create dish")
		}

		for _, categoryID := range input.CategoryIDs {
			if _, err := categoryRepo.FindByID(ctx, categoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return errors.Wrap(domainerrors.ErrCategoryNotFound, "selected category does not exist")
				}

				return errors.Wrap(err, "failed to load selected category")
			}

			if err := dishRepo.AttachCategory(ctx, newDish.ID, categoryID); err != nil {
				return errors.Wrap(err, "failed to attach category")
			}
		}

		if categoryText != "" {
			newCategory := &entity.Category{Label: categoryText}
			if err := categoryRepo.Create(ctx, newCategory); err != nil {
				return errors.Wrap(err, "failed to create category")
			}

			if err := dishRepo.AttachCategory(ctx, newDish.ID, newCategory.ID); err != nil {
				return errors.Wrap(err, "failed to attach new category")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute dish creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute dish creation transaction")
	}

	created, err := srv.dishRepo.FindByID(ctx, newDish.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created dish")
	}

	srv.log(ctx).Debug("Dish created", slog.Any("dishID", created.ID))

	return created, nil
}

// GetDish returns a dish with the flags the detail page needs for its viewer.
func (srv *dishService) GetDish(ctx context.Context, dishID, viewerID uuid.UUID) (*usecase.DishDetailOutput, error) {
	foundDish, err := srv.loadDish(ctx, dishID)
	if err != nil {
		return nil, err
	}

	inList, err := srv.dishRepo.IsAddedByUser(ctx, dishID, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check dish membership")
	}

	return &usecase.DishDetailOutput{
		Dish:       foundDish,
		IsOwner:    foundDish.IsCreatedBy(viewerID),
		InUserList: inList,
	}, nil
}

// EditDishForm returns the dish plus the categories not yet attached to it,
// which is what the edit form offers as additions. Only the owner may open it.
func (srv *dishService) EditDishForm(ctx context.Context, dishID, requesterID uuid.UUID) (*usecase.DishFormOutput, error) {
	foundDish, err := srv.loadDish(ctx, dishID)
	if err != nil {
		return nil, err
	}

	if !foundDish.IsCreatedBy(requesterID) {
		srv.log(ctx).Warn("Edit form denied", slog.Any("dishID", dishID), slog.Any("requesterID", requesterID))

		return nil, errors.Wrap(domainerrors.ErrNotDishOwner, "edit form denied")
	}

	attachedIDs := make([]uuid.UUID, 0, len(foundDish.Categories))
	for _, category := range foundDish.Categories {
		attachedIDs = append(attachedIDs, category.ID)
	}

	categories, err := srv.categoryRepo.FindAllExcluding(ctx, attachedIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories for edit form")
	}

	return &usecase.DishFormOutput{Dish: foundDish, Categories: categories}, nil
}

// UpdateDish rewrites the dish and synchronizes its categories to exactly the
// submitted selection. Checks run in form order: duplicate label, then
// ownership, then field validation.
func (srv *dishService) UpdateDish(ctx context.Context, input *usecase.UpdateDishInput) (*entity.Dish, error) {
	srv.log(ctx).Info("Updating dish", slog.Any("dishID", input.DishID), slog.Any("requesterID", input.RequesterID))

	categoryText := strings.TrimSpace(input.CategoryText)

	if categoryText != "" {
		if err := srv.assertLabelAvailable(ctx, categoryText); err != nil {
			return nil, err
		}
	}

	foundDish, err := srv.loadDish(ctx, input.DishID)
	if err != nil {
		return nil, err
	}

	if !foundDish.IsCreatedBy(input.RequesterID) {
		srv.log(ctx).Warn("Update denied", slog.Any("dishID", input.DishID), slog.Any("requesterID", input.RequesterID))

		return nil, errors.Wrap(domainerrors.ErrNotDishOwner, "update denied")
	}

	if err := validation.Struct(input); err != nil {
		srv.log(ctx).Warn("Dish input invalid", slog.Any("error", err))

		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dishRepo := repoFactory.DishRepo()
		categoryRepo := repoFactory.CategoryRepo()

		foundDish.Title = input.Title
		foundDish.Description = input.Description

		if err := dishRepo.Update(ctx, foundDish); err != nil {
			return errors.Wrap(err, "failed to update dish")
		}

		// Every category outside the submitted selection is detached, whether
		// or not it was attached; detaching an absent association is a no-op.
		unselected, err := categoryRepo.FindAllExcluding(ctx, input.CategoryIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load unselected categories")
		}

		for _, category := range unselected {
			if err := dishRepo.DetachCategory(ctx, foundDish.ID, category.ID); err != nil {
				return errors.Wrap(err, "failed to detach category")
			}
		}

		for _, categoryID := range input.CategoryIDs {
			if _, err := categoryRepo.FindByID(ctx, categoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return errors.Wrap(domainerrors.ErrCategoryNotFound, "selected category does not exist")
				}

				return errors.Wrap(err, "failed to load selected category")
			}

			if err := dishRepo.AttachCategory(ctx, foundDish.ID, categoryID); err != nil {
				return errors.Wrap(err, "failed to attach category")
			}
		}

		if categoryText != "" {
			newCategory := &entity.Category{Label: categoryText}
			if err := categoryRepo.Create(ctx, newCategory); err != nil {
				return errors.Wrap(err, "failed to create category")
			}

			if err := dishRepo.AttachCategory(ctx, foundDish.ID, newCategory.ID); err != nil {
				return errors.Wrap(err, "failed to attach new category")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute dish update transaction", slog.Any("dishID", input.DishID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute dish update transaction")
	}

	updated, err := srv.dishRepo.FindByID(ctx, input.DishID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated dish")
	}

	srv.log(ctx).Debug("Dish updated", slog.Any("dishID", updated.ID))

	return updated, nil
}

// DeleteDish removes a dish and all of its associations. Only the owner may delete.
func (srv *dishService) DeleteDish(ctx context.Context, dishID, requesterID uuid.UUID) error {
	foundDish, err := srv.loadDish(ctx, dishID)
	if err != nil {
		return err
	}

	if !foundDish.IsCreatedBy(requesterID) {
		srv.log(ctx).Warn("Delete denied", slog.Any("dishID", dishID), slog.Any("requesterID", requesterID))

		return errors.Wrap(domainerrors.ErrNotDishOwner, "delete denied")
	}

	if err := srv.dishRepo.Delete(ctx, dishID); err != nil {
		srv.log(ctx).Error("Failed to delete dish", slog.Any("dishID", dishID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete dish")
	}

	srv.log(ctx).Info("Dish deleted", slog.Any("dishID", dishID), slog.Any("requesterID", requesterID))

	return nil
}

// loadDish fetches a dish and maps the repository's not-found onto the
// domain error the handlers render as 404.
func (srv *dishService) loadDish(ctx context.Context, dishID uuid.UUID) (*entity.Dish, error) {
	foundDish, err := srv.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDishNotFound, "dish lookup failed")
		}

		srv.log(ctx).Error("Failed to load dish", slog.Any("dishID", dishID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load dish")
	}

	return foundDish, nil
}

// assertLabelAvailable rejects a typed category label that already exists.
func (srv *dishService) assertLabelAvailable(ctx context.Context, label string) error {
	_, err := srv.categoryRepo.FindByLabel(ctx, label)
	if err == nil {
		srv.log(ctx).Warn("Category label already exists", slog.String("label", label))

		return errors.Wrap(domainerrors.ErrCategoryAlreadyExists, "category label taken")
	}
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		return errors.Wrap(err, "failed to check category label")
	}

	return nil
}
