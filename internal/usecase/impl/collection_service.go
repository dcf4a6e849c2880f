package impl

import (
	"context"
	"log/slog"

	deliverycontext "potluck/internal/delivery/context"
	"potluck/internal/domain/entity"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/domain/repository"
	"potluck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	dishRepo repository.DishRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	DishRepo repository.DishRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		dishRepo: params.DishRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard splits the catalogue into the viewer's list and the rest.
func (srv *collectionService) Dashboard(ctx context.Context, userID uuid.UUID) (*usecase.DashboardOutput, error) {
	viewer, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load dashboard user", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load dashboard user")
	}

	addedDishes, err := srv.dishRepo.FindAddedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load added dishes")
	}

	addedIDs := make([]uuid.UUID, 0, len(addedDishes))
	for _, addedDish := range addedDishes {
		addedIDs = append(addedIDs, addedDish.ID)
	}

	availableDishes, err := srv.dishRepo.FindAllExcluding(ctx, addedIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load available dishes")
	}

	return &usecase.DashboardOutput{
		User:            viewer,
		AddedDishes:     addedDishes,
		AvailableDishes: availableDishes,
	}, nil
}

// AddDish puts a dish into the user's list. Any logged-in user may add any
// dish, their own included; re-adding is a no-op.
func (srv *collectionService) AddDish(ctx context.Context, dishID, userID uuid.UUID) error {
	if _, err := srv.loadDish(ctx, dishID); err != nil {
		return err
	}

	if err := srv.dishRepo.AddToUser(ctx, dishID, userID); err != nil {
		srv.log(ctx).Error("Failed to add dish to list", slog.Any("dishID", dishID), slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to add dish to list")
	}

	srv.log(ctx).Debug("Dish added to list", slog.Any("dishID", dishID), slog.Any("userID", userID))

	return nil
}

// RemoveDish takes a dish out of the user's list; the dish itself survives.
func (srv *collectionService) RemoveDish(ctx context.Context, dishID, userID uuid.UUID) error {
	if _, err := srv.loadDish(ctx, dishID); err != nil {
		return err
	}

	if err := srv.dishRepo.RemoveFromUser(ctx, dishID, userID); err != nil {
		srv.log(ctx).Error("Failed to remove dish from list", slog.Any("dishID", dishID), slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove dish from list")
	}

	srv.log(ctx).Debug("Dish removed from list", slog.Any("dishID", dishID), slog.Any("userID", userID))

	return nil
}

// CompleteDish retires a dish from the user's list. Completion deletes the
// dish row outright, so the dish vanishes from every user's list and from
// the shared catalogue at once.
func (srv *collectionService) CompleteDish(ctx context.Context, dishID, userID uuid.UUID) error {
	if _, err := srv.loadDish(ctx, dishID); err != nil {
		return err
	}

	inList, err := srv.dishRepo.IsAddedByUser(ctx, dishID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check dish membership")
	}

	if !inList {
		srv.log(ctx).Warn("Complete denied, dish not in list", slog.Any("dishID", dishID), slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrDishNotInCollection, "complete denied")
	}

	if err := srv.dishRepo.Delete(ctx, dishID); err != nil {
		srv.log(ctx).Error("Failed to delete completed dish", slog.Any("dishID", dishID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete completed dish")
	}

	srv.log(ctx).Info("Dish completed", slog.Any("dishID", dishID), slog.Any("userID", userID))

	return nil
}

func (srv *collectionService) loadDish(ctx context.Context, dishID uuid.UUID) (*entity.Dish, error) {
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
