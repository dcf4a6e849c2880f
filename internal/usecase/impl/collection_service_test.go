package impl

import (
	"context"
	"testing"

	"potluck/internal/domain/entity"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/domain/repository"
	mockRepo "potluck/internal/mocks/repository"
	"potluck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollectionService(t *testing.T) (usecase.CollectionUsecase, *mockRepo.MockDishRepository, *mockRepo.MockUserRepository) {
	t.Helper()

	dishRepo := mockRepo.NewMockDishRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewCollectionService(CollectionServiceParams{
		DishRepo: dishRepo,
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return service, dishRepo, userRepo
}

func TestCollectionService_Dashboard(t *testing.T) {
	service, dishRepo, userRepo := newCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, FirstName: "Frida"}
	added := []*entity.Dish{{ID: uuid.New(), Title: "Mole"}}
	available := []*entity.Dish{{ID: uuid.New(), Title: "Tamales"}}

	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	dishRepo.EXPECT().FindAddedByUser(ctx, userID).Return(added, nil)
	dishRepo.EXPECT().FindAllExcluding(ctx, []uuid.UUID{added[0].ID}).Return(available, nil)

	output, err := service.Dashboard(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, added, output.AddedDishes)
	assert.Equal(t, available, output.AvailableDishes)
}

func TestCollectionService_Dashboard_EmptyList(t *testing.T) {
	service, dishRepo, userRepo := newCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	available := []*entity.Dish{{ID: uuid.New(), Title: "Tamales"}}

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	dishRepo.EXPECT().FindAddedByUser(ctx, userID).Return(nil, nil)
	dishRepo.EXPECT().FindAllExcluding(ctx, []uuid.UUID{}).Return(available, nil)

	output, err := service.Dashboard(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, output.AddedDishes)
	assert.Equal(t, available, output.AvailableDishes)
}

func TestCollectionService_AddDish(t *testing.T) {
	service, dishRepo, _ := newCollectionService(t)

	ctx := context.Background()
	dishID := uuid.New()
	userID := uuid.New()

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(&entity.Dish{ID: dishID}, nil)
	dishRepo.EXPECT().AddToUser(ctx, dishID, userID).Return(nil)

	err := service.AddDish(ctx, dishID, userID)

	require.NoError(t, err)
}

func TestCollectionService_AddDish_NotFound(t *testing.T) {
	service, dishRepo, _ := newCollectionService(t)

	ctx := context.Background()
	dishID := uuid.New()

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(nil, repository.ErrDishNotFound)

	err := service.AddDish(ctx, dishID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDishNotFound)
}

func TestCollectionService_RemoveDish(t *testing.T) {
	service, dishRepo, _ := newCollectionService(t)

	ctx := context.Background()
	dishID := uuid.New()
	userID := uuid.New()

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(&entity.Dish{ID: dishID}, nil)
	dishRepo.EXPECT().RemoveFromUser(ctx, dishID, userID).Return(nil)

	err := service.RemoveDish(ctx, dishID, userID)

	require.NoError(t, err)
}

func TestCollectionService_CompleteDish_DeletesDish(t *testing.T) {
	service, dishRepo, _ := newCollectionService(t)

	ctx := context.Background()
	dishID := uuid.New()
	userID := uuid.New()

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(&entity.Dish{ID: dishID}, nil)
	dishRepo.EXPECT().IsAddedByUser(ctx, dishID, userID).Return(true, nil)
	dishRepo.EXPECT().Delete(ctx, dishID).Return(nil)

	err := service.CompleteDish(ctx, dishID, userID)

	require.NoError(t, err)
}

func TestCollectionService_CompleteDish_NotInList(t *testing.T) {
	service, dishRepo, _ := newCollectionService(t)

	ctx := context.Background()
	dishID := uuid.New()
	userID := uuid.New()

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(&entity.Dish{ID: dishID}, nil)
	dishRepo.EXPECT().IsAddedByUser(ctx, dishID, userID).Return(false, nil)

	err := service.CompleteDish(ctx, dishID, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDishNotInCollection)
}

func TestCollectionService_CompleteDish_NotFound(t *testing.T) {
	service, dishRepo, _ := newCollectionService(t)

	ctx := context.Background()
	dishID := uuid.New()

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(nil, repository.ErrDishNotFound)

	err := service.CompleteDish(ctx, dishID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDishNotFound)
}
