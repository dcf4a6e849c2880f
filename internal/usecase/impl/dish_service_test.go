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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDishService(t *testing.T) (usecase.DishUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockDishRepository, *mockRepo.MockCategoryRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	dishRepo := mockRepo.NewMockDishRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewDishService(DishServiceParams{
		TxManager:    txManager,
		DishRepo:     dishRepo,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return service, txManager, dishRepo, categoryRepo
}

func validCreateDishInput(creatorID uuid.UUID) *usecase.CreateDishInput {
	return &usecase.CreateDishInput{
		Title:       "Mole Poblano",
		Description: "A rich sauce of chiles and chocolate over turkey.",
		CreatorID:   creatorID,
	}
}

func TestDishService_NewDishForm(t *testing.T) {
	service, _, _, categoryRepo := newDishService(t)

	ctx := context.Background()
	categories := []*entity.Category{{ID: uuid.New(), Label: "Mexican"}}

	categoryRepo.EXPECT().FindAll(ctx).Return(categories, nil)

	output, err := service.NewDishForm(ctx)

	require.NoError(t, err)
	assert.Nil(t, output.Dish)
	assert.Equal(t, categories, output.Categories)
}

func TestDishService_CreateDish_Success(t *testing.T) {
	service, txManager, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	dishID := uuid.New()
	categoryID := uuid.New()
	input := validCreateDishInput(creatorID)
	input.CategoryIDs = []uuid.UUID{categoryID}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockDishRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Dish")).
				Run(func(ctx context.Context, dish *entity.Dish) {
					assert.Equal(t, creatorID, dish.CreatedByUserID)
					dish.ID = dishID
				}).
				Return(nil)
			mockCategoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
			mockDishRepo.EXPECT().AttachCategory(ctx, dishID, categoryID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	created := &entity.Dish{ID: dishID, Title: input.Title, CreatedByUserID: creatorID}
	dishRepo.EXPECT().FindByID(ctx, dishID).Return(created, nil)

	got, err := service.CreateDish(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, dishID, got.ID)
}

func TestDishService_CreateDish_NewCategoryFromText(t *testing.T) {
	service, txManager, dishRepo, categoryRepo := newDishService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	dishID := uuid.New()
	newCategoryID := uuid.New()
	input := validCreateDishInput(creatorID)
	input.CategoryText = "Oaxacan"

	categoryRepo.EXPECT().FindByLabel(ctx, "Oaxacan").Return(nil, repository.ErrCategoryNotFound)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockDishRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Dish")).
				Run(func(ctx context.Context, dish *entity.Dish) {
					dish.ID = dishID
				}).
				Return(nil)
			mockCategoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					assert.Equal(t, "Oaxacan", category.Label)
					category.ID = newCategoryID
				}).
				Return(nil)
			mockDishRepo.EXPECT().AttachCategory(ctx, dishID, newCategoryID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(&entity.Dish{ID: dishID}, nil)

	_, err := service.CreateDish(ctx, input)

	require.NoError(t, err)
}

func TestDishService_CreateDish_DuplicateCategoryText(t *testing.T) {
	service, _, _, categoryRepo := newDishService(t)

	ctx := context.Background()
	input := validCreateDishInput(uuid.New())
	input.CategoryText = "Mexican"

	categoryRepo.EXPECT().FindByLabel(ctx, "Mexican").Return(&entity.Category{ID: uuid.New(), Label: "Mexican"}, nil)

	got, err := service.CreateDish(ctx, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

// A duplicate typed label must be reported even when the dish fields are
// invalid too: the label check runs before field validation.
func TestDishService_CreateDish_DuplicateLabelReportedBeforeValidation(t *testing.T) {
	service, _, _, categoryRepo := newDishService(t)

	ctx := context.Background()
	input := &usecase.CreateDishInput{
		Title:        "X",
		Description:  "too short",
		CategoryText: "Mexican",
		CreatorID:    uuid.New(),
	}

	categoryRepo.EXPECT().FindByLabel(ctx, "Mexican").Return(&entity.Category{ID: uuid.New(), Label: "Mexican"}, nil)

	_, err := service.CreateDish(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDishService_CreateDish_ValidationFailed(t *testing.T) {
	service, _, _, _ := newDishService(t)

	ctx := context.Background()
	input := &usecase.CreateDishInput{
		Title:       "X",
		Description: "too short",
		CreatorID:   uuid.New(),
	}

	got, err := service.CreateDish(ctx, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDishService_CreateDish_TitleTooShort(t *testing.T) {
	service, _, _, _ := newDishService(t)

	ctx := context.Background()
	input := &usecase.CreateDishInput{
		Title:       "Ph",
		Description: "A fragrant beef and noodle broth.",
		CreatorID:   uuid.New(),
	}

	got, err := service.CreateDish(ctx, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "Title must be at least 3 characters!")
}

func TestDishService_UpdateDish_TitleTooShort(t *testing.T) {
	service, _, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	ownerID := uuid.New()
	dish := &entity.Dish{ID: dishID, CreatedByUserID: ownerID}

	input := &usecase.UpdateDishInput{
		DishID:      dishID,
		Title:       "Ph",
		Description: "A fragrant beef and noodle broth.",
		RequesterID: ownerID,
	}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)

	got, err := service.UpdateDish(ctx, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDishService_GetDish_Success(t *testing.T) {
	service, _, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	ownerID := uuid.New()
	viewerID := uuid.New()
	dish := &entity.Dish{ID: dishID, Title: "Mole", CreatedByUserID: ownerID}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)
	dishRepo.EXPECT().IsAddedByUser(ctx, dishID, viewerID).Return(true, nil)

	output, err := service.GetDish(ctx, dishID, viewerID)

	require.NoError(t, err)
	assert.False(t, output.IsOwner)
	assert.True(t, output.InUserList)
}

func TestDishService_GetDish_NotFound(t *testing.T) {
	service, _, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(nil, repository.ErrDishNotFound)

	output, err := service.GetDish(ctx, dishID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDishNotFound)
}

func TestDishService_EditDishForm_Success(t *testing.T) {
	service, _, dishRepo, categoryRepo := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	ownerID := uuid.New()
	attached := &entity.Category{ID: uuid.New(), Label: "Mexican"}
	other := &entity.Category{ID: uuid.New(), Label: "Oaxacan"}
	dish := &entity.Dish{ID: dishID, CreatedByUserID: ownerID, Categories: []*entity.Category{attached}}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)
	categoryRepo.EXPECT().FindAllExcluding(ctx, []uuid.UUID{attached.ID}).Return([]*entity.Category{other}, nil)

	output, err := service.EditDishForm(ctx, dishID, ownerID)

	require.NoError(t, err)
	assert.Equal(t, dish, output.Dish)
	assert.Equal(t, []*entity.Category{other}, output.Categories)
}

func TestDishService_EditDishForm_NotOwner(t *testing.T) {
	service, _, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	dish := &entity.Dish{ID: dishID, CreatedByUserID: uuid.New()}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)

	output, err := service.EditDishForm(ctx, dishID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotDishOwner)
}

func TestDishService_UpdateDish_Success(t *testing.T) {
	service, txManager, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	ownerID := uuid.New()
	keptCategoryID := uuid.New()
	staleCategory := &entity.Category{ID: uuid.New(), Label: "Stale"}
	dish := &entity.Dish{ID: dishID, Title: "Old", Description: "Old description here.", CreatedByUserID: ownerID}

	input := &usecase.UpdateDishInput{
		DishID:      dishID,
		Title:       "Mole Poblano",
		Description: "A rich sauce of chiles and chocolate over turkey.",
		CategoryIDs: []uuid.UUID{keptCategoryID},
		RequesterID: ownerID,
	}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil).Once()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDishRepo := mockRepo.NewMockDishRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().DishRepo().Return(mockDishRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockDishRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Dish")).
				Run(func(ctx context.Context, updated *entity.Dish) {
					assert.Equal(t, "Mole Poblano", updated.Title)
				}).
				Return(nil)

			// Every category outside the selection gets detached.
			mockCategoryRepo.EXPECT().FindAllExcluding(ctx, []uuid.UUID{keptCategoryID}).
				Return([]*entity.Category{staleCategory}, nil)
			mockDishRepo.EXPECT().DetachCategory(ctx, dishID, staleCategory.ID).Return(nil)

			mockCategoryRepo.EXPECT().FindByID(ctx, keptCategoryID).Return(&entity.Category{ID: keptCategoryID}, nil)
			mockDishRepo.EXPECT().AttachCategory(ctx, dishID, keptCategoryID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated := &entity.Dish{ID: dishID, Title: "Mole Poblano", CreatedByUserID: ownerID}
	dishRepo.EXPECT().FindByID(ctx, dishID).Return(updated, nil).Once()

	got, err := service.UpdateDish(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Mole Poblano", got.Title)
}

func TestDishService_UpdateDish_NotOwner(t *testing.T) {
	service, _, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	dish := &entity.Dish{ID: dishID, CreatedByUserID: uuid.New()}

	input := &usecase.UpdateDishInput{
		DishID:      dishID,
		Title:       "Mole Poblano",
		Description: "A rich sauce of chiles and chocolate over turkey.",
		RequesterID: uuid.New(),
	}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)

	got, err := service.UpdateDish(ctx, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotDishOwner)
}

// The label check outranks the ownership check, which outranks validation.
func TestDishService_UpdateDish_DuplicateLabelBeforeOwnership(t *testing.T) {
	service, _, _, categoryRepo := newDishService(t)

	ctx := context.Background()
	input := &usecase.UpdateDishInput{
		DishID:       uuid.New(),
		Title:        "Mole Poblano",
		Description:  "A rich sauce of chiles and chocolate over turkey.",
		CategoryText: "Mexican",
		RequesterID:  uuid.New(),
	}

	categoryRepo.EXPECT().FindByLabel(ctx, "Mexican").Return(&entity.Category{ID: uuid.New(), Label: "Mexican"}, nil)

	_, err := service.UpdateDish(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestDishService_UpdateDish_OwnershipBeforeValidation(t *testing.T) {
	service, _, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	dish := &entity.Dish{ID: dishID, CreatedByUserID: uuid.New()}

	input := &usecase.UpdateDishInput{
		DishID:      dishID,
		Title:       "X",
		Description: "too short",
		RequesterID: uuid.New(),
	}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)

	_, err := service.UpdateDish(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotDishOwner)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDishService_DeleteDish_Success(t *testing.T) {
	service, _, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	ownerID := uuid.New()
	dish := &entity.Dish{ID: dishID, CreatedByUserID: ownerID}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)
	dishRepo.EXPECT().Delete(ctx, dishID).Return(nil)

	err := service.DeleteDish(ctx, dishID, ownerID)

	require.NoError(t, err)
}

func TestDishService_DeleteDish_NotOwner(t *testing.T) {
	service, _, dishRepo, _ := newDishService(t)

	ctx := context.Background()
	dishID := uuid.New()
	dish := &entity.Dish{ID: dishID, CreatedByUserID: uuid.New()}

	dishRepo.EXPECT().FindByID(ctx, dishID).Return(dish, nil)

	err := service.DeleteDish(ctx, dishID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotDishOwner)
}
