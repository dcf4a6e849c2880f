package impl

import (
	"context"
	"testing"
	"time"

	"potluck/internal/domain/entity"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/domain/repository"
	mockRepo "potluck/internal/mocks/repository"
	mockService "potluck/internal/mocks/service"
	"potluck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockRepo.MockSessionRepository, *mockService.MockPasswordHasher, *mockService.MockSessionTokenService) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockSessionTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		TokenSvc:    tokenSvc,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return service, txManager, userRepo, sessionRepo, hasher, tokenSvc
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:       "Frida",
		LastName:        "Kahlo",
		Email:           "frida@example.com",
		Password:        "strong-password",
		ConfirmPassword: "strong-password",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	service, txManager, userRepo, _, hasher, tokenSvc := newUserService(t)

	ctx := context.Background()
	input := validRegisterInput()
	userID := uuid.New()

	userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	tokenSvc.EXPECT().Generate().Return("raw-token", "token-hash", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)
			mockSessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(ctx context.Context, session *entity.Session) {
					assert.Equal(t, userID, session.UserID)
					assert.Equal(t, "token-hash", session.TokenHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "raw-token", output.SessionToken)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.WithinDuration(t, time.Now().Add(time.Hour), output.ExpiresAt, 5*time.Second)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _, userRepo, _, _, _ := newUserService(t)

	ctx := context.Background()
	input := validRegisterInput()
	existing := &entity.User{ID: uuid.New(), Email: input.Email}

	userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)

	output, err := service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

// A taken email must be reported even when other fields are invalid too:
// the duplicate check runs before field validation.
func TestUserService_Register_DuplicateEmailReportedBeforeValidation(t *testing.T) {
	service, _, userRepo, _, _, _ := newUserService(t)

	ctx := context.Background()
	input := validRegisterInput()
	input.Password = "short"
	input.ConfirmPassword = "different"

	userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)

	_, err := service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_ValidationFailed(t *testing.T) {
	service, _, userRepo, _, _, _ := newUserService(t)

	ctx := context.Background()
	input := validRegisterInput()
	input.Password = "short"
	input.ConfirmPassword = "short"

	userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_PasswordMismatch(t *testing.T) {
	service, _, userRepo, _, _, _ := newUserService(t)

	ctx := context.Background()
	input := validRegisterInput()
	input.ConfirmPassword = "something-else"

	userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	_, err := service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	service, _, userRepo, sessionRepo, hasher, tokenSvc := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "frida@example.com", PasswordHash: "hashed-password"}

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Check("strong-password", "hashed-password").Return(true)
	tokenSvc.EXPECT().Generate().Return("raw-token", "token-hash", nil)
	sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "token-hash", session.TokenHash)
		}).
		Return(nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "strong-password"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "raw-token", output.SessionToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, _, userRepo, _, _, _ := newUserService(t)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, _, userRepo, _, hasher, _ := newUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "frida@example.com", PasswordHash: "hashed-password"}

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestUserService_Login_UniformError(t *testing.T) {
	service, _, userRepo, _, hasher, _ := newUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "frida@example.com", PasswordHash: "hashed-password"}

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	_, unknownErr := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	_, wrongErr := service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
}

func TestUserService_Logout_Success(t *testing.T) {
	service, _, _, sessionRepo, _, tokenSvc := newUserService(t)

	ctx := context.Background()

	tokenSvc.EXPECT().HashToken("raw-token").Return("token-hash")
	sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-hash").Return(nil)

	err := service.Logout(ctx, "raw-token")

	require.NoError(t, err)
}

func TestUserService_Logout_UnknownSession(t *testing.T) {
	service, _, _, sessionRepo, _, tokenSvc := newUserService(t)

	ctx := context.Background()

	tokenSvc.EXPECT().HashToken("raw-token").Return("token-hash")
	sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-hash").Return(repository.ErrSessionNotFound)

	err := service.Logout(ctx, "raw-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestUserService_Logout_NoCookie(t *testing.T) {
	service, _, _, _, _, _ := newUserService(t)

	err := service.Logout(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	service, _, userRepo, sessionRepo, _, tokenSvc := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	session := &entity.Session{ID: uuid.New(), UserID: userID, TokenHash: "token-hash", ExpiresAt: time.Now().Add(time.Hour)}
	user := &entity.User{ID: userID, Email: "frida@example.com"}

	tokenSvc.EXPECT().HashToken("raw-token").Return("token-hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "token-hash").Return(session, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := service.Authenticate(ctx, "raw-token")

	require.NoError(t, err)
	assert.Equal(t, userID, got.ID)
}

func TestUserService_Authenticate_ExpiredSession(t *testing.T) {
	service, _, _, sessionRepo, _, tokenSvc := newUserService(t)

	ctx := context.Background()

	tokenSvc.EXPECT().HashToken("raw-token").Return("token-hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "token-hash").Return(nil, repository.ErrSessionExpired)

	got, err := service.Authenticate(ctx, "raw-token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestUserService_Authenticate_UserDeleted(t *testing.T) {
	service, _, userRepo, sessionRepo, _, tokenSvc := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	session := &entity.Session{ID: uuid.New(), UserID: userID, TokenHash: "token-hash", ExpiresAt: time.Now().Add(time.Hour)}

	tokenSvc.EXPECT().HashToken("raw-token").Return("token-hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "token-hash").Return(session, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := service.Authenticate(ctx, "raw-token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestUserService_Authenticate_NoCookie(t *testing.T) {
	service, _, _, _, _, _ := newUserService(t)

	got, err := service.Authenticate(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}
