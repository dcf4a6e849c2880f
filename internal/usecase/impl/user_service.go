// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"potluck/config"
	deliverycontext "potluck/internal/delivery/context"
	"potluck/internal/domain/entity"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/domain/repository"
	"potluck/internal/domain/service"
	"potluck/internal/usecase"
	"potluck/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokenSvc    service.SessionTokenService
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	TokenSvc    service.SessionTokenService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokenSvc:    params.TokenSvc,
		sessionTTL:  params.Config.SessionTTL(),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The duplicate
// email check runs before field validation so a taken address is reported
// even when other fields are also wrong, matching the order the signup form
// surfaces its errors.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	if err := validation.Struct(input); err != nil {
		srv.log(ctx).Warn("Registration input invalid", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	rawToken, tokenHash, err := srv.tokenSvc.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	expiresAt := time.Now().Add(srv.sessionTTL)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newSession := &entity.Session{
			UserID:    newUser.ID,
			TokenHash: tokenHash,
			ExpiresAt: expiresAt,
		}

		if err := repoFactory.SessionRepo().Create(ctx, newSession); err != nil {
			return errors.Wrap(err, "failed to open session during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, SessionToken: rawToken, ExpiresAt: expiresAt}, nil
}

// Login orchestrates the login process. A missing account and a wrong
// password both come back as ErrInvalidCredentials so the response never
// reveals which emails are registered.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	loginUser, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loginUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	rawToken, tokenHash, err := srv.tokenSvc.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	newSession := &entity.Session{
		UserID:    loginUser.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(srv.sessionTTL),
	}

	if err := srv.sessionRepo.Create(ctx, newSession); err != nil {
		srv.log(ctx).Error("Failed to store session", slog.Any("userID", loginUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", loginUser.ID))

	return &usecase.AuthOutput{User: loginUser, SessionToken: rawToken, ExpiresAt: newSession.ExpiresAt}, nil
}

// Logout deletes the session behind the presented cookie token.
func (srv *userService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return errors.Wrap(domainerrors.ErrNotLoggedIn, "logout without session cookie")
	}

	tokenHash := srv.tokenSvc.HashToken(rawToken)

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrNotLoggedIn, "logout with unknown session")
		}

		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Debug("Logout completed")

	return nil
}

// Authenticate resolves a cookie token to its user. The user row is loaded
// fresh on every call so a deleted account cuts its sessions off immediately.
func (srv *userService) Authenticate(ctx context.Context, rawToken string) (*entity.User, error) {
	if rawToken == "" {
		return nil, errors.Wrap(domainerrors.ErrAuthenticationRequired, "request without session cookie")
	}

	tokenHash := srv.tokenSvc.HashToken(rawToken)

	foundSession, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session lookup failed")
		}

		srv.log(ctx).Error("Failed to look up session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up session")
	}

	sessionUser, err := srv.userRepo.FindByID(ctx, foundSession.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return sessionUser, nil
}
