package postgres

import (
	"context"
	"time"

	"potluck/internal/domain/entity"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/domain/repository"
	"potluck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session, representing one logged-in browser.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSessionInvalid.WrapMessage("session token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("session user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session record by its securely stored hash.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	session := toSessionDomain(&sessionM)

	// Check if the session has expired
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// DeleteByTokenHash removes a session (logout).
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.SessionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}
