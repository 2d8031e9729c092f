package postgres

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// sessionRepository implements the repository.SessionRepository interface.
// Reads go to the primary so a request never sees a session older than the one it just wrote.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// FindSession retrieves an unexpired session by ID.
func (repo *sessionRepository) FindSession(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM)
}

// CreateSession inserts a brand new session at version 1.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	sessionM, err := fromSessionDomain(session)
	if err != nil {
		return err
	}
	sessionM.Version = 1

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSessionVersionConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.Version = sessionM.Version
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// UpdateSession writes the session values guarded by its version.
func (repo *sessionRepository) UpdateSession(ctx context.Context, session *entity.Session) error {
	values, err := encodeSessionValues(session.Values)
	if err != nil {
		return err
	}

	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND version = ?", session.ID, session.Version).
		Updates(map[string]any{
			"values":     values,
			"version":    gorm.Expr("version + 1"),
			"expires_at": session.ExpiresAt,
			"updated_at": now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionVersionConflict
	}

	session.Version++
	session.UpdatedAt = now

	return nil
}

// DeleteExpiredSessions removes sessions that expired before the given time.
func (repo *sessionRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", before).
		Delete(&model.SessionModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func encodeSessionValues(values map[string]json.RawMessage) (datatypes.JSON, error) {
	if values == nil {
		values = map[string]json.RawMessage{}
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session values")
	}

	return datatypes.JSON(raw), nil
}

// toSessionDomain converts a GORM SessionModel to a domain Session.
func toSessionDomain(data *model.SessionModel) (*entity.Session, error) {
	values := map[string]json.RawMessage{}
	if len(data.Values) > 0 {
		if err := json.Unmarshal(data.Values, &values); err != nil {
			return nil, errors.Wrapf(err, "failed to decode session %s", data.ID)
		}
	}

	return &entity.Session{
		ID:        data.ID,
		Values:    values,
		Version:   data.Version,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromSessionDomain converts a domain Session to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) (*model.SessionModel, error) {
	values, err := encodeSessionValues(data.Values)
	if err != nil {
		return nil, err
	}

	return &model.SessionModel{
		ID:        data.ID,
		Values:    values,
		Version:   data.Version,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
