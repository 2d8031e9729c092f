package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned when no live session has the requested ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionVersionConflict is returned when a session was saved by someone else since it was loaded.
	ErrSessionVersionConflict = errors.New("session version conflict")
)

// SessionRepository stores server side sessions.
type SessionRepository interface {
	// FindSession retrieves an unexpired session.
	FindSession(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// CreateSession inserts a new session at version 1.
	CreateSession(ctx context.Context, session *entity.Session) error

	// UpdateSession writes the session only if its stored version still equals session.Version,
	// then increments the version. A lost race returns ErrSessionVersionConflict.
	UpdateSession(ctx context.Context, session *entity.Session) error

	// DeleteExpiredSessions removes every session that expired before the given time.
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}
