package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase defines the interface for server side session management.
type SessionUsecase interface {
	// Load returns the live session named by the cookie value, or a fresh unsaved one
	// when the value is empty, malformed, unknown or expired.
	Load(ctx context.Context, cookieValue string) (*entity.Session, error)

	// Save persists a modified session with compare-and-swap on its version.
	// Unmodified sessions are not written.
	Save(ctx context.Context, session *entity.Session) error

	// PurgeExpired deletes sessions past their expiry and returns how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
