package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	ttl         time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Lc          fx.Lifecycle `optional:"true"`
	SessionRepo repository.SessionRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService creates a new session service. When a lifecycle is available and a purge
// interval is configured, expired sessions are deleted in the background until the app stops.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := &sessionService{
		sessionRepo: params.SessionRepo,
		ttl:         params.Config.Session.TTL,
		now:         time.Now,
		logger:      params.Logger,
	}

	if params.Lc != nil && params.Config.Session.PurgeInterval > 0 {
		purgeCtx, cancelPurge := context.WithCancel(context.Background())
		interval := params.Config.Session.PurgeInterval

		params.Lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go srv.purgeLoop(purgeCtx, interval)

				return nil
			},
			OnStop: func(_ context.Context) error {
				cancelPurge()

				return nil
			},
		})
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load returns the session named by cookieValue or starts a new one.
func (srv *sessionService) Load(ctx context.Context, cookieValue string) (*entity.Session, error) {
	if cookieValue == "" {
		return srv.newSession(), nil
	}

	id, err := uuid.Parse(cookieValue)
	if err != nil {
		srv.log(ctx).Debug("Ignoring malformed session cookie", slog.Any("error", err))

		return srv.newSession(), nil
	}

	session, err := srv.sessionRepo.FindSession(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return srv.newSession(), nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load session", slog.String("sessionID", id.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load session")
	}

	if session.Expired(srv.now()) {
		return srv.newSession(), nil
	}

	return session, nil
}

func (srv *sessionService) newSession() *entity.Session {
	return entity.NewSession(srv.now(), srv.ttl)
}

// Save persists the session if it changed. Each save extends the expiry by the configured TTL.
func (srv *sessionService) Save(ctx context.Context, session *entity.Session) error {
	if session == nil || !session.IsModified() {
		return nil
	}

	now := srv.now()
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(srv.ttl)

	if session.IsNew() {
		if err := srv.sessionRepo.CreateSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}
		session.MarkSaved()

		return nil
	}

	err := srv.sessionRepo.UpdateSession(ctx, session)
	if errors.Is(err, repository.ErrSessionVersionConflict) {
		srv.log(ctx).Warn("Session changed concurrently", slog.String("sessionID", session.ID.String()), slog.Int64("version", session.Version))

		return domainerrors.ErrSessionConflict.WrapMessage("session was modified by another request")
	}
	if err != nil {
		return errors.Wrap(err, "failed to update session")
	}
	session.MarkSaved()

	return nil
}

// PurgeExpired deletes every session that has expired.
func (srv *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := srv.sessionRepo.DeleteExpiredSessions(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	if deleted > 0 {
		srv.log(ctx).Info("Purged expired sessions", slog.Int64("count", deleted))
	}

	return deleted, nil
}

func (srv *sessionService) purgeLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purgeCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			if _, err := srv.PurgeExpired(purgeCtx); err != nil {
				srv.logger.Error("Session purge failed", slog.Any("error", err))
			}
			cancel()
		}
	}
}
