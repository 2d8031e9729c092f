package middleware

import (
	"log/slog"
	"net/http"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionMiddleware loads the cookie session before the handler and saves it before the response is written.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
	cartUC    usecase.CartUsecase
	cfg       *config.SessionConfig
	logger    *slog.Logger
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	CartUC    usecase.CartUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUC: params.SessionUC,
		cartUC:    params.CartUC,
		cfg:       params.Config.Session,
		logger:    params.Logger,
	}
}

// Load attaches the session to the request. Handlers may save it themselves to surface conflicts;
// otherwise a modified session is saved just before the response is written.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var cookieValue string
		if cookie, err := c.Cookie(m.cfg.CookieName); err == nil {
			cookieValue = cookie.Value
		}

		session, err := m.sessionUC.Load(ctx, cookieValue)
		if err != nil {
			return errors.Wrap(err, "failed to load session")
		}
		deliverycontext.SetSession(c, session)

		if session.ID.String() != cookieValue {
			c.SetCookie(m.newCookie(session))
		}

		c.Response().Before(func() {
			// A handler may have swapped in a reloaded session.
			current, ok := deliverycontext.GetSession(c)
			if !ok {
				current = session
			}
			if err := m.sessionUC.Save(ctx, current); err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Failed to save session", slog.String("sessionID", current.ID.String()), slog.Any("error", err))
			}
		})

		return next(c)
	}
}

func (m *SessionMiddleware) newCookie(session *entity.Session) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    session.ID.String(),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Cart opens the request's cart and drops entries whose product is gone or no longer purchasable.
// It must run after Load and after the auth middleware so the user's cart is chosen.
func (m *SessionMiddleware) Cart(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		session, ok := deliverycontext.GetSession(c)
		if !ok {
			return errors.New("cart middleware requires a session")
		}

		cart, err := m.cartUC.Open(ctx, session, deliverycontext.GetUserIDPtr(c))
		if err != nil {
			return errors.Wrap(err, "failed to open cart")
		}

		report, err := cart.Cleanup(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to clean up cart")
		}

		deliverycontext.SetCart(c, cart)
		if report != nil {
			deliverycontext.SetCleanupReport(c, report)
		}

		return next(c)
	}
}

// SaveSession persists the request session now so a lost race can be reported to the client.
func SaveSession(c echo.Context, sessionUC usecase.SessionUsecase) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil
	}

	return sessionUC.Save(c.Request().Context(), session)
}

// SaveClearedCart persists a cart the handler has just cleared. Orders for its
// contents already exist, so a version conflict must not resurrect it: the
// session is reloaded, the cart cleared again and saved once more.
func SaveClearedCart(c echo.Context, sessionUC usecase.SessionUsecase, cartUC usecase.CartUsecase) error {
	err := SaveSession(c, sessionUC)
	if !errors.Is(err, domainerrors.ErrSessionConflict) {
		return err
	}

	ctx := c.Request().Context()
	stale, _ := deliverycontext.GetSession(c)

	fresh, err := sessionUC.Load(ctx, stale.ID.String())
	if err != nil {
		return errors.Wrap(err, "failed to reload session")
	}
	if fresh.ID != stale.ID {
		// The session is gone and its cart with it.
		return nil
	}

	cart, err := cartUC.Open(ctx, fresh, deliverycontext.GetUserIDPtr(c))
	if err != nil {
		return errors.Wrap(err, "failed to reopen cart")
	}
	if err := cart.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear reopened cart")
	}

	deliverycontext.SetSession(c, fresh)
	deliverycontext.SetCart(c, cart)

	return sessionUC.Save(ctx, fresh)
}
