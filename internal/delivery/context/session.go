package context

import (
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeySession is the echo.Context key of the request's *entity.Session.
	KeySession ContextKey = "session"

	// KeyCart is the echo.Context key of the request's usecase.SessionCart.
	KeyCart ContextKey = "cart"

	// KeyCleanupReport is the echo.Context key of the cart cleanup report, when entries were removed.
	KeyCleanupReport ContextKey = "cart_cleanup_report"

	// KeyUserID is the echo.Context key of the authenticated customer's uuid.UUID.
	KeyUserID ContextKey = "user_id"
)

// SetSession stores the request session.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the request session, if the session middleware ran.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}

// SetCart stores the request cart.
func SetCart(c echo.Context, cart usecase.SessionCart) {
	c.Set(string(KeyCart), cart)
}

// GetCart returns the request cart, if the cart middleware ran.
func GetCart(c echo.Context) (usecase.SessionCart, bool) {
	cart, ok := c.Get(string(KeyCart)).(usecase.SessionCart)

	return cart, ok && cart != nil
}

// SetCleanupReport stores the report of the cleanup pass run before the handler.
func SetCleanupReport(c echo.Context, report *entity.CleanupReport) {
	c.Set(string(KeyCleanupReport), report)
}

// GetCleanupReport returns the cleanup report, or nil when nothing was removed.
func GetCleanupReport(c echo.Context) *entity.CleanupReport {
	report, _ := c.Get(string(KeyCleanupReport)).(*entity.CleanupReport)

	return report
}

// SetUserID stores the authenticated customer.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the authenticated customer.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetUserIDPtr returns the authenticated customer or nil for anonymous requests.
func GetUserIDPtr(c echo.Context) *uuid.UUID {
	userID, ok := GetUserID(c)
	if !ok {
		return nil
	}

	return &userID
}
