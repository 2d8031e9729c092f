package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger, _ := newBufferedLogger()
	m := NewRequestIDMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderCloudTrace, "trace-123/4;o=1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Process(func(c echo.Context) error {
		assert.Equal(t, "trace-123", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})(c))

	assert.Equal(t, "trace-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Run("debug logs every request with session", func(t *testing.T) {
		logger, buf := newBufferedLogger()
		cfg := &config.Config{}
		cfg.Env.Debug = true
		m := NewLoggerMiddleware(logger, cfg)

		c, _ := newTestContext(http.MethodGet, "/api/v1/cart")
		session := entity.NewSession(time.Now(), time.Hour)
		deliverycontext.SetSession(c, session)

		require.NoError(t, m.Handle(okHandler)(c))
		assert.Contains(t, buf.String(), `"status":200`)
		assert.Contains(t, buf.String(), session.ID.String())
	})

	t.Run("quiet mode only logs failures", func(t *testing.T) {
		logger, buf := newBufferedLogger()
		m := NewLoggerMiddleware(logger, &config.Config{})

		c, _ := newTestContext(http.MethodGet, "/api/v1/cart")
		require.NoError(t, m.Handle(okHandler)(c))
		assert.Empty(t, buf.String())

		c, _ = newTestContext(http.MethodGet, "/api/v1/cart")
		err := m.Handle(func(echo.Context) error { return errors.New("db down") })(c)
		require.Error(t, err)
		assert.Contains(t, buf.String(), `"status":500`)
		assert.Contains(t, buf.String(), "db down")
	})
}
