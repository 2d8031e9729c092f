package worker

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/worker/handler"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockReceiptUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	receiptUC := mockUsecase.NewMockReceiptUsecase(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:    cfg,
		Logger:    logger,
		ReceiptUC: receiptUC,
		Verifier:  func(*http.Request) error { return nil },
	})

	return newEcho(cfg, logger, push), receiptUC
}

func TestWorkerServer_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWorkerServer_PushReachesReceiptUsecase(t *testing.T) {
	e, receiptUC := newTestEcho(t)
	receiptUC.EXPECT().ProcessOrderPlaced(mock.Anything, mock.Anything).Return(nil).Once()

	data := base64.StdEncoding.EncodeToString([]byte(`{"order_id":"6f1c1a8e-0c43-4b43-9d8f-0d5b7a8c1e11","kind":"kit"}`))
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"`+data+`","messageId":"1"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorkerServer_OversizedPushRejected(t *testing.T) {
	e, _ := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"`+strings.Repeat("A", 2048)+`"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
