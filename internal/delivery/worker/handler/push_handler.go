// Package handler contains the Pub/Sub push handlers of the receipt worker.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier validates the OIDC token attached to a push request.
type TokenVerifier func(req *http.Request) error

// PushHandler turns order.placed pushes into stored receipts and staff notifications.
type PushHandler struct {
	verifier  TokenVerifier
	logger    *slog.Logger
	receiptUC usecase.ReceiptUsecase
}

type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	ReceiptUC usecase.ReceiptUsecase
	Verifier  TokenVerifier `optional:"true"`
}

// NewPushHandler verifies OIDC tokens only for Google pushes outside development
// unless a verifier is supplied.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifier := params.Verifier

	if verifier == nil &&
		params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		verifier = verifyPubSubToken
	}

	return &PushHandler{
		verifier:  verifier,
		logger:    params.Logger,
		receiptUC: params.ReceiptUC,
	}
}

// HandlePush processes one order.placed push.
// The status code is the acknowledgement: 2xx acks the message, anything else
// makes Pub/Sub redeliver it. Messages that can never succeed (undecodable,
// invalid or naming an unknown order) are dropped with 204 so they are not
// redelivered forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifier != nil {
		if err := h.verifier(c.Request()); err != nil {
			h.logger.Warn("push rejected", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope service.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("undecodable push envelope dropped", slog.Any("error", err))

		return c.NoContent(http.StatusNoContent)
	}

	var event service.OrderPlacedEvent
	if err := json.Unmarshal(envelope.Message.Data, &event); err != nil {
		h.logger.Error("undecodable order event dropped",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	requestID := h.extractRequestID(c.Request().Context(), &envelope.Message, &event)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("reference", event.Reference),
		slog.String("message_id", envelope.Message.MessageID),
	)
	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	err := h.receiptUC.ProcessOrderPlaced(ctx, &event)
	switch {
	case err == nil:
		logger.Info("receipt stored")

		return c.NoContent(http.StatusOK)
	case isRetryableError(err):
		logger.Error("order event failed, will be redelivered", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	default:
		logger.Warn("order event dropped", slog.Any("error", err))

		return c.NoContent(http.StatusNoContent)
	}
}

func isRetryableError(err error) bool {
	return !errors.Is(err, usecase.ErrInvalidOrderEvent) && !errors.Is(err, domainerrors.ErrOrderNotFound)
}

// extractRequestID prefers the message attribute, then the event body, then
// the X-Request-Id of the push itself.
func (h *PushHandler) extractRequestID(ctx context.Context, msg *service.PushMessage, event *service.OrderPlacedEvent) string {
	if requestID := msg.Attributes[service.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken checks the Google-signed OIDC token Pub/Sub attaches to
// authenticated pushes. The audience is the URL the push was sent to.
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}

	switch payload.Issuer {
	case "accounts.google.com", "https://accounts.google.com":
	default:
		return errors.Errorf("unexpected token issuer %q", payload.Issuer)
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email is not verified")
	}

	return nil
}
