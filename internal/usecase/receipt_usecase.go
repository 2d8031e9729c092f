package usecase

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrInvalidOrderEvent is returned for events that can never be processed, such as a malformed order ID.
var ErrInvalidOrderEvent = errors.New("invalid order event")

// ReceiptUsecase renders and distributes receipts for placed orders.
type ReceiptUsecase interface {
	// ProcessOrderPlaced stores the receipt of the order named by the event and notifies staff.
	ProcessOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error
}
