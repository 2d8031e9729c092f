package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase exposes a customer's order history.
type OrderUsecase interface {
	// ListOrders returns the customer's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// OrderQRCode renders the QR code of an order owned by the customer.
	OrderQRCode(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
