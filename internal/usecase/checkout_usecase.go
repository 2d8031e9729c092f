package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput carries everything a checkout needs.
type CheckoutInput struct {
	Cart   SessionCart
	Form   *entity.CheckoutForm
	UserID *uuid.UUID
}

// CheckoutUsecase turns a cart into orders.
type CheckoutUsecase interface {
	// Checkout creates one order per product type in the cart inside a single transaction
	// and clears the cart on success.
	Checkout(ctx context.Context, input CheckoutInput) ([]*entity.Order, error)
}
