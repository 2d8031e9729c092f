package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders created at checkout.
type OrderRepository interface {
	// CreateOrder inserts the order header with its kind-specific details. Items are not written.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderItem inserts one line of an existing order.
	CreateOrderItem(ctx context.Context, item *entity.OrderItem) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves every order placed by a customer, newest first, with items.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
