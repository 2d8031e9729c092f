package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCustomerNotFound is returned when a customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDuplicateCustomer is returned when the email is already registered.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

// CustomerRepository persists storefront accounts.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
}
