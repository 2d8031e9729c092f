package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when a catalog record does not exist.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the read-only lookup of kits, tours and church items.
type CatalogRepository interface {
	// FindProduct retrieves a product of any kind by its reference.
	FindProduct(ctx context.Context, ref entity.ProductRef) (*entity.Product, error)

	// ListProducts retrieves the products of one kind, newest first.
	// Unavailable products are included so callers can show them as sold out.
	ListProducts(ctx context.Context, productType entity.ProductType) ([]*entity.Product, error)
}
