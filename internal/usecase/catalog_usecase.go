package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase exposes the read-only product catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, productType entity.ProductType) ([]*entity.Product, error)
	GetProduct(ctx context.Context, ref entity.ProductRef) (*entity.Product, error)
}
