package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: catalogRepo}
}

func (srv *catalogService) ListProducts(ctx context.Context, productType entity.ProductType) ([]*entity.Product, error) {
	if !productType.IsValid() {
		return nil, domainerrors.ErrInvalidProductType.WrapMessage(string(productType))
	}

	products, err := srv.catalogRepo.ListProducts(ctx, productType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, ref entity.ProductRef) (*entity.Product, error) {
	if !ref.Type.IsValid() {
		return nil, domainerrors.ErrInvalidProductType.WrapMessage(string(ref.Type))
	}

	product, err := srv.catalogRepo.FindProduct(ctx, ref)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
