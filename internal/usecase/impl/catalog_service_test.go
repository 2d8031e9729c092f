package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	srv := NewCatalogService(repo)
	ctx := context.Background()

	products := []*entity.Product{newTestProduct(entity.ProductTypeTour, "5000.00")}
	repo.EXPECT().ListProducts(ctx, entity.ProductTypeTour).Return(products, nil)

	got, err := srv.ListProducts(ctx, entity.ProductTypeTour)
	require.NoError(t, err)
	assert.Equal(t, products, got)

	_, err = srv.ListProducts(ctx, "hoodie")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProductType))
}

func TestCatalogService_GetProduct(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	srv := NewCatalogService(repo)
	ctx := context.Background()

	kit := newTestProduct(entity.ProductTypeKit, "2000.00")
	missing := entity.ProductRef{Type: entity.ProductTypeKit, ID: uuid.New()}
	repo.EXPECT().FindProduct(ctx, kit.Ref()).Return(kit, nil)
	repo.EXPECT().FindProduct(ctx, missing).Return(nil, repository.ErrProductNotFound)

	got, err := srv.GetProduct(ctx, kit.Ref())
	require.NoError(t, err)
	assert.Same(t, kit, got)

	_, err = srv.GetProduct(ctx, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	_, err = srv.GetProduct(ctx, entity.ProductRef{Type: "hoodie", ID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProductType))
}
