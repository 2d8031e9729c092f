package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
// Each product kind lives in its own table.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindProduct retrieves a kit, tour or church item by its reference.
func (repo *catalogRepository) FindProduct(ctx context.Context, ref entity.ProductRef) (*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("id = ?", ref.ID)

	var err error
	var product *entity.Product
	switch ref.Type {
	case entity.ProductTypeKit:
		var kitM model.KitModel
		if err = query.First(&kitM).Error; err == nil {
			product = toKitDomain(&kitM)
		}
	case entity.ProductTypeTour:
		var tourM model.TourModel
		if err = query.First(&tourM).Error; err == nil {
			product = toTourDomain(&tourM)
		}
	case entity.ProductTypeChurch:
		var churchM model.ChurchItemModel
		if err = query.First(&churchM).Error; err == nil {
			product = toChurchItemDomain(&churchM)
		}
	default:
		return nil, domainerrors.ErrInvalidProductType.WrapMessage(string(ref.Type))
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s product", ref.Type)
	}

	return product, nil
}

// ListProducts retrieves every product of one kind, newest first.
func (repo *catalogRepository) ListProducts(ctx context.Context, productType entity.ProductType) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	switch productType {
	case entity.ProductTypeKit:
		var kitModels []*model.KitModel
		if err := query.Find(&kitModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list kits")
		}

		return mapProducts(kitModels, toKitDomain), nil
	case entity.ProductTypeTour:
		var tourModels []*model.TourModel
		if err := query.Find(&tourModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list tours")
		}

		return mapProducts(tourModels, toTourDomain), nil
	case entity.ProductTypeChurch:
		var churchModels []*model.ChurchItemModel
		if err := query.Find(&churchModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list church items")
		}

		return mapProducts(churchModels, toChurchItemDomain), nil
	default:
		return nil, domainerrors.ErrInvalidProductType.WrapMessage(string(productType))
	}
}

// --- Mapper Functions ---

func mapProducts[M any](models []*M, toDomain func(*M) *entity.Product) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toDomain(m))
	}

	return products
}

// toKitDomain converts a GORM KitModel to a domain Product.
func toKitDomain(data *model.KitModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Type:        entity.ProductTypeKit,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Available:   data.Available,
		OutOfStock:  data.OutOfStock,
		KitType:     data.KitType,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toTourDomain converts a GORM TourModel to a domain Product.
func toTourDomain(data *model.TourModel) *entity.Product {
	return &entity.Product{
		ID:           data.ID,
		Type:         entity.ProductTypeTour,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Available:    data.Available,
		OutOfStock:   data.OutOfStock,
		CampLocation: data.CampLocation,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toChurchItemDomain converts a GORM ChurchItemModel to a domain Product.
func toChurchItemDomain(data *model.ChurchItemModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Type:        entity.ProductTypeChurch,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Available:   data.Available,
		OutOfStock:  data.OutOfStock,
		Church:      data.Church,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
