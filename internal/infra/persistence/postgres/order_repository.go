package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists the order header. Items are written separately with CreateOrderItem.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("duplicate order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt

	return nil
}

// CreateOrderItem persists one order line.
func (repo *orderRepository) CreateOrderItem(ctx context.Context, item *entity.OrderItem) error {
	itemM := fromOrderItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindOrdersByUser retrieves all orders placed by a customer, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel and its items to a domain Order.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	kind := entity.ProductType(data.Kind)
	details, err := entity.OrderDetailsFromFields(kind, data.Details.Data())
	if err != nil {
		return nil, errors.Wrapf(err, "order %s", data.ID)
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toOrderItemDomain(itemM))
	}

	return &entity.Order{
		ID:        data.ID,
		Reference: data.Reference,
		Kind:      kind,
		Customer: entity.OrderCustomer{
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     data.Email,
			Phone:     data.Phone,
		},
		UserID:    data.UserID,
		Total:     data.Total,
		Details:   details,
		Items:     items,
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromOrderDomain converts a domain Order to a GORM OrderModel without its items.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	details := map[string]string{}
	if data.Details != nil {
		details = data.Details.Fields()
	}

	return &model.OrderModel{
		ID:        data.ID,
		Reference: data.Reference,
		Kind:      string(data.Kind),
		FirstName: data.Customer.FirstName,
		LastName:  data.Customer.LastName,
		Email:     data.Customer.Email,
		Phone:     data.Customer.Phone,
		UserID:    data.UserID,
		Total:     data.Total,
		Details:   datatypes.NewJSONType(details),
		CreatedAt: data.CreatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:      data.ID,
		OrderID: data.OrderID,
		Product: entity.ProductRef{
			Type: entity.ProductType(data.ProductType),
			ID:   data.ProductID,
		},
		Price:           data.Price,
		Quantity:        data.Quantity,
		VariationFields: data.VariationFields.Data(),
	}
}

// fromOrderItemDomain converts a domain OrderItem to a GORM OrderItemModel.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	fields := data.VariationFields
	if fields == nil {
		fields = map[string]string{}
	}

	return &model.OrderItemModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		ProductType:     string(data.Product.Type),
		ProductID:       data.Product.ID,
		Price:           data.Price,
		Quantity:        data.Quantity,
		VariationFields: datatypes.NewJSONType(fields),
	}
}
