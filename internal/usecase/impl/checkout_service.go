package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout places one order per product type present in the cart.
func (srv *checkoutService) Checkout(ctx context.Context, input usecase.CheckoutInput) ([]*entity.Order, error) {
	if input.Cart == nil {
		return nil, errors.New("cart is required for checkout")
	}

	form := input.Form
	if form == nil {
		form = &entity.CheckoutForm{}
	}

	lines, corrupt := input.Cart.Lines()
	for _, key := range corrupt {
		srv.log(ctx).Warn("Skipping cart entry with invalid key at checkout", slog.String("key", key))
	}
	if len(lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	kinds, groups := groupLinesByKind(lines)

	if missing := form.MissingFields(kinds); len(missing) > 0 {
		return nil, domainerrors.NewMissingFieldsError(missing)
	}

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.verifyPrices(ctx, repoFactory.NewCatalogRepository(), lines); err != nil {
			return err
		}

		orderRepo := repoFactory.NewOrderRepository()
		placed := make([]*entity.Order, 0, len(kinds))
		for _, kind := range kinds {
			order, err := srv.placeOrder(ctx, orderRepo, kind, groups[kind], form, input.UserID)
			if err != nil {
				return err
			}
			placed = append(placed, order)
		}
		orders = placed

		return nil
	})

	if errors.Is(err, domainerrors.ErrPriceMismatch) {
		srv.log(ctx).Warn("Cart price does not match catalog, clearing cart", slog.Any("error", err))
		if clearErr := input.Cart.Clear(); clearErr != nil {
			srv.log(ctx).Error("Failed to clear tampered cart", slog.Any("error", clearErr))
		}

		return nil, err
	}
	if errors.Is(err, domainerrors.ErrProductUnavailable) {
		return nil, err
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute checkout transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	if err := input.Cart.Clear(); err != nil {
		srv.log(ctx).Error("Failed to clear cart after checkout", slog.Any("error", err))
	}

	srv.publishOrderPlaced(ctx, orders)

	srv.log(ctx).Info("Checkout completed", slog.Int("orders", len(orders)))

	return orders, nil
}

// groupLinesByKind buckets the cart lines by product type and returns the kinds present in checkout order.
func groupLinesByKind(lines []entity.CartLine) ([]entity.ProductType, map[entity.ProductType][]entity.CartLine) {
	groups := make(map[entity.ProductType][]entity.CartLine)
	for _, line := range lines {
		groups[line.Ref.Type] = append(groups[line.Ref.Type], line)
	}

	kinds := make([]entity.ProductType, 0, len(groups))
	for _, kind := range entity.ProductTypes {
		if _, ok := groups[kind]; ok {
			kinds = append(kinds, kind)
		}
	}

	return kinds, groups
}

// verifyPrices compares every snapshot price with the current catalog price.
func (srv *checkoutService) verifyPrices(ctx context.Context, catalogRepo repository.CatalogRepository, lines []entity.CartLine) error {
	for _, line := range lines {
		product, err := catalogRepo.FindProduct(ctx, line.Ref)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductUnavailable.WrapMessage("product no longer exists: " + line.Key)
		}
		if err != nil {
			return errors.Wrap(err, "failed to load product for checkout")
		}

		if !product.IsPurchasable() {
			return domainerrors.ErrProductUnavailable.WrapMessage(product.Name)
		}

		if !product.Price.Equal(line.Entry.Price) {
			srv.log(ctx).Warn("Price mismatch",
				slog.String("key", line.Key),
				slog.String("cartPrice", line.Entry.Price.String()),
				slog.String("catalogPrice", product.Price.String()),
			)

			return domainerrors.ErrPriceMismatch.WrapMessage(line.Key)
		}
	}

	return nil
}

func (srv *checkoutService) placeOrder(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	kind entity.ProductType,
	lines []entity.CartLine,
	form *entity.CheckoutForm,
	userID *uuid.UUID,
) (*entity.Order, error) {
	details, err := form.Details(kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build order details")
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Entry.Total())
	}

	orderID := uuid.New()
	order := &entity.Order{
		ID:        orderID,
		Reference: entity.NewOrderReference(kind, orderID),
		Kind:      kind,
		Customer:  form.Customer(),
		UserID:    userID,
		Total:     total,
		Details:   details,
		CreatedAt: srv.now(),
	}

	if err := orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s order", kind)
	}

	for _, line := range lines {
		item := &entity.OrderItem{
			ID:              uuid.New(),
			OrderID:         orderID,
			Product:         line.Ref,
			Price:           line.Entry.Price,
			Quantity:        line.Entry.Quantity,
			VariationFields: line.Entry.VariationFields,
		}
		if err := orderRepo.CreateOrderItem(ctx, item); err != nil {
			return nil, errors.Wrapf(err, "failed to create item of %s order", kind)
		}
		order.Items = append(order.Items, item)
	}

	return order, nil
}

// publishOrderPlaced announces the new orders. Failures are logged and never undo the checkout.
func (srv *checkoutService) publishOrderPlaced(ctx context.Context, orders []*entity.Order) {
	if srv.publisher == nil {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for _, order := range orders {
		event := &service.OrderPlacedEvent{
			RequestID: requestID,
			OrderID:   order.ID.String(),
			Reference: order.Reference,
			Kind:      string(order.Kind),
			Email:     order.Customer.Email,
			Total:     order.Total.StringFixed(2),
		}
		if err := srv.publisher.PublishOrderPlacedEvent(ctx, event); err != nil {
			srv.log(ctx).Error("Failed to publish order placed event", slog.String("orderID", event.OrderID), slog.Any("error", err))
		}
	}
}
