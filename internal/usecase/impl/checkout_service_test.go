package impl

import (
	"context"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	*txFixture
	publisher *mockService.MockEventPublisher
	service   usecase.CheckoutUsecase
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	tx := newTxFixture(t)
	publisher := mockService.NewMockEventPublisher(t)

	return &checkoutFixture{
		txFixture: tx,
		publisher: publisher,
		service: NewCheckoutService(CheckoutServiceParams{
			TxManager: tx.txManager,
			Publisher: publisher,
			Logger:    newDiscardLogger(),
		}),
	}
}

func validForm() *entity.CheckoutForm {
	return &entity.CheckoutForm{
		FirstName:    "Ada",
		LastName:     "Obi",
		Email:        "ada@example.com",
		Phone:        "08030000000",
		CallUpNumber: "LA/24A/1234",
		State:        "Lagos",
		LGA:          "Ikeja",
		FullName:     "Ada Obi",
		PickupOnCamp: true,
	}
}

func TestCheckoutService_Checkout_ExampleScenario(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	userID := uuid.New()

	kit := newTestProduct(entity.ProductTypeKit, "2000.00")
	tour := newTestProduct(entity.ProductTypeTour, "5000.00")
	cart, _ := openSeededCart(t, fx.catalog,
		cartLine{product: kit, quantity: 2, fields: map[string]string{entity.FieldSize: "M"}},
		cartLine{product: tour, quantity: 1, fields: map[string]string{entity.FieldCallUpNumber: "x"}},
	)

	fx.expectExecute(ctx)
	fx.factory.EXPECT().NewCatalogRepository().Return(fx.catalog)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orders)
	fx.catalog.EXPECT().FindProduct(ctx, kit.Ref()).Return(kit, nil)
	fx.catalog.EXPECT().FindProduct(ctx, tour.Ref()).Return(tour, nil)

	var created []*entity.Order
	fx.orders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { created = append(created, order) }).
		Return(nil).Times(2)
	fx.orders.EXPECT().CreateOrderItem(ctx, mock.AnythingOfType("*entity.OrderItem")).Return(nil).Times(2)

	fx.publisher.EXPECT().
		PublishOrderPlacedEvent(ctx, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool { return e.RequestID == "req-1" })).
		Return(nil).Times(2)

	orders, err := fx.service.Checkout(ctx, usecase.CheckoutInput{Cart: cart, Form: validForm(), UserID: &userID})

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, created, orders)

	assert.Equal(t, entity.ProductTypeKit, orders[0].Kind)
	assert.Equal(t, entity.ProductTypeTour, orders[1].Kind)
	for _, order := range orders {
		require.Len(t, order.Items, 1)
		assert.Equal(t, order.ID, order.Items[0].OrderID)
		assert.Equal(t, &userID, order.UserID)
		assert.Equal(t, entity.NewOrderReference(order.Kind, order.ID), order.Reference)
	}
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("4000")))
	assert.True(t, orders[1].Total.Equal(decimal.RequireFromString("5000")))
	assert.Equal(t, "LA/24A/1234", orders[0].Details.Fields()[entity.FieldCallUpNumber])
	assert.Equal(t, "Ada Obi", orders[1].Details.Fields()[entity.FieldFullName])

	assert.True(t, cart.IsEmpty())
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := newCheckoutFixture(t)

	cart, _ := openSeededCart(t, fx.catalog)

	orders, err := fx.service.Checkout(context.Background(), usecase.CheckoutInput{Cart: cart, Form: validForm()})

	assert.Nil(t, orders)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_Checkout_OnlyCorruptEntriesIsEmpty(t *testing.T) {
	fx := newCheckoutFixture(t)

	cart := mockUsecase.NewMockSessionCart(t)
	cart.EXPECT().Lines().Return(nil, []string{"garbage"})

	_, err := fx.service.Checkout(context.Background(), usecase.CheckoutInput{Cart: cart, Form: validForm()})

	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_Checkout_MissingFields(t *testing.T) {
	fx := newCheckoutFixture(t)

	kit := newTestProduct(entity.ProductTypeKit, "2000.00")
	church := newTestProduct(entity.ProductTypeChurch, "1500.00")
	cart, _ := openSeededCart(t, fx.catalog,
		cartLine{product: kit, quantity: 1},
		cartLine{product: church, quantity: 1},
	)

	form := &entity.CheckoutForm{FirstName: "Ada", LastName: "Obi", Email: "ada@example.com", Phone: "0803"}

	_, err := fx.service.Checkout(context.Background(), usecase.CheckoutInput{Cart: cart, Form: form})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, map[string]string{
		entity.FieldCallUpNumber:  "required",
		entity.FieldState:         "required",
		entity.FieldLGA:           "required",
		entity.FieldDeliveryState: "required",
		entity.FieldDeliveryLGA:   "required",
	}, validationErr.Fields())
	assert.Equal(t, 2, cart.Len())
}

func TestCheckoutService_Checkout_PriceMismatchClearsCart(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	kit := newTestProduct(entity.ProductTypeKit, "2000.00")
	cart, session := openSeededCart(t, fx.catalog, cartLine{product: kit, quantity: 1})

	repriced := *kit
	repriced.Price = decimal.RequireFromString("2500.00")

	fx.expectExecute(ctx)
	fx.factory.EXPECT().NewCatalogRepository().Return(fx.catalog)
	fx.catalog.EXPECT().FindProduct(ctx, kit.Ref()).Return(&repriced, nil)

	orders, err := fx.service.Checkout(ctx, usecase.CheckoutInput{Cart: cart, Form: validForm()})

	assert.Nil(t, orders)
	assert.True(t, errors.Is(err, domainerrors.ErrPriceMismatch))
	assert.True(t, cart.IsEmpty())
	assert.True(t, session.IsModified())
}

func TestCheckoutService_Checkout_UnavailableProduct(t *testing.T) {
	tests := []struct {
		name    string
		product func(p *entity.Product) (*entity.Product, error)
	}{
		{
			name: "deleted",
			product: func(_ *entity.Product) (*entity.Product, error) {
				return nil, repository.ErrProductNotFound
			},
		},
		{
			name: "out of stock",
			product: func(p *entity.Product) (*entity.Product, error) {
				sold := *p
				sold.OutOfStock = true

				return &sold, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newCheckoutFixture(t)
			ctx := context.Background()

			tour := newTestProduct(entity.ProductTypeTour, "5000.00")
			cart, _ := openSeededCart(t, fx.catalog, cartLine{product: tour, quantity: 1})

			fx.expectExecute(ctx)
			fx.factory.EXPECT().NewCatalogRepository().Return(fx.catalog)
			fx.catalog.EXPECT().FindProduct(ctx, tour.Ref()).Return(tt.product(tour))

			_, err := fx.service.Checkout(ctx, usecase.CheckoutInput{Cart: cart, Form: validForm()})

			assert.True(t, errors.Is(err, domainerrors.ErrProductUnavailable))
			assert.Equal(t, 1, cart.Len())
		})
	}
}

func TestCheckoutService_Checkout_FailureKeepsCart(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	kit := newTestProduct(entity.ProductTypeKit, "2000.00")
	tour := newTestProduct(entity.ProductTypeTour, "5000.00")
	cart, _ := openSeededCart(t, fx.catalog,
		cartLine{product: kit, quantity: 2},
		cartLine{product: tour, quantity: 1},
	)

	fx.expectExecute(ctx)
	fx.factory.EXPECT().NewCatalogRepository().Return(fx.catalog)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orders)
	fx.catalog.EXPECT().FindProduct(ctx, kit.Ref()).Return(kit, nil)
	fx.catalog.EXPECT().FindProduct(ctx, tour.Ref()).Return(tour, nil)

	dbErr := errors.New("insert failed")
	fx.orders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Times(2)
	fx.orders.EXPECT().CreateOrderItem(ctx, mock.MatchedBy(func(item *entity.OrderItem) bool {
		return item.Product == kit.Ref()
	})).Return(nil).Once()
	fx.orders.EXPECT().CreateOrderItem(ctx, mock.MatchedBy(func(item *entity.OrderItem) bool {
		return item.Product == tour.Ref()
	})).Return(dbErr).Once()

	orders, err := fx.service.Checkout(ctx, usecase.CheckoutInput{Cart: cart, Form: validForm()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.Contains(t, err.Error(), "failed to execute checkout transaction")
	assert.Nil(t, orders)
	assert.Equal(t, 3, cart.Len())
}

func TestCheckoutService_Checkout_PublishFailureIsIgnored(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	church := newTestProduct(entity.ProductTypeChurch, "1500.00")
	cart, _ := openSeededCart(t, fx.catalog, cartLine{product: church, quantity: 2, fields: map[string]string{entity.FieldSize: "XL"}})

	fx.expectExecute(ctx)
	fx.factory.EXPECT().NewCatalogRepository().Return(fx.catalog)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orders)
	fx.catalog.EXPECT().FindProduct(ctx, church.Ref()).Return(church, nil)
	fx.orders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.orders.EXPECT().CreateOrderItem(ctx, mock.MatchedBy(func(item *entity.OrderItem) bool {
		return item.Quantity == 2 && item.VariationFields[entity.FieldSize] == "XL"
	})).Return(nil)
	fx.publisher.EXPECT().PublishOrderPlacedEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	orders, err := fx.service.Checkout(ctx, usecase.CheckoutInput{Cart: cart, Form: validForm()})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].UserID)
	assert.Equal(t, map[string]string{entity.FieldPickupOnCamp: "true"}, orders[0].Details.Fields())
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutService_Checkout_RequiresCart(t *testing.T) {
	fx := newCheckoutFixture(t)

	_, err := fx.service.Checkout(context.Background(), usecase.CheckoutInput{Form: validForm()})

	assert.Error(t, err)
}
