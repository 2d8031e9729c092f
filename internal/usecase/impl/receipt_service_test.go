package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type receiptFixture struct {
	orders   *mockRepo.MockOrderRepository
	qr       *mockService.MockQRCodeService
	storage  *mockService.MockReceiptStorage
	notifier *mockService.MockNotificationService
	service  usecase.ReceiptUsecase
}

func newReceiptFixture(t *testing.T) *receiptFixture {
	t.Helper()

	fx := &receiptFixture{
		orders:   mockRepo.NewMockOrderRepository(t),
		qr:       mockService.NewMockQRCodeService(t),
		storage:  mockService.NewMockReceiptStorage(t),
		notifier: mockService.NewMockNotificationService(t),
	}
	fx.service = NewReceiptService(ReceiptServiceParams{
		OrderRepo:       fx.orders,
		QRService:       fx.qr,
		Storage:         fx.storage,
		NotificationSvc: fx.notifier,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func newTestOrder() *entity.Order {
	id := uuid.New()
	kitID := uuid.New()

	return &entity.Order{
		ID:        id,
		Reference: entity.NewOrderReference(entity.ProductTypeKit, id),
		Kind:      entity.ProductTypeKit,
		Customer:  entity.OrderCustomer{FirstName: "Ada", LastName: "Obi", Email: "ada@example.com"},
		Total:     decimal.RequireFromString("4000.00"),
		Details:   &entity.KitOrderDetails{CallUpNumber: "LA/24A/1", State: "Lagos", LGA: "Ikeja"},
		Items: []*entity.OrderItem{{
			ID:              uuid.New(),
			OrderID:         id,
			Product:         entity.ProductRef{Type: entity.ProductTypeKit, ID: kitID},
			Price:           decimal.RequireFromString("2000.00"),
			Quantity:        2,
			VariationFields: map[string]string{entity.FieldSize: "M"},
		}},
		CreatedAt: time.Now(),
	}
}

func TestReceiptService_ProcessOrderPlaced_Success(t *testing.T) {
	fx := newReceiptFixture(t)
	ctx := context.Background()
	order := newTestOrder()

	fx.orders.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.qr.EXPECT().GenerateOrderQR(order.Reference).Return([]byte("png-bytes"), nil)
	fx.storage.EXPECT().Put(ctx, "receipts/"+order.Reference+".png", "image/png", []byte("png-bytes")).Return(nil)

	var stored []byte
	fx.storage.EXPECT().Put(ctx, "receipts/"+order.Reference+".json", "application/json", mock.Anything).
		Run(func(_ context.Context, _, _ string, data []byte) { stored = data }).
		Return(nil)
	fx.notifier.EXPECT().SendTopicNotification(ctx, "orders-kit", "New kit order", mock.AnythingOfType("string"), map[string]string{
		"order_id":  order.ID.String(),
		"reference": order.Reference,
		"kind":      "kit",
	}).Return(nil)

	err := fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: order.ID.String(), Reference: order.Reference})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stored, &doc))
	assert.Equal(t, order.Reference, doc["reference"])
	assert.Equal(t, "4000", doc["total"])
	assert.Equal(t, "LA/24A/1", doc["details"].(map[string]any)[entity.FieldCallUpNumber])
	assert.Len(t, doc["items"], 1)
}

func TestReceiptService_ProcessOrderPlaced_Errors(t *testing.T) {
	t.Run("malformed order id", func(t *testing.T) {
		fx := newReceiptFixture(t)

		err := fx.service.ProcessOrderPlaced(context.Background(), &service.OrderPlacedEvent{OrderID: "nope"})

		assert.True(t, errors.Is(err, usecase.ErrInvalidOrderEvent))
	})

	t.Run("order not found", func(t *testing.T) {
		fx := newReceiptFixture(t)
		ctx := context.Background()
		id := uuid.New()

		fx.orders.EXPECT().FindOrderByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

		err := fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: id.String()})

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := newReceiptFixture(t)
		ctx := context.Background()
		order := newTestOrder()
		storageErr := errors.New("bucket unavailable")

		fx.orders.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
		fx.qr.EXPECT().GenerateOrderQR(order.Reference).Return([]byte("png"), nil)
		fx.storage.EXPECT().Put(ctx, mock.Anything, "image/png", mock.Anything).Return(storageErr)

		err := fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: order.ID.String()})

		assert.True(t, errors.Is(err, storageErr))
	})

	t.Run("notification failure", func(t *testing.T) {
		fx := newReceiptFixture(t)
		ctx := context.Background()
		order := newTestOrder()

		fx.orders.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
		fx.qr.EXPECT().GenerateOrderQR(order.Reference).Return([]byte("png"), nil)
		fx.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
		fx.notifier.EXPECT().SendTopicNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("fcm down"))

		err := fx.service.ProcessOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: order.ID.String()})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to notify staff")
	})
}
