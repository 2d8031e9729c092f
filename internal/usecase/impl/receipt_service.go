package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
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

const (
	contentTypePNG  = "image/png"
	contentTypeJSON = "application/json"
)

type receiptService struct {
	orderRepo       repository.OrderRepository
	qrService       service.QRCodeService
	storage         service.ReceiptStorage
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// ReceiptServiceParams holds dependencies for ReceiptService, injected by Fx.
type ReceiptServiceParams struct {
	fx.In

	OrderRepo       repository.OrderRepository
	QRService       service.QRCodeService
	Storage         service.ReceiptStorage
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewReceiptService creates a new receipt service instance
func NewReceiptService(params ReceiptServiceParams) usecase.ReceiptUsecase {
	return &receiptService{
		orderRepo:       params.OrderRepo,
		qrService:       params.QRService,
		storage:         params.Storage,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *receiptService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// receiptDocument is the JSON receipt stored next to the QR code.
type receiptDocument struct {
	Reference string               `json:"reference"`
	Kind      entity.ProductType   `json:"kind"`
	Customer  entity.OrderCustomer `json:"customer"`
	Details   map[string]string    `json:"details"`
	Items     []receiptLine        `json:"items"`
	Total     decimal.Decimal      `json:"total"`
	PlacedAt  time.Time            `json:"placed_at"`
}

type receiptLine struct {
	Product         entity.ProductRef `json:"product"`
	Quantity        int               `json:"quantity"`
	UnitPrice       decimal.Decimal   `json:"unit_price"`
	TotalPrice      decimal.Decimal   `json:"total_price"`
	VariationFields map[string]string `json:"variation_fields,omitempty"`
}

// ProcessOrderPlaced writes receipts/{reference}.png and receipts/{reference}.json, then notifies
// the staff topic of the order's kind. Rewriting an existing receipt is harmless, so redelivery is safe.
func (s *receiptService) ProcessOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrapf(usecase.ErrInvalidOrderEvent, "order id %q", event.OrderID)
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound.WrapMessage(event.OrderID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load order")
	}

	png, err := s.qrService.GenerateOrderQR(order.Reference)
	if err != nil {
		return errors.Wrap(err, "failed to render receipt QR code")
	}

	doc, err := json.Marshal(newReceiptDocument(order))
	if err != nil {
		return errors.Wrap(err, "failed to encode receipt")
	}

	prefix := constants.ReceiptKeyPrefix + order.Reference
	if err := s.storage.Put(ctx, prefix+".png", contentTypePNG, png); err != nil {
		return errors.Wrap(err, "failed to store receipt QR code")
	}
	if err := s.storage.Put(ctx, prefix+".json", contentTypeJSON, doc); err != nil {
		return errors.Wrap(err, "failed to store receipt")
	}

	s.log(ctx).Info("Receipt stored", slog.String("orderID", event.OrderID), slog.String("reference", order.Reference))

	topic := constants.OrderTopicPrefix + string(order.Kind)
	title := fmt.Sprintf("New %s order", order.Kind)
	body := fmt.Sprintf("%s %s placed %s (%d items, total %s)",
		order.Customer.FirstName, order.Customer.LastName, order.Reference, countUnits(order), order.Total.StringFixed(2))
	data := map[string]string{
		"order_id":  order.ID.String(),
		"reference": order.Reference,
		"kind":      string(order.Kind),
	}

	if err := s.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		return errors.Wrap(err, "failed to notify staff")
	}

	return nil
}

func newReceiptDocument(order *entity.Order) *receiptDocument {
	doc := &receiptDocument{
		Reference: order.Reference,
		Kind:      order.Kind,
		Customer:  order.Customer,
		Items:     make([]receiptLine, 0, len(order.Items)),
		Total:     order.Total,
		PlacedAt:  order.CreatedAt,
	}
	if order.Details != nil {
		doc.Details = order.Details.Fields()
	}

	for _, item := range order.Items {
		doc.Items = append(doc.Items, receiptLine{
			Product:         item.Product,
			Quantity:        item.Quantity,
			UnitPrice:       item.Price,
			TotalPrice:      item.Total(),
			VariationFields: item.VariationFields,
		})
	}

	return doc
}

func countUnits(order *entity.Order) int {
	units := 0
	for _, item := range order.Items {
		units += item.Quantity
	}

	return units
}
