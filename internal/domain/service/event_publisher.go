package service

import (
	"context"
	"time"
)

// Message attributes set on every order event.
const (
	AttrEvent     = "event"
	AttrOrderID   = "order_id"
	AttrKind      = "kind"
	AttrRequestID = "request_id"

	EventOrderPlaced = "order.placed"
)

// OrderPlacedEvent is published once per order created at checkout and consumed by the receipt worker.
type OrderPlacedEvent struct {
	RequestID string `json:"request_id,omitempty"`
	OrderID   string `json:"order_id"`
	Reference string `json:"reference"`
	Kind      string `json:"kind"`
	Email     string `json:"email"`
	Total     string `json:"total"` // Decimal string, never a float
}

// Attributes returns the message attributes subscribers can filter on.
func (e *OrderPlacedEvent) Attributes() map[string]string {
	attrs := map[string]string{
		AttrEvent:   EventOrderPlaced,
		AttrOrderID: e.OrderID,
		AttrKind:    e.Kind,
	}
	if e.RequestID != "" {
		attrs[AttrRequestID] = e.RequestID
	}

	return attrs
}

// PushEnvelope is the body Pub/Sub POSTs to a push subscription.
// Data travels base64 encoded, which encoding/json does for []byte.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type PushMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
}

type EventPublisher interface {
	// PublishOrderPlacedEvent returns once the event is accepted by the broker.
	PublishOrderPlacedEvent(ctx context.Context, event *OrderPlacedEvent) error
	Close() error
}
