package entity

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Checkout form field names, also used as keys in validation errors.
const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldState         = "state"
	FieldLGA           = "lga"
	FieldFullName      = "full_name"
	FieldPickupOnCamp  = "pickup_on_camp"
	FieldDeliveryState = "delivery_state"
	FieldDeliveryLGA   = "delivery_lga"
)

// ErrUnknownOrderKind is returned when order details are requested for an unknown product type.
var ErrUnknownOrderKind = errors.New("unknown order kind")

// CheckoutForm carries the customer supplied fields of a checkout request.
type CheckoutForm struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CallUpNumber  string `json:"call_up_number"`
	State         string `json:"state"`
	LGA           string `json:"lga"`
	FullName      string `json:"full_name"`
	PickupOnCamp  bool   `json:"pickup_on_camp"`
	DeliveryState string `json:"delivery_state"`
	DeliveryLGA   string `json:"delivery_lga"`
}

// MissingFields returns the names of the fields required by the given kinds that are empty.
// The result is sorted and contains each name once.
func (f *CheckoutForm) MissingFields(kinds []ProductType) []string {
	required := map[string]string{
		FieldFirstName: f.FirstName,
		FieldLastName:  f.LastName,
		FieldEmail:     f.Email,
		FieldPhone:     f.Phone,
	}

	for _, kind := range kinds {
		switch kind {
		case ProductTypeKit:
			required[FieldCallUpNumber] = f.CallUpNumber
			required[FieldState] = f.State
			required[FieldLGA] = f.LGA
		case ProductTypeTour:
			required[FieldFullName] = f.FullName
		case ProductTypeChurch:
			if !f.PickupOnCamp {
				required[FieldDeliveryState] = f.DeliveryState
				required[FieldDeliveryLGA] = f.DeliveryLGA
			}
		}
	}

	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)

	return missing
}

// Customer returns the contact details shared by every order kind.
func (f *CheckoutForm) Customer() OrderCustomer {
	return OrderCustomer{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
	}
}

// Details builds the kind-specific order details from the form.
func (f *CheckoutForm) Details(kind ProductType) (OrderDetails, error) {
	switch kind {
	case ProductTypeKit:
		return &KitOrderDetails{CallUpNumber: f.CallUpNumber, State: f.State, LGA: f.LGA}, nil
	case ProductTypeTour:
		return &TourOrderDetails{FullName: f.FullName}, nil
	case ProductTypeChurch:
		details := &ChurchOrderDetails{PickupOnCamp: f.PickupOnCamp}
		if !f.PickupOnCamp {
			details.DeliveryState = f.DeliveryState
			details.DeliveryLGA = f.DeliveryLGA
		}

		return details, nil
	default:
		return nil, errors.Wrapf(ErrUnknownOrderKind, "kind %q", kind)
	}
}

// OrderCustomer holds the contact details of the person placing an order.
type OrderCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// OrderDetails is the kind-specific part of an order.
type OrderDetails interface {
	Kind() ProductType
	// Fields flattens the details for storage.
	Fields() map[string]string
}

// KitOrderDetails is attached to kit orders.
type KitOrderDetails struct {
	CallUpNumber string `json:"call_up_number"`
	State        string `json:"state"`
	LGA          string `json:"lga"`
}

func (d *KitOrderDetails) Kind() ProductType { return ProductTypeKit }

func (d *KitOrderDetails) Fields() map[string]string {
	return map[string]string{
		FieldCallUpNumber: d.CallUpNumber,
		FieldState:        d.State,
		FieldLGA:          d.LGA,
	}
}

// TourOrderDetails is attached to tour orders.
type TourOrderDetails struct {
	FullName string `json:"full_name"`
}

func (d *TourOrderDetails) Kind() ProductType { return ProductTypeTour }

func (d *TourOrderDetails) Fields() map[string]string {
	return map[string]string{FieldFullName: d.FullName}
}

// ChurchOrderDetails is attached to church apparel orders.
// Delivery fields are only set when the customer does not pick up on camp.
type ChurchOrderDetails struct {
	PickupOnCamp  bool   `json:"pickup_on_camp"`
	DeliveryState string `json:"delivery_state,omitempty"`
	DeliveryLGA   string `json:"delivery_lga,omitempty"`
}

func (d *ChurchOrderDetails) Kind() ProductType { return ProductTypeChurch }

func (d *ChurchOrderDetails) Fields() map[string]string {
	fields := map[string]string{FieldPickupOnCamp: strconv.FormatBool(d.PickupOnCamp)}
	if !d.PickupOnCamp {
		fields[FieldDeliveryState] = d.DeliveryState
		fields[FieldDeliveryLGA] = d.DeliveryLGA
	}

	return fields
}

// OrderDetailsFromFields rebuilds typed details from their stored form.
func OrderDetailsFromFields(kind ProductType, fields map[string]string) (OrderDetails, error) {
	switch kind {
	case ProductTypeKit:
		return &KitOrderDetails{
			CallUpNumber: fields[FieldCallUpNumber],
			State:        fields[FieldState],
			LGA:          fields[FieldLGA],
		}, nil
	case ProductTypeTour:
		return &TourOrderDetails{FullName: fields[FieldFullName]}, nil
	case ProductTypeChurch:
		pickup, _ := strconv.ParseBool(fields[FieldPickupOnCamp])

		return &ChurchOrderDetails{
			PickupOnCamp:  pickup,
			DeliveryState: fields[FieldDeliveryState],
			DeliveryLGA:   fields[FieldDeliveryLGA],
		}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownOrderKind, "kind %q", kind)
	}
}

// Order is created at checkout, one per product type present in the cart.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	Reference string          `json:"reference"`
	Kind      ProductType     `json:"kind"`
	Customer  OrderCustomer   `json:"customer"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Details   OrderDetails    `json:"details"`
	Items     []*OrderItem    `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewOrderReference returns a short human readable reference such as "KIT-1A2B3C4D".
func NewOrderReference(kind ProductType, id uuid.UUID) string {
	return fmt.Sprintf("%s-%X", prefixOf(kind), id[:4])
}

func prefixOf(kind ProductType) string {
	switch kind {
	case ProductTypeKit:
		return "KIT"
	case ProductTypeTour:
		return "TOUR"
	case ProductTypeChurch:
		return "CHURCH"
	default:
		return "ORD"
	}
}

// OrderItem is a line of an order, copied verbatim from a cart entry.
type OrderItem struct {
	ID              uuid.UUID         `json:"id"`
	OrderID         uuid.UUID         `json:"order_id"`
	Product         ProductRef        `json:"product"`
	Price           decimal.Decimal   `json:"price"`
	Quantity        int               `json:"quantity"`
	VariationFields map[string]string `json:"variation_fields"`
}

// Total returns price times quantity.
func (i *OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
