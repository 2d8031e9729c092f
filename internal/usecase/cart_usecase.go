// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"iter"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AddToCartInput defines a request to put a product into the cart.
type AddToCartInput struct {
	Product          entity.ProductRef
	Quantity         int
	OverrideQuantity bool
	VariationFields  map[string]string
}

// RemoveFromCartInput identifies the entry to remove. Nil VariationFields removes the
// product's entry with the smallest key.
type RemoveFromCartInput struct {
	Product         entity.ProductRef
	VariationFields map[string]string
}

// --- Output DTOs ---

// CartSummary is the priced view of a cart returned to clients.
type CartSummary struct {
	Items      []*entity.CartItem `json:"items"`
	Count      int                `json:"count"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

// SessionCart is a cart bound to one session for the duration of a request.
// Every mutation is written back into the session immediately; persisting the
// session itself is the caller's job.
type SessionCart interface {
	// Key is the session value key the cart lives under.
	Key() string

	// Add resolves the product in the catalog and adds it. Non-purchasable products
	// produce a rejected outcome, not an error.
	Add(ctx context.Context, input AddToCartInput) (entity.AddOutcome, error)

	// Remove deletes one entry of a product and returns its key, or "" when nothing matched.
	Remove(input RemoveFromCartInput) (string, error)

	// SetQuantity edits an entry directly; zero or less removes it.
	SetQuantity(key string, quantity int) (bool, error)

	// Items lazily yields each entry with its resolved product. Entries that cannot be
	// resolved are skipped and logged.
	Items(ctx context.Context) iter.Seq[*entity.CartItem]

	// Lines returns the raw entries with parsed references plus the unparsable keys.
	Lines() ([]entity.CartLine, []string)

	// Summary materializes Items with count and total.
	Summary(ctx context.Context) *CartSummary

	// Cleanup drops entries whose product was deleted or is no longer purchasable.
	// It returns nil when nothing was removed.
	Cleanup(ctx context.Context) (*entity.CleanupReport, error)

	Len() int
	TotalPrice() decimal.Decimal
	IsEmpty() bool
	Clear() error
}

// CartUsecase opens the cart of a session.
type CartUsecase interface {
	// Open returns the cart for the session. With a user ID the user-scoped cart is used,
	// and an anonymous cart is moved into it when the user has none yet.
	Open(ctx context.Context, session *entity.Session, userID *uuid.UUID) (SessionCart, error)
}
