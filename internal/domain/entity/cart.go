package entity

import (
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	cartKeyPairSeparator  = ":::"
	cartKeyFieldSeparator = "|"
)

// Rejection reasons reported by Cart.Add.
const (
	RejectReasonUnavailable = "product is not available"
	RejectReasonOutOfStock  = "product is out of stock"
)

// ErrInvalidCartKey is returned when a stored cart key cannot be parsed back into a product reference.
var ErrInvalidCartKey = errors.New("invalid cart key")

// upperCasedFields are normalized to upper case before a key is generated.
var upperCasedFields = map[string]struct{}{
	FieldCallUpNumber:   {},
	FieldCustomNameText: {},
}

// GenerateCartKey builds the deterministic key of a cart line.
// Variation fields are sorted by name so the key does not depend on map order,
// and every name and value is query-escaped so it can never contain a separator.
func GenerateCartKey(productType ProductType, productID uuid.UUID, variationFields map[string]string) string {
	var b strings.Builder
	b.WriteString(string(productType))
	b.WriteString(cartKeyPairSeparator)
	b.WriteString(productID.String())

	for _, name := range slices.Sorted(maps.Keys(variationFields)) {
		b.WriteString(cartKeyFieldSeparator)
		b.WriteString(url.QueryEscape(name))
		b.WriteString(cartKeyPairSeparator)
		b.WriteString(url.QueryEscape(variationFields[name]))
	}

	return b.String()
}

// ParseCartKey recovers the product reference encoded at the start of a cart key.
func ParseCartKey(key string) (ProductRef, error) {
	base, _, _ := strings.Cut(key, cartKeyFieldSeparator)

	rawType, rawID, ok := strings.Cut(base, cartKeyPairSeparator)
	if !ok {
		return ProductRef{}, errors.Wrapf(ErrInvalidCartKey, "missing separator in %q", key)
	}

	productType := ProductType(rawType)
	if !productType.IsValid() {
		return ProductRef{}, errors.Wrapf(ErrInvalidCartKey, "unknown product type %q", rawType)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return ProductRef{}, errors.Wrapf(ErrInvalidCartKey, "bad product id %q", rawID)
	}

	return ProductRef{Type: productType, ID: id}, nil
}

// NormalizeVariationFields returns a copy of fields with the call-up number and
// custom name text upper-cased. Every other field passes through unchanged.
func NormalizeVariationFields(fields map[string]string) map[string]string {
	if len(fields) == 0 {
		return map[string]string{}
	}

	normalized := make(map[string]string, len(fields))
	for name, value := range fields {
		if _, ok := upperCasedFields[name]; ok {
			value = strings.ToUpper(value)
		}
		normalized[name] = value
	}

	return normalized
}

// CartEntry is the stored value of one cart line.
type CartEntry struct {
	Quantity        int               `json:"quantity"`
	Price           decimal.Decimal   `json:"price"`
	VariationFields map[string]string `json:"variation_fields"`
}

// Total returns the stored unit price multiplied by the quantity.
func (e *CartEntry) Total() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// CartLine is a cart entry together with its key and parsed product reference.
type CartLine struct {
	Key   string
	Ref   ProductRef
	Entry *CartEntry
}

// AddOutcome reports whether Cart.Add changed the cart.
type AddOutcome struct {
	Added    bool   `json:"added"`
	Key      string `json:"key,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Cart is the mapping from cart keys to entries kept in a session.
type Cart struct {
	Entries map[string]*CartEntry `json:"entries"`

	modified bool
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Entries: make(map[string]*CartEntry)}
}

// Add puts quantity units of product into the cart.
// Non-purchasable products are rejected without touching the cart.
// The stored price is always replaced with the product's current price.
func (c *Cart) Add(product *Product, quantity int, overrideQuantity bool, variationFields map[string]string) AddOutcome {
	if product == nil || !product.Available {
		return AddOutcome{Reason: RejectReasonUnavailable}
	}
	if product.OutOfStock {
		return AddOutcome{Reason: RejectReasonOutOfStock}
	}

	fields := NormalizeVariationFields(variationFields)
	key := GenerateCartKey(product.Type, product.ID, fields)

	entry, ok := c.Entries[key]
	if !ok {
		entry = &CartEntry{Quantity: 0, VariationFields: fields}
		c.Entries[key] = entry
	}

	if overrideQuantity {
		entry.Quantity = quantity
	} else {
		entry.Quantity += quantity
	}
	entry.Price = product.Price
	c.modified = true

	return AddOutcome{Added: true, Key: key, Quantity: entry.Quantity}
}

// Remove deletes one entry of the referenced product and returns its key.
// With nil variationFields the matching entry with the smallest key is removed;
// otherwise only the entry whose stored fields are exactly equal is removed.
// An empty key means nothing matched.
func (c *Cart) Remove(ref ProductRef, variationFields map[string]string) string {
	var wanted map[string]string
	if variationFields != nil {
		wanted = NormalizeVariationFields(variationFields)
	}

	for _, key := range c.Keys() {
		parsed, err := ParseCartKey(key)
		if err != nil || parsed != ref {
			continue
		}
		if wanted != nil && !maps.Equal(c.Entries[key].VariationFields, wanted) {
			continue
		}

		c.Delete(key)

		return key
	}

	return ""
}

// SetQuantity edits the quantity of an existing entry. A quantity of zero or less removes it.
func (c *Cart) SetQuantity(key string, quantity int) bool {
	entry, ok := c.Entries[key]
	if !ok {
		return false
	}

	if quantity <= 0 {
		c.Delete(key)

		return true
	}

	entry.Quantity = quantity
	c.modified = true

	return true
}

// Delete drops key from the cart.
func (c *Cart) Delete(key string) {
	if _, ok := c.Entries[key]; !ok {
		return
	}

	delete(c.Entries, key)
	c.modified = true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	if len(c.Entries) == 0 {
		return
	}

	c.Entries = make(map[string]*CartEntry)
	c.modified = true
}

// Keys returns the cart keys in lexicographic order.
func (c *Cart) Keys() []string {
	return slices.Sorted(maps.Keys(c.Entries))
}

// Lines returns the entries with a parseable key, in key order, plus the keys that failed to parse.
func (c *Cart) Lines() (lines []CartLine, corrupt []string) {
	for _, key := range c.Keys() {
		ref, err := ParseCartKey(key)
		if err != nil {
			corrupt = append(corrupt, key)

			continue
		}
		lines = append(lines, CartLine{Key: key, Ref: ref, Entry: c.Entries[key]})
	}

	return lines, corrupt
}

// Len returns the number of units in the cart, not the number of distinct lines.
func (c *Cart) Len() int {
	total := 0
	for _, entry := range c.Entries {
		total += entry.Quantity
	}

	return total
}

// TotalPrice sums the stored unit price times quantity of every entry.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c.Entries {
		total = total.Add(entry.Total())
	}

	return total
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

// Modified reports whether the cart changed since it was loaded.
func (c *Cart) Modified() bool {
	return c.modified
}

// CartItem is a cart entry enriched with its resolved product.
type CartItem struct {
	Key             string            `json:"key"`
	Product         *Product          `json:"product"`
	Quantity        int               `json:"quantity"`
	UnitPrice       decimal.Decimal   `json:"unit_price"`
	TotalPrice      decimal.Decimal   `json:"total_price"`
	VariationFields map[string]string `json:"variation_fields"`
}

// CartRemoval describes an entry removed by cleanup.
type CartRemoval struct {
	Key             string            `json:"key"`
	Product         ProductRef        `json:"product"`
	Name            string            `json:"name,omitempty"`
	VariationFields map[string]string `json:"variation_fields,omitempty"`
}

// CleanupReport lists the entries a cleanup pass removed.
type CleanupReport struct {
	Deleted    []CartRemoval `json:"deleted"`
	OutOfStock []CartRemoval `json:"out_of_stock"`
}
