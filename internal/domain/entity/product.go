// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType tags the kind of catalog record a cart entry or order refers to.
type ProductType string

const (
	ProductTypeKit    ProductType = "kit"
	ProductTypeTour   ProductType = "tour"
	ProductTypeChurch ProductType = "church"
)

// ProductTypes lists every product kind in checkout order.
var ProductTypes = []ProductType{ProductTypeKit, ProductTypeTour, ProductTypeChurch}

// IsValid reports whether t is one of the known product kinds.
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeKit, ProductTypeTour, ProductTypeChurch:
		return true
	default:
		return false
	}
}

// Variation field names understood by the cart.
const (
	FieldSize           = "size"
	FieldCallUpNumber   = "call_up_number"
	FieldCustomNameText = "custom_name_text"
)

// ProductRef identifies a catalog record independent of its variations.
type ProductRef struct {
	Type ProductType `json:"type"`
	ID   uuid.UUID   `json:"id"`
}

// Product is a purchasable catalog record of any kind.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Type        ProductType     `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	OutOfStock  bool            `json:"out_of_stock"`
	// Kit-only: e.g. "khaki", "crested vest".
	KitType string `json:"kit_type,omitempty"`
	// Tour-only: the camp the tour runs from.
	CampLocation string `json:"camp_location,omitempty"`
	// Church-only: the fellowship the apparel is made for.
	Church    string    `json:"church,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ref returns the product's catalog reference.
func (p *Product) Ref() ProductRef {
	return ProductRef{Type: p.Type, ID: p.ID}
}

// IsPurchasable reports whether the product is available and in stock.
func (p *Product) IsPurchasable() bool {
	return p != nil && p.Available && !p.OutOfStock
}
