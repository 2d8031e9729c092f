package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Kind-specific fields live in the Details JSONB column.
type OrderModel struct {
	ID        uuid.UUID                             `gorm:"type:uuid;primary_key"`
	Reference string                                `gorm:"type:varchar(32);unique;not null"`
	Kind      string                                `gorm:"type:varchar(20);not null;index"`
	FirstName string                                `gorm:"type:varchar(100);not null"`
	LastName  string                                `gorm:"type:varchar(100);not null"`
	Email     string                                `gorm:"type:varchar(255);not null"`
	Phone     string                                `gorm:"type:varchar(32);not null"`
	UserID    *uuid.UUID                            `gorm:"type:uuid;index"`
	Total     decimal.Decimal                       `gorm:"type:numeric(12,2);not null"`
	Details   datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID              uuid.UUID                             `gorm:"type:uuid;primary_key"`
	OrderID         uuid.UUID                             `gorm:"type:uuid;not null;index"`
	ProductType     string                                `gorm:"type:varchar(20);not null"`
	ProductID       uuid.UUID                             `gorm:"type:uuid;not null"`
	Price           decimal.Decimal                       `gorm:"type:numeric(12,2);not null"`
	Quantity        int                                   `gorm:"not null"`
	VariationFields datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
