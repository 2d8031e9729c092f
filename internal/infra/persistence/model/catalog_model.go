package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KitModel mirrors the 'kits' table.
type KitModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	KitType     string          `gorm:"type:varchar(100);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available   bool            `gorm:"not null;default:true"`
	OutOfStock  bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (KitModel) TableName() string {
	return "kits"
}

// TourModel mirrors the 'tours' table.
type TourModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:text"`
	CampLocation string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available    bool            `gorm:"not null;default:true"`
	OutOfStock   bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TourModel) TableName() string {
	return "tours"
}

// ChurchItemModel mirrors the 'church_items' table.
type ChurchItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Church      string          `gorm:"type:varchar(100);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available   bool            `gorm:"not null;default:true"`
	OutOfStock  bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChurchItemModel) TableName() string {
	return "church_items"
}
