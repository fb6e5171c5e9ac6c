package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product shares are stored as fractions in [0,1], never percentages.
type Product struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string     `json:"name" gorm:"not null;index"`
	MarketID          *uuid.UUID `json:"market_id" gorm:"type:uuid;index:idx_products_market"`
	Market            *Market    `json:"market,omitempty" gorm:"foreignKey:MarketID;references:ID"`
	MarketShare       float64    `json:"market_share" gorm:"type:numeric(8,5);not null;check:market_share >= 0"`
	LargestRivalShare float64    `json:"largest_rival_share" gorm:"type:numeric(8,5);not null;check:largest_rival_share >= 0"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type ProductCreate struct {
	Name              string     `json:"name" binding:"required" example:"Alpha"`
	MarketID          *uuid.UUID `json:"market_id"`
	MarketShare       float64    `json:"market_share" binding:"min=0" example:"0.30"`
	LargestRivalShare float64    `json:"largest_rival_share" binding:"min=0" example:"0.25"`
}

type BulkProductsRequest struct {
	Items []ProductCreate `json:"items" binding:"required,dive"`
}

type BulkProductsResponse struct {
	Items []Product `json:"items"`
}
