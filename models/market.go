package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Market Model (GORM)
// ═══════════════════════════════════════════════════════════

type Market struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null;uniqueIndex"`
	GrowthRate float64   `json:"growth_rate" gorm:"type:numeric(8,3);not null"` // percent
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (m *Market) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Market) TableName() string {
	return "markets"
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type MarketIn struct {
	Name       string  `json:"name" binding:"required" example:"US SMB HR"`
	GrowthRate float64 `json:"growth_rate" example:"14"`
}

type BulkMarketsRequest struct {
	Items []MarketIn `json:"items" binding:"required,dive"`
}

type BulkMarketsResponse struct {
	Items []Market `json:"items"`
}
