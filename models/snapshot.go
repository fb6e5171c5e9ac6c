package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SnapshotKinds are the analysis types the dashboard saves. The kind column
// carries a matching check constraint.
var SnapshotKinds = []string{"BCG", "SWOT", "PESTLE", "PORTER", "VRIO", "ANSOFF"}

// IsValidSnapshotKind reports whether kind is one of SnapshotKinds.
func IsValidSnapshotKind(kind string) bool {
	for _, k := range SnapshotKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Main Snapshot Model (GORM)
// ═══════════════════════════════════════════════════════════

// Snapshot is an immutable capture of one analysis. Created and read back,
// never updated.
type Snapshot struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Kind      string         `json:"kind" gorm:"not null;check:kind IN ('BCG','SWOT','PESTLE','PORTER','VRIO','ANSOFF');index"`
	Payload   datatypes.JSON `json:"payload" gorm:"type:jsonb;not null;default:'{}'"`
	Note      *string        `json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_snapshots_created,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Snapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Snapshot) TableName() string {
	return "snapshots"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SnapshotRequest struct {
	Kind    string         `json:"kind" binding:"required" example:"BCG"`
	Payload datatypes.JSON `json:"payload" binding:"required"`
	Note    *string        `json:"note" example:"demo"`
}

// BCGPayload is the payload shape of kind=BCG snapshots.
type BCGPayload struct {
	Points []BCGPoint `json:"points"`
}
