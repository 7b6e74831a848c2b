package models

import (
	"time"

	"gorm.io/datatypes"
)

// Plan represents a subscription plan offered on the platform.
type Plan struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"-"` // Surrogate primary key.

	PlanID   string  `gorm:"type:text;not null;uniqueIndex" json:"plan_id"` // Opaque public identifier.
	Name     string  `gorm:"type:text;not null" json:"name"`                // Plan name.
	Price    float64 `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // Plan price.
	Duration string  `gorm:"type:text" json:"duration"`                     // Human-readable billing period.

	Features datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"features"` // Feature description list.
	Popular  bool           `gorm:"not null;default:false" json:"popular"`            // Highlighted plan flag.

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`    // Whether the plan is offered.
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}
