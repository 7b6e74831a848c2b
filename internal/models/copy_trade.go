package models

import "time"

// CopyTrade status constants.
const (
	// CopyTradeStatusActive marks a running copy relationship.
	CopyTradeStatusActive = "active"
	// CopyTradeStatusStopped marks an ended copy relationship.
	CopyTradeStatusStopped = "stopped"
)

// CopyTrade records a user copying a trader with an allocated amount.
type CopyTrade struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"-"` // Surrogate primary key.

	CopyTradeID string `gorm:"type:text;not null;uniqueIndex" json:"copy_trade_id"` // Opaque public identifier.
	UserID      string `gorm:"type:text;not null;index" json:"user_id"`             // Owning user.
	TraderID    string `gorm:"type:text;not null;index" json:"trader_id"`           // Copied trader.

	Amount        float64 `gorm:"type:decimal(20,8);not null" json:"amount"`                  // Allocated amount.
	CurrentProfit float64 `gorm:"type:decimal(20,8);not null;default:0" json:"current_profit"` // Running profit.

	Status    string     `gorm:"type:text;not null;default:active" json:"status"` // Copy lifecycle state.
	StartedAt time.Time  `gorm:"not null" json:"started_at"`                      // Copy start time.
	EndedAt   *time.Time `json:"ended_at,omitempty"`                              // Copy end time, nil while active.
}
