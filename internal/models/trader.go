package models

import "time"

// Trader risk level constants.
const (
	// RiskLow marks a conservative trading style.
	RiskLow = "Low"
	// RiskMedium marks a balanced trading style.
	RiskMedium = "Medium"
	// RiskHigh marks an aggressive trading style.
	RiskHigh = "High"
)

// Trader represents a professional trader available for copying.
type Trader struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"-"` // Surrogate primary key.

	TraderID string `gorm:"type:text;not null;uniqueIndex" json:"trader_id"` // Opaque public identifier.
	Name     string `gorm:"type:text;not null" json:"name"`                  // Display name.
	Image    string `gorm:"type:text" json:"image"`                          // Avatar URL.

	Profit    string `gorm:"type:text" json:"profit"`              // Display profit figure, e.g. "+58.24%".
	Followers int    `gorm:"not null;default:0" json:"followers"`  // Number of copiers.
	Risk      string `gorm:"type:text;not null" json:"risk"`       // Risk level label.
	Trades    int    `gorm:"not null;default:0" json:"trades"`     // Lifetime trade count.
	WinRate   string `gorm:"type:text" json:"win_rate"`            // Display win rate, e.g. "76.71%".

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`    // Whether the trader is listed.
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}
