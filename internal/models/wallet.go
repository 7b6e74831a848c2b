package models

import "time"

// WalletAddress stores an admin override for a deposit destination.
// Built-in defaults live in the handlers; only overrides are persisted.
type WalletAddress struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Surrogate primary key.

	Method  string `gorm:"type:text;not null;uniqueIndex"` // Payment method key, e.g. "bitcoin".
	Address string `gorm:"type:text;not null"`             // Destination address or account string.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
