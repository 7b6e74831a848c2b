package models

import "time"

// User role constants.
const (
	// RoleUser marks a regular customer account.
	RoleUser = "user"
	// RoleAdmin marks a platform administrator account.
	RoleAdmin = "admin"
)

// User status constants.
const (
	// UserStatusActive marks a usable account.
	UserStatusActive = "active"
	// UserStatusInactive marks a suspended account.
	UserStatusInactive = "inactive"
)

// User represents a customer or administrator account.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"-"` // Surrogate primary key.

	UserID   string `gorm:"type:text;not null;uniqueIndex" json:"user_id"` // Opaque public identifier.
	Email    string `gorm:"type:text;not null;uniqueIndex" json:"email"`   // Unique login email.
	FullName string `gorm:"type:text;not null" json:"full_name"`           // Display name.
	Password string `gorm:"type:text" json:"-"`                            // Bcrypt hash; empty for OAuth-only accounts.

	GoogleID string `gorm:"type:text" json:"google_id,omitempty"` // External identity provider ID.
	Picture  string `gorm:"type:text" json:"picture,omitempty"`   // Profile picture URL.

	Role    string  `gorm:"type:text;not null;default:user" json:"role"`           // Authorization role.
	Balance float64 `gorm:"type:decimal(20,8);not null;default:0" json:"balance"`  // Account balance.
	Status  string  `gorm:"type:text;not null;default:active" json:"status"`       // Account lifecycle state.

	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`                      // Last update timestamp, nil until first change.
}
