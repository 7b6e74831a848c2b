package models

import "time"

// Transaction type constants.
const (
	// TransactionTypeDeposit credits the user's balance once approved.
	TransactionTypeDeposit = "deposit"
	// TransactionTypeWithdrawal debits the user's balance once approved.
	TransactionTypeWithdrawal = "withdrawal"
	// TransactionTypeTrade records trading activity.
	TransactionTypeTrade = "trade"
)

// Transaction status constants.
const (
	// TransactionStatusPending awaits admin review.
	TransactionStatusPending = "pending"
	// TransactionStatusCompleted marks an approved transaction.
	TransactionStatusCompleted = "completed"
	// TransactionStatusRejected marks a rejected transaction.
	TransactionStatusRejected = "rejected"
)

// Transaction records a financial movement subject to admin approval.
type Transaction struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"-"` // Surrogate primary key.

	TransactionID string `gorm:"type:text;not null;uniqueIndex" json:"transaction_id"` // Opaque public identifier.
	UserID        string `gorm:"type:text;not null;index" json:"user_id"`              // Owning user.

	Type   string  `gorm:"type:text;not null" json:"type"`            // Transaction type.
	Amount float64 `gorm:"type:decimal(20,8);not null" json:"amount"` // Transaction amount.
	Method string  `gorm:"type:text" json:"method,omitempty"`         // Payment method label.
	Asset  string  `gorm:"type:text" json:"asset,omitempty"`          // Asset label for trades.

	Status string    `gorm:"type:text;not null;default:pending" json:"status"` // Approval state.
	Date   time.Time `gorm:"not null" json:"date"`                             // Submission time.

	ProcessedBy string     `gorm:"type:text" json:"processed_by,omitempty"` // Admin user_id that resolved it.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`                  // Resolution time.
}
