package models

import "time"

// UserSession maps an opaque bearer token to a signed-in user.
// One row is created per login; logout deletes rows by token and there is
// no rotation or renewal.
type UserSession struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Surrogate primary key.

	SessionToken string `gorm:"type:text;not null;uniqueIndex"` // Opaque bearer credential.
	UserID       string `gorm:"type:text;not null;index"`       // Owning user's public identifier.

	ExpiresAt time.Time `gorm:"not null;index"`          // Hard expiry, checked on every resolution.
	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
}

// Expired reports whether the session's expiry is in the past.
func (s *UserSession) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
