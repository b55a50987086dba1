package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created on first successful email sign-in.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OTPCode is the single live one-time code for an email address.
type OTPCode struct {
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	Attempts  int
	CreatedAt time.Time
}

// IsExpired reports whether the code can no longer be used at now.
func (c *OTPCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
