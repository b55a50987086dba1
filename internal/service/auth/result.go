package auth

import (
	"time"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// Session is returned by a successful VerifyOTP.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	User        *domain.User
}
