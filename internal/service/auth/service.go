package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/centralring-backend/internal/config"
	"github.com/heartmarshall/centralring-backend/internal/domain"
)

//go:generate moq -out auth_mock_test.go -pkg auth . otpStore userRepo mailer tokenIssuer

// otpStore keeps at most one outstanding code per email.
type otpStore interface {
	Save(ctx context.Context, code *domain.OTPCode) error
	Get(ctx context.Context, email string) (*domain.OTPCode, error)
	IncrementAttempts(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateOrGet(ctx context.Context, user *domain.User) (*domain.User, error)
}

type mailer interface {
	SendOTP(ctx context.Context, to, code string) error
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	AccessTTL() time.Duration
}

// Service implements passwordless email sign-in.
type Service struct {
	log    *slog.Logger
	otps   otpStore
	users  userRepo
	mailer mailer
	tokens tokenIssuer
	cfg    config.AuthConfig
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	otps otpStore,
	users userRepo,
	mailer mailer,
	tokens tokenIssuer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		otps:   otps,
		users:  users,
		mailer: mailer,
		tokens: tokens,
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
