package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/centralring-backend/internal/auth"
	"github.com/heartmarshall/centralring-backend/internal/domain"
)

// ErrInvalidOTP is returned for every rejected code so callers cannot tell
// the failure reasons apart.
var ErrInvalidOTP = fmt.Errorf("invalid or expired OTP: %w", domain.ErrUnauthorized)

// SendOTP issues a fresh code for the email, replacing any outstanding one,
// and mails it.
func (s *Service) SendOTP(ctx context.Context, input SendOTPInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	email := normalizeEmail(input.Email)

	code, err := auth.GenerateOTP()
	if err != nil {
		return err
	}
	hash, err := auth.HashOTP(code, s.cfg.OTPHashCost)
	if err != nil {
		return err
	}

	now := s.now()
	if err := s.otps.Save(ctx, &domain.OTPCode{
		Email:     email,
		CodeHash:  hash,
		ExpiresAt: now.Add(s.cfg.OTPTTL),
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	s.log.InfoContext(ctx, "otp sent", slog.String("email", email))
	return nil
}

// VerifyOTP exchanges a valid code for a session. Unknown, expired,
// exhausted and wrong codes all fail with the same auth error.
func (s *Service) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)

	code, err := s.otps.Get(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidOTP
	}
	if err != nil {
		return nil, fmt.Errorf("load otp: %w", err)
	}

	if code.IsExpired(s.now()) || code.Attempts >= s.cfg.OTPMaxAttempts {
		s.discard(ctx, email)
		return nil, ErrInvalidOTP
	}

	ok, err := auth.CompareOTP(code.CodeHash, input.Token)
	if err != nil {
		return nil, err
	}
	if !ok {
		attempts, err := s.otps.IncrementAttempts(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("record otp attempt: %w", err)
		}
		s.log.WarnContext(ctx, "otp mismatch", slog.String("email", email), slog.Int("attempts", attempts))
		return nil, ErrInvalidOTP
	}

	s.discard(ctx, email)

	now := s.now()
	user, err := s.users.CreateOrGet(ctx, &domain.User{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	s.log.InfoContext(ctx, "otp verified", slog.String("user_id", user.ID.String()))

	return &Session{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   s.tokens.AccessTTL(),
		User:        user,
	}, nil
}

// discard deletes a consumed or dead code. Failure only leaves a code that
// can no longer be used, so it is logged and not returned.
func (s *Service) discard(ctx context.Context, email string) {
	if err := s.otps.Delete(ctx, email); err != nil {
		s.log.WarnContext(ctx, "delete otp failed", slog.String("email", email), slog.String("error", err.Error()))
	}
}
