// Package otpcode implements the one-time password store using PostgreSQL.
package otpcode

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/centralring-backend/internal/adapter/postgres"
	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const selectColumns = "email, code_hash, expires_at, attempts, created_at"

type row struct {
	Email     string    `db:"email"`
	CodeHash  string    `db:"code_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	Attempts  int       `db:"attempts"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides OTP persistence backed by PostgreSQL. Each email holds at
// most one outstanding code.
type Repo struct {
	db postgres.Querier
}

// New creates a new OTP repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Save stores code, replacing any previous code for the same email and
// resetting its attempt counter.
func (r *Repo) Save(ctx context.Context, code *domain.OTPCode) error {
	sql, args, err := postgres.Builder().
		Insert("otp_codes").
		Columns("email", "code_hash", "expires_at", "attempts", "created_at").
		Values(code.Email, code.CodeHash, code.ExpiresAt, 0, code.CreatedAt).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			code_hash = EXCLUDED.code_hash,
			expires_at = EXCLUDED.expires_at,
			attempts = 0,
			created_at = EXCLUDED.created_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build otp query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "otp", code.Email)
	}
	return nil
}

// Get returns the outstanding code for email, expired or not.
func (r *Repo) Get(ctx context.Context, email string) (*domain.OTPCode, error) {
	sql, args, err := postgres.Builder().
		Select(selectColumns).
		From("otp_codes").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build otp query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "otp", email)
	}
	return &domain.OTPCode{
		Email:     rw.Email,
		CodeHash:  rw.CodeHash,
		ExpiresAt: rw.ExpiresAt,
		Attempts:  rw.Attempts,
		CreatedAt: rw.CreatedAt,
	}, nil
}

// IncrementAttempts records a failed verification and returns the new count.
func (r *Repo) IncrementAttempts(ctx context.Context, email string) (int, error) {
	sql, args, err := postgres.Builder().
		Update("otp_codes").
		Set("attempts", squirrel.Expr("attempts + 1")).
		Where(squirrel.Eq{"email": email}).
		Suffix("RETURNING attempts").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build otp query: %w", err)
	}

	var attempts int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&attempts); err != nil {
		return 0, postgres.MapError(err, "otp", email)
	}
	return attempts, nil
}

// Delete removes the code for email. Deleting a missing code is not an error.
func (r *Repo) Delete(ctx context.Context, email string) error {
	sql, args, err := postgres.Builder().
		Delete("otp_codes").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build otp query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "otp", email)
	}
	return nil
}

// DeleteExpired removes codes that expired at or before now and returns how
// many were removed.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete("otp_codes").
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build otp query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "otp", "")
	}
	return tag.RowsAffected(), nil
}
