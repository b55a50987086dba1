// Package redis implements the one-time password store on Redis. Codes
// expire through key TTLs, so no sweeping is needed.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const (
	fieldHash      = "code_hash"
	fieldExpiresAt = "expires_at"
	fieldAttempts  = "attempts"
	fieldCreatedAt = "created_at"
)

// incrementScript bumps the attempt counter only when the code still exists.
var incrementScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('HINCRBY', KEYS[1], ARGV[1], 1)
`)

// OTPStore keeps one hash per email under prefix+email.
type OTPStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewOTPStore creates a store using client. Keys are namespaced by prefix.
func NewOTPStore(client goredis.UniversalClient, prefix string) *OTPStore {
	return &OTPStore{client: client, prefix: prefix}
}

// NewClient connects to addr and verifies the connection with PING.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *OTPStore) key(email string) string { return s.prefix + email }

// Ping checks the server is reachable.
func (s *OTPStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return domain.NewUpstreamError("redis", err)
	}
	return nil
}

// Save stores code, replacing any previous code for the same email.
func (s *OTPStore) Save(ctx context.Context, code *domain.OTPCode) error {
	key := s.key(code.Email)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			fieldHash, code.CodeHash,
			fieldExpiresAt, code.ExpiresAt.UTC().Format(time.RFC3339Nano),
			fieldAttempts, 0,
			fieldCreatedAt, code.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		pipe.PExpireAt(ctx, key, code.ExpiresAt)
		return nil
	})
	if err != nil {
		return domain.NewUpstreamError("redis", err)
	}
	return nil
}

// Get returns the outstanding code for email.
func (s *OTPStore) Get(ctx context.Context, email string) (*domain.OTPCode, error) {
	fields, err := s.client.HGetAll(ctx, s.key(email)).Result()
	if err != nil {
		return nil, domain.NewUpstreamError("redis", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("otp %s: %w", email, domain.ErrNotFound)
	}
	return decodeCode(email, fields)
}

// IncrementAttempts records a failed verification and returns the new count.
func (s *OTPStore) IncrementAttempts(ctx context.Context, email string) (int, error) {
	n, err := incrementScript.Run(ctx, s.client, []string{s.key(email)}, fieldAttempts).Int64()
	if err != nil {
		return 0, domain.NewUpstreamError("redis", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("otp %s: %w", email, domain.ErrNotFound)
	}
	return int(n), nil
}

// Delete removes the code for email.
func (s *OTPStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return domain.NewUpstreamError("redis", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts expired codes itself.
func (s *OTPStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func decodeCode(email string, fields map[string]string) (*domain.OTPCode, error) {
	expiresAt, err := time.Parse(time.RFC3339Nano, fields[fieldExpiresAt])
	if err != nil {
		return nil, fmt.Errorf("otp %s: decode expires_at: %w", email, err)
	}
	attempts, err := strconv.Atoi(fields[fieldAttempts])
	if err != nil {
		return nil, fmt.Errorf("otp %s: decode attempts: %w", email, err)
	}
	var createdAt time.Time
	if v := fields[fieldCreatedAt]; v != "" {
		if createdAt, err = time.Parse(time.RFC3339Nano, v); err != nil {
			return nil, fmt.Errorf("otp %s: decode created_at: %w", email, err)
		}
	}

	return &domain.OTPCode{
		Email:     email,
		CodeHash:  fields[fieldHash],
		ExpiresAt: expiresAt,
		Attempts:  attempts,
		CreatedAt: createdAt,
	}, nil
}
