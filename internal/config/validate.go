package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if strings.TrimSpace(c.Email.ResendAPIKey) == "" {
		return fmt.Errorf("email.resend_api_key is required")
	}

	if err := c.OTPStore.validate(); err != nil {
		return fmt.Errorf("otp_store: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: rps and burst must be > 0 when enabled")
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %s)", a.AccessTokenTTL)
	}
	if a.OTPTTL <= 0 {
		return fmt.Errorf("otp_ttl must be > 0 (got %s)", a.OTPTTL)
	}
	if a.OTPMaxAttempts <= 0 {
		return fmt.Errorf("otp_max_attempts must be > 0 (got %d)", a.OTPMaxAttempts)
	}
	if a.OTPHashCost < 4 || a.OTPHashCost > 31 {
		return fmt.Errorf("otp_hash_cost must be between 4 and 31 (got %d)", a.OTPHashCost)
	}
	if a.SupabaseURL != "" {
		u, err := url.Parse(a.SupabaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("supabase_url %q is not an absolute URL", a.SupabaseURL)
		}
		if a.SupabaseAnonKey == "" {
			return fmt.Errorf("supabase_anon_key is required when supabase_url is set")
		}
	}
	return nil
}

func (o *OTPStoreConfig) validate() error {
	switch o.Backend {
	case OTPBackendPostgres:
		return nil
	case OTPBackendRedis:
		if o.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for the redis backend")
		}
		return nil
	default:
		return fmt.Errorf("backend must be %q or %q (got %q)", OTPBackendPostgres, OTPBackendRedis, o.Backend)
	}
}
