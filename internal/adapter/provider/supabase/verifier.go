// Package supabase verifies bearer tokens against a Supabase project's
// GoTrue user endpoint.
package supabase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/centralring-backend/internal/auth"
	"github.com/heartmarshall/centralring-backend/internal/domain"
)

// Verifier asks GoTrue who a token belongs to.
type Verifier struct {
	userURL    string
	anonKey    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a remote verifier for the project at baseURL.
// Parameters come from config.AuthConfig: SupabaseURL, SupabaseAnonKey.
func NewVerifier(baseURL, anonKey string, logger *slog.Logger) *Verifier {
	return &Verifier{
		userURL:    strings.TrimRight(baseURL, "/") + "/auth/v1/user",
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "supabase_auth"),
	}
}

// Verify implements auth.Verifier. Tokens GoTrue rejects give
// domain.ErrUnauthorized; an unreachable or failing GoTrue gives an
// UpstreamError. Each call makes a single request.
func (v *Verifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create user request: %w", err)
	}
	req.Header.Set("apikey", v.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "supabase user lookup failed", slog.String("error", err.Error()))
		return nil, domain.NewUpstreamError("supabase", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domain.NewUpstreamError("supabase", fmt.Errorf("read response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("supabase: %s: %w", errorMessage(body), domain.ErrUnauthorized)
	default:
		v.log.ErrorContext(ctx, "supabase user lookup failed",
			slog.Int("status", resp.StatusCode),
			slog.String("error", errorMessage(body)))
		return nil, domain.NewUpstreamError("supabase", fmt.Errorf("status %d: %s", resp.StatusCode, errorMessage(body)))
	}

	user := gjson.ParseBytes(body)
	userID, err := uuid.Parse(user.Get("id").String())
	if err != nil {
		return nil, domain.NewUpstreamError("supabase", fmt.Errorf("invalid user id in response: %w", err))
	}

	v.log.DebugContext(ctx, "supabase token accepted", slog.String("user_id", userID.String()))

	return &auth.Identity{
		UserID:   userID,
		Email:    user.Get("email").String(),
		Provider: domain.IdentityProviderSupabaseRemote,
	}, nil
}

// errorMessage extracts a human readable message from a GoTrue error body,
// which uses different keys across versions.
func errorMessage(body []byte) string {
	for _, path := range []string{"msg", "message", "error_description", "error"} {
		if r := gjson.GetBytes(body, path); r.Exists() && r.String() != "" {
			return r.String()
		}
	}
	return http.StatusText(http.StatusUnauthorized)
}
