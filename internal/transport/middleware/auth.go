package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/centralring-backend/internal/auth"
	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/pkg/ctxutil"
)

type credentialVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Identity, error)
}

// Auth resolves a bearer token into the request's caller. Requests without
// a token pass through anonymously; a rejected token ends the request with
// 401, and an unreachable identity provider with 502.
func Auth(verifier credentialVerifier, logger *slog.Logger) Middleware {
	log := logger.With("middleware", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					log.WarnContext(r.Context(), "credentials rejected",
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", domain.KindAuth)
					return
				}
				log.ErrorContext(r.Context(), "verify credentials", slog.String("error", err.Error()))
				writeJSONError(w, http.StatusBadGateway, "identity provider unavailable", domain.KindUpstream)
				return
			}

			ctx := ctxutil.WithCaller(r.Context(), ctxutil.Caller{
				UserID:   identity.UserID,
				Email:    identity.Email,
				Provider: identity.Provider.String(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
