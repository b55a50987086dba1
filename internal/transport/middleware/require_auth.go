package middleware

import (
	"net/http"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/pkg/ctxutil"
)

// RequireAuth rejects requests that Auth left anonymous. It must run
// inside Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.CallerFromCtx(r.Context()); !ok {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", domain.KindAuth)
			return
		}
		next.ServeHTTP(w, r)
	})
}
