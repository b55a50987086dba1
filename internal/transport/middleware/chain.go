package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Middleware are applied in the order given: Chain(mw1, mw2)(handler)
// results in mw1(mw2(handler)), so mw1 executes first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

type errorEnvelope struct {
	Error string           `json:"error"`
	Kind  domain.ErrorKind `json:"kind"`
}

// writeJSONError writes the same error envelope the REST handlers use.
func writeJSONError(w http.ResponseWriter, status int, msg string, kind domain.ErrorKind) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Error: msg, Kind: kind}) //nolint:errcheck
}
