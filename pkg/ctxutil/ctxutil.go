// Package ctxutil carries request-scoped caller and tracing values through context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// Caller is the authenticated principal attached to a request.
type Caller struct {
	UserID   uuid.UUID
	Email    string
	Provider string
}

// WithCaller stores the authenticated caller in the context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromCtx returns the caller stored by WithCaller.
// A caller with a nil user ID is treated as absent.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey).(Caller)
	if !ok || c.UserID == uuid.Nil {
		return Caller{}, false
	}
	return c, true
}

// WithUserID is shorthand for WithCaller with only a user ID.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return WithCaller(ctx, Caller{UserID: id})
}

// UserIDFromCtx extracts the caller's user ID.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	c, ok := CallerFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return c.UserID, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
