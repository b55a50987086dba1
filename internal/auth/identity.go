package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

// Identity is the caller a bearer token resolved to.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	Provider domain.IdentityProvider
}

// Verifier resolves a bearer token to an Identity. A token the verifier
// does not accept yields an error wrapping domain.ErrUnauthorized.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Chain tries each verifier in order and returns the first success.
// Rejections fall through to the next verifier; any other failure stops
// the chain and is returned as is.
type Chain []Verifier

// NewChain builds a chain that tries verifiers in the given order.
func NewChain(verifiers ...Verifier) Chain {
	return Chain(verifiers)
}

func (c Chain) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	for _, v := range c {
		id, err := v.Verify(ctx, token)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("no verifier accepted the token: %w", domain.ErrUnauthorized)
}
