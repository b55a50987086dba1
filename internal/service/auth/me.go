package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/pkg/ctxutil"
)

// Me describes the authenticated caller.
type Me struct {
	UserID   string
	Email    string
	Provider string
	User     *domain.User
}

// Me returns the caller's identity. User is set when the caller signed in
// through this service; identities from an external provider have no local
// user record.
func (s *Service) Me(ctx context.Context) (*Me, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	me := &Me{UserID: caller.UserID.String(), Email: caller.Email, Provider: caller.Provider}

	user, err := s.users.GetByID(ctx, caller.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("get user: %w", err)
	default:
		me.User = user
		if me.Email == "" {
			me.Email = user.Email
		}
	}
	return me, nil
}
