package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const supabaseAudience = "authenticated"

// SupabaseJWTVerifier accepts access tokens minted by a Supabase project,
// checked offline against the project's JWT secret.
type SupabaseJWTVerifier struct {
	secret []byte
}

// NewSupabaseJWTVerifier creates a verifier for tokens signed with secret.
func NewSupabaseJWTVerifier(secret string) *SupabaseJWTVerifier {
	return &SupabaseJWTVerifier{secret: []byte(secret)}
}

type supabaseClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (v *SupabaseJWTVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	var claims supabaseClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(supabaseAudience),
	)
	if err != nil {
		return nil, fmt.Errorf("supabase token: %v: %w", err, domain.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("supabase token subject: %v: %w", err, domain.ErrUnauthorized)
	}

	return &Identity{UserID: userID, Email: claims.Email, Provider: domain.IdentityProviderSupabaseJWT}, nil
}
