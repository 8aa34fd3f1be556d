package jwt

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/administrator"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingClaims = errors.New("token claims are missing or invalid")

// Claims is the typed view of an access token carried in the request context
type Claims struct {
	UserID          string
	Email           string
	EstablishmentID string
	Role            administrator.Role
}

// ClaimsFromContext extracts the access token claims placed by jwtauth.Verifier.
// user_id and establishment_id are required; every tenant-scoped query keys off them.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, fmt.Errorf("user_id claim: %w", ErrMissingClaims)
	}

	establishmentID, ok := claims["establishment_id"].(string)
	if !ok || establishmentID == "" {
		return Claims{}, fmt.Errorf("establishment_id claim: %w", ErrMissingClaims)
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Claims{
		UserID:          userID,
		Email:           email,
		EstablishmentID: establishmentID,
		Role:            administrator.Role(role),
	}, nil
}

// ContextWithClaims attaches claims the way jwtauth.Verifier does after a successful check.
// Used where the caller was authenticated by other means, and in tests.
func ContextWithClaims(ctx context.Context, c Claims) context.Context {
	token := jwt.New()
	_ = token.Set("user_id", c.UserID)
	_ = token.Set("email", c.Email)
	_ = token.Set("establishment_id", c.EstablishmentID)
	_ = token.Set("role", string(c.Role))
	_ = token.Set("type", TokenTypeAccess)
	return jwtauth.NewContext(ctx, token, nil)
}
