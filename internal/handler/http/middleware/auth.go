package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/auth"
	"github.com/holiday-manager/ponto-backend-go/internal/handler/http/response"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
)

// AuthRequired admits requests whose verified token is an access token bound to a user.
// Refresh and stream tokens share the signing key, so the type claim is what separates them.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, ok := token.Get("type"); !ok || tokenType != jwt.TokenTypeAccess {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if userID, ok := token.Get("user_id"); !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
