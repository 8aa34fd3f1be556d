package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/administrator"
	"github.com/holiday-manager/ponto-backend-go/internal/handler/http/response"
)

// RequireEstablishment rejects access tokens that carry no tenant
func RequireEstablishment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, administrator.ErrEstablishmentIDRequired)
			return
		}

		establishmentID, ok := claims["establishment_id"].(string)
		if !ok || establishmentID == "" {
			response.HandleError(w, administrator.ErrEstablishmentIDRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
