package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/administrator"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/auth"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timeclock"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Credentials: one generic answer whatever the cause
	case errors.Is(err, timeclock.ErrNotAuthorized):
		Unauthorized(w, "Not authorized")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, jwt.ErrMissingClaims):
		Unauthorized(w, "Unauthorized")
	case errors.Is(err, auth.ErrWrongCurrentPassword):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrSamePassword):
		BadRequest(w, err.Error(), nil)

	// Administrator domain errors
	case errors.Is(err, administrator.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, administrator.ErrAdministratorNotFound):
		NotFound(w, "Administrator not found")
	case errors.Is(err, administrator.ErrOwnerAccessRequired),
		errors.Is(err, administrator.ErrManagerAccessRequired),
		errors.Is(err, administrator.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, administrator.ErrEstablishmentIDRequired):
		Forbidden(w, "No establishment associated with this account")

	// Establishment domain errors
	case errors.Is(err, establishment.ErrEstablishmentNotFound):
		NotFound(w, "Establishment not found")
	case errors.Is(err, establishment.ErrInvalidTimezone):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation not found")
	case errors.Is(err, vacation.ErrVacationOverlap):
		Conflict(w, err.Error())
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Time log domain errors
	case errors.Is(err, timelog.ErrTimeLogNotFound):
		NotFound(w, "Time log not found")
	case errors.Is(err, timelog.ErrEmployeeNotPresent):
		Conflict(w, err.Error())
	case errors.Is(err, timelog.ErrSingleEmployeeScope):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timelog.ErrInvalidEventType):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
