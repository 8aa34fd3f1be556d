package establishment

import (
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
)

type EstablishmentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type UpdateEstablishmentRequest struct {
	Name     *string `json:"name,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (r *UpdateEstablishmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.Timezone == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of name or timezone is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		} else if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if r.Timezone != nil && !validator.IsValidTimezone(*r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone, e.g. America/Sao_Paulo",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
