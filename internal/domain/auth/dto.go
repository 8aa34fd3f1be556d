package auth

import "github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"

type RegisterRequest struct {
	EstablishmentName string  `json:"establishment_name"`
	Timezone          *string `json:"timezone,omitempty"`
	AdminName         string  `json:"admin_name"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	ConfirmPassword   string  `json:"confirm_password"`
	OwnerPIN          string  `json:"owner_pin"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	// Establishment
	if validator.IsEmpty(r.EstablishmentName) {
		errs = append(errs, validator.ValidationError{
			Field:   "establishment_name",
			Message: "establishment_name is required",
		})
	}
	if len(r.EstablishmentName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "establishment_name",
			Message: "establishment_name must not exceed 255 characters",
		})
	}
	if r.Timezone != nil && !validator.IsValidTimezone(*r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone, e.g. America/Sao_Paulo",
		})
	}

	// Administrator
	if validator.IsEmpty(r.AdminName) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_name",
			Message: "admin_name is required",
		})
	}
	errs = append(errs, validateEmail(r.Email)...)
	errs = append(errs, validatePassword("password", r.Password)...)
	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password must match password",
		})
	}

	// Owner PIN for the time clock
	if !validator.IsValidPIN(r.OwnerPIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "owner_pin",
			Message: "owner_pin must be 4 to 6 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateEmail(r.Email)...)
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.ValidationErrors{{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		}}
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}
	errs = append(errs, validatePassword("new_password", r.NewPassword)...)
	if r.NewPassword != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password must match new_password",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEmail(email string) validator.ValidationErrors {
	if validator.IsEmpty(email) {
		return validator.ValidationErrors{{Field: "email", Message: "email is required"}}
	}
	if len(email) > 254 {
		return validator.ValidationErrors{{Field: "email", Message: "email must not exceed 254 characters"}}
	}
	if !validator.IsValidEmail(email) {
		return validator.ValidationErrors{{Field: "email", Message: "email must be a valid email address, e.g. user@example.com"}}
	}
	return nil
}

func validatePassword(field, password string) validator.ValidationErrors {
	if validator.IsEmpty(password) {
		return validator.ValidationErrors{{Field: field, Message: field + " is required"}}
	}
	if len(password) < 8 {
		return validator.ValidationErrors{{Field: field, Message: field + " must be at least 8 characters long"}}
	}
	if len(password) > 72 {
		return validator.ValidationErrors{{Field: field, Message: field + " must not exceed 72 characters"}}
	}
	return nil
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
