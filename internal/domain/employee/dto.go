package employee

import (
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Salary   decimal.Decimal `json:"salary"`
	HireDate *string         `json:"hire_date,omitempty"` // YYYY-MM-DD
	PIN      *string         `json:"pin,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if len(r.Role) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must not exceed 100 characters",
		})
	}

	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: ErrInvalidSalary.Error(),
		})
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PIN != nil && *r.PIN != "" && !validator.IsValidPIN(*r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: ErrInvalidPIN.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a partial update. An empty PIN keeps the current one.
type UpdateEmployeeRequest struct {
	ID       string           `json:"-"`
	Name     *string          `json:"name,omitempty"`
	Role     *string          `json:"role,omitempty"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
	HireDate *string          `json:"hire_date,omitempty"`
	PIN      *string          `json:"pin,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must not be empty",
		})
	}

	if r.Salary != nil && !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: ErrInvalidSalary.Error(),
		})
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PIN != nil && *r.PIN != "" && !validator.IsValidPIN(*r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: ErrInvalidPIN.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search *string `json:"search,omitempty"` // name contains, case-insensitive
	Role   *string `json:"role,omitempty"`
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Salary    string  `json:"salary"`
	HireDate  *string `json:"hire_date,omitempty"`
	HasPIN    bool    `json:"has_pin"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
