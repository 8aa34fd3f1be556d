package vacation

import (
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
)

type CreateVacationRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

func (r *CreateVacationRequest) Validate() error {
	return validateRange(r.EmployeeID, r.StartDate, r.EndDate)
}

// Dates returns the parsed range; call after Validate
func (r *CreateVacationRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

type EstimateRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *EstimateRequest) Validate() error {
	return validateRange(r.EmployeeID, r.StartDate, r.EndDate)
}

func (r *EstimateRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

func validateRange(employeeID, startDate, endDate string) error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VacationFilter struct {
	EmployeeID *string    `json:"employee_id,omitempty"`
	From       *time.Time `json:"-"` // vacations ending on or after From
	To         *time.Time `json:"-"` // vacations starting on or before To
}

type VacationResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
}

// EstimateResponse carries money as fixed two-decimal strings
type EstimateResponse struct {
	EmployeeID string `json:"employee_id"`
	Days       int    `json:"days"`
	Salary     string `json:"salary"`
	DailyRate  string `json:"daily_rate"`
	BaseAmount string `json:"base_amount"`
	Bonus      string `json:"bonus"`
	Total      string `json:"total"`
}
