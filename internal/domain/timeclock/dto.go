package timeclock

import (
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	EmployeeID string `json:"employee_id"`
	PIN        string `json:"pin"`
	Type       string `json:"type"`
}

// Validate checks shape only. PIN correctness is never reported as a validation error.
func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	}

	if !timelog.EventType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be IN or OUT",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	Accepted  bool   `json:"accepted"`
	Message   string `json:"message"`
	EventID   string `json:"event_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type VerifyPrivilegedRequest struct {
	PIN string `json:"pin"`
}

func (r *VerifyPrivilegedRequest) Validate() error {
	if validator.IsEmpty(r.PIN) {
		return validator.ValidationErrors{{
			Field:   "pin",
			Message: "pin is required",
		}}
	}
	return nil
}

type VerifyPrivilegedResponse struct {
	Authorized bool `json:"authorized"`
}
