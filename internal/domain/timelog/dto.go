package timelog

import (
	"fmt"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// TIME LOG DTOs
// ========================================

type TimeLogResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	Timestamp    string  `json:"timestamp"`
	Date         string  `json:"date"` // YYYY-MM-DD in establishment timezone
	Time         string  `json:"time"` // HH:MM in establishment timezone
}

// TimesheetFilter selects one calendar month, optionally narrowed to a single employee
type TimesheetFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      string  `json:"month"` // YYYY-MM
}

func (f *TimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(f.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the first and last instant of the month in loc
func (f *TimesheetFilter) Range(loc *time.Location) (time.Time, time.Time) {
	month, _ := validator.IsValidMonth(f.Month)
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// SingleEmployee reports whether the filter targets exactly one employee
func (f *TimesheetFilter) SingleEmployee() bool {
	return f.EmployeeID != nil && *f.EmployeeID != ""
}

type CreateTimeLogRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
}

func (r *CreateTimeLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if !EventType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be IN or OUT",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidClockTime(r.Time); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTimeLogRequest struct {
	ID   string  `json:"-"`
	Type *string `json:"type,omitempty"`
	Date *string `json:"date,omitempty"` // YYYY-MM-DD, requires time
	Time *string `json:"time,omitempty"` // HH:MM, requires date
}

func (r *UpdateTimeLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Type == nil && r.Date == nil && r.Time == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of type, date or time is required",
		})
	}

	if r.Type != nil && !EventType(*r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be IN or OUT",
		})
	}

	if (r.Date == nil) != (r.Time == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date and time must be provided together",
		})
	} else if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
		if _, ok := validator.IsValidClockTime(*r.Time); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time",
				Message: "time must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LocalTimestamp combines a validated date and wall clock time in loc
func LocalTimestamp(date string, clock string, loc *time.Location) (time.Time, error) {
	d, ok := validator.IsValidDate(date)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	c, ok := validator.IsValidClockTime(clock)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid time %q", clock)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, loc), nil
}

// ========================================
// TIMESHEET DTOs
// ========================================

type DurationResponse struct {
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	TotalMinutes int    `json:"total_minutes"`
	Display      string `json:"display"`
}

type TimesheetDayResponse struct {
	Date string            `json:"date"` // YYYY-MM-DD
	Logs []TimeLogResponse `json:"logs"`
	// Worked is omitted when the timesheet spans several employees
	Worked *DurationResponse `json:"worked,omitempty"`
}

type TimesheetResponse struct {
	Month        string                 `json:"month"`
	Timezone     string                 `json:"timezone"`
	EmployeeID   *string                `json:"employee_id,omitempty"`
	EmployeeName *string                `json:"employee_name,omitempty"`
	Days         []TimesheetDayResponse `json:"days"`
	Total        *DurationResponse      `json:"total,omitempty"`
}

type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type ShareResponse struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// ========================================
// LIVE PRESENCE DTOs
// ========================================

type LiveSessionResponse struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EventID        string  `json:"event_id"`
	EntryTimestamp string  `json:"entry_timestamp"`
	ElapsedMinutes int     `json:"elapsed_minutes"`
}

type LivePresenceResponse struct {
	GeneratedAt string                `json:"generated_at"`
	WindowStart string                `json:"window_start"`
	Count       int                   `json:"count"`
	Sessions    []LiveSessionResponse `json:"sessions"`
}
