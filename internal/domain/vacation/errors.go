package vacation

import "errors"

var (
	ErrVacationNotFound = errors.New("vacation not found")
	ErrInvalidDateRange = errors.New("end_date must be on or after start_date")
	ErrVacationOverlap  = errors.New("employee already has a vacation in this period")
)
