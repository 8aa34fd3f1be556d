package vacation

import "time"

// Vacation is an inclusive range of calendar dates
type Vacation struct {
	ID              string
	EmployeeID      string
	EstablishmentID string
	StartDate       time.Time
	EndDate         time.Time
	CreatedAt       time.Time

	// DTO
	EmployeeName *string
}

// Days counts both ends of the range
func (v Vacation) Days() int {
	return DaysBetween(v.StartDate, v.EndDate)
}

// Covers reports whether the calendar date of day falls inside the range
func (v Vacation) Covers(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(truncateDate(v.StartDate)) && !d.After(truncateDate(v.EndDate))
}

// DaysBetween returns end - start + 1 in calendar days
func DaysBetween(start, end time.Time) int {
	return int(truncateDate(end).Sub(truncateDate(start)).Hours()/24) + 1
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
