package timelog

import (
	"context"
	"time"
)

// ListFilter selects punches of one establishment in [From, To]
type ListFilter struct {
	EmployeeID *string
	From       time.Time
	To         time.Time
	Ascending  bool
}

// Patch holds the editable fields of a manual adjustment
type Patch struct {
	Type      *EventType
	Timestamp *time.Time
}

// TimeLogRepository defines data access for punches.
// Every method takes establishmentID so no query can cross tenants.
type TimeLogRepository interface {
	Create(ctx context.Context, log TimeLog) (TimeLog, error)
	GetByID(ctx context.Context, id string, establishmentID string) (TimeLog, error)

	// List returns punches ordered by timestamp, newest first unless filter.Ascending
	List(ctx context.Context, establishmentID string, filter ListFilter) ([]TimeLog, error)

	Update(ctx context.Context, id string, establishmentID string, patch Patch) error
	Delete(ctx context.Context, id string, establishmentID string) error

	// DeleteByEmployee removes the punch history of one employee
	DeleteByEmployee(ctx context.Context, employeeID string, establishmentID string) (int64, error)
}
