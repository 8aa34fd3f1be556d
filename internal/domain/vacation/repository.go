package vacation

import (
	"context"
	"time"
)

type VacationRepository interface {
	Create(ctx context.Context, newVacation Vacation) (Vacation, error)
	GetByID(ctx context.Context, id string, establishmentID string) (Vacation, error)

	// List returns vacations ordered by start date ascending
	List(ctx context.Context, establishmentID string, filter VacationFilter) ([]Vacation, error)

	Delete(ctx context.Context, id string, establishmentID string) error

	// ExistsOverlapping reports whether the employee has a vacation intersecting [start, end]
	ExistsOverlapping(ctx context.Context, establishmentID string, employeeID string, start, end time.Time) (bool, error)
}
