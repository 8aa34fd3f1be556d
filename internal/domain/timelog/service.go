package timelog

import (
	"context"
)

// TimeLogService defines time sheet, live presence and manual adjustment operations
type TimeLogService interface {
	// List returns raw punches of a month, newest first
	List(ctx context.Context, filter TimesheetFilter) ([]TimeLogResponse, error)

	// Create inserts a manual punch
	Create(ctx context.Context, req CreateTimeLogRequest) (TimeLogResponse, error)

	// Update edits the type and/or timestamp of a punch
	Update(ctx context.Context, req UpdateTimeLogRequest) (TimeLogResponse, error)

	// Delete removes a punch
	Delete(ctx context.Context, id string) error

	// GetTimesheet aggregates a month of punches into worked durations
	GetTimesheet(ctx context.Context, filter TimesheetFilter) (TimesheetResponse, error)

	// ExportTimesheet renders a single-employee month as an xlsx workbook
	ExportTimesheet(ctx context.Context, filter TimesheetFilter) (ExportFile, error)

	// ShareTimesheet renders the month as a chat message and a wa.me link
	ShareTimesheet(ctx context.Context, filter TimesheetFilter) (ShareResponse, error)

	// GetLivePresence derives who is clocked in for the caller's establishment
	GetLivePresence(ctx context.Context) (LivePresenceResponse, error)

	// SnapshotPresence derives who is clocked in for an explicit establishment
	SnapshotPresence(ctx context.Context, establishmentID string) (LivePresenceResponse, error)

	// ForceClockOut appends a synthetic OUT stamped now for a present employee
	ForceClockOut(ctx context.Context, employeeID string) (TimeLogResponse, error)
}
