package timelog

import "time"

// EventType is the direction of a punch
type EventType string

const (
	EventIn  EventType = "IN"
	EventOut EventType = "OUT"
)

// IsValid reports whether t is IN or OUT
func (t EventType) IsValid() bool {
	return t == EventIn || t == EventOut
}

// TimeLog is one punch. Rows are immutable except through an explicit manual adjustment.
type TimeLog struct {
	ID              string
	EmployeeID      string
	EstablishmentID string
	Type            EventType
	Timestamp       time.Time
	CreatedAt       time.Time

	// DTO
	EmployeeName *string
}
