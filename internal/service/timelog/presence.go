package timelog

import (
	"slices"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
)

// LiveSession is an employee whose latest punch is IN
type LiveSession struct {
	EmployeeID     string
	EmployeeName   *string
	EventID        string
	EntryTimestamp time.Time
}

// DerivePresence keeps, per employee, only the most recent punch and reports
// those that are IN. There is no timeout: an IN stays open until an OUT arrives.
// Sessions are ordered by entry time, newest first.
func DerivePresence(events []timelog.TimeLog) []LiveSession {
	sorted := slices.Clone(events)
	slices.SortFunc(sorted, func(a, b timelog.TimeLog) int {
		return compareEvents(b, a)
	})

	seen := make(map[string]struct{}, len(sorted))
	sessions := []LiveSession{}
	for _, event := range sorted {
		if _, ok := seen[event.EmployeeID]; ok {
			continue
		}
		seen[event.EmployeeID] = struct{}{}

		if event.Type != timelog.EventIn {
			continue
		}
		sessions = append(sessions, LiveSession{
			EmployeeID:     event.EmployeeID,
			EmployeeName:   event.EmployeeName,
			EventID:        event.ID,
			EntryTimestamp: event.Timestamp,
		})
	}

	return sessions
}

// FindSession returns the open session of employeeID, if any
func FindSession(sessions []LiveSession, employeeID string) (LiveSession, bool) {
	for _, session := range sessions {
		if session.EmployeeID == employeeID {
			return session, true
		}
	}
	return LiveSession{}, false
}
