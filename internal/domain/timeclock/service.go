package timeclock

import "context"

// TimeClockService is the PIN gate in front of the punch table
type TimeClockService interface {
	// VerifyPunch checks the employee PIN and records the punch on match, atomically
	VerifyPunch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// VerifyPrivilegedPIN reports whether pin belongs to an employee with a privileged role
	VerifyPrivilegedPIN(ctx context.Context, req VerifyPrivilegedRequest) (bool, error)
}
