package administrator

import "time"

type Role string

const (
	RoleOwner   Role = "owner"   // Establishment owner - full access
	RoleManager Role = "manager" // Runs the floor: time logs, vacations, staff view
)

type Administrator struct {
	ID              string
	EstablishmentID string
	Name            string
	Email           string
	PasswordHash    string
	Role            Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwner checks if administrator owns the establishment
func (a *Administrator) IsOwner() bool {
	return a.Role == RoleOwner
}

// IsValidRole reports whether r is a known administrator role
func IsValidRole(r Role) bool {
	return r == RoleOwner || r == RoleManager
}
