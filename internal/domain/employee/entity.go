package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles seeded by the web client. Role is free text; these are the ones with meaning server side.
const (
	RoleCEO     = "CEO"
	RoleManager = "Gerente"
)

type Employee struct {
	ID              string
	EstablishmentID string
	Name            string
	Role            string
	Salary          decimal.Decimal
	HireDate        *time.Time
	PINHash         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPIN reports whether the employee can use the time clock
func (e Employee) HasPIN() bool {
	return e.PINHash != nil && *e.PINHash != ""
}
