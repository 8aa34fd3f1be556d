package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// Patch holds the columns changed by an update; PINHash is already hashed
type Patch struct {
	Name     *string
	Role     *string
	Salary   *decimal.Decimal
	HireDate *string
	PINHash  *string
}

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, establishmentID string) (Employee, error)
	List(ctx context.Context, establishmentID string, filter EmployeeFilter) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, establishmentID string, patch Patch) error
	Delete(ctx context.Context, id string, establishmentID string) error
	Count(ctx context.Context, establishmentID string) (int64, error)

	// GetPINHash returns nil when the employee exists but has no PIN
	GetPINHash(ctx context.Context, id string, establishmentID string) (*string, error)

	// ListPINHashesByRoles returns the PIN hashes of employees holding one of roles
	ListPINHashesByRoles(ctx context.Context, establishmentID string, roles []string) ([]string, error)
}
