package administrator

import "context"

type AdministratorRepository interface {
	GetByID(ctx context.Context, id string) (Administrator, error)
	GetByEmail(ctx context.Context, email string) (Administrator, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, newAdministrator Administrator) (Administrator, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
