package establishment

import "context"

type EstablishmentRepository interface {
	Create(ctx context.Context, newEstablishment Establishment) (Establishment, error)
	GetByID(ctx context.Context, id string) (Establishment, error)
	Update(ctx context.Context, id string, req UpdateEstablishmentRequest) error
}
