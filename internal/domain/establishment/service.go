package establishment

import "context"

type EstablishmentService interface {
	// GetMy returns the caller's establishment
	GetMy(ctx context.Context) (EstablishmentResponse, error)

	// UpdateMy updates name and/or timezone of the caller's establishment
	UpdateMy(ctx context.Context, req UpdateEstablishmentRequest) (EstablishmentResponse, error)
}
