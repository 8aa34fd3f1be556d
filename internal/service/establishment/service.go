package establishment

import (
	"context"
	"log/slog"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
)

type EstablishmentServiceImpl struct {
	establishmentRepo establishment.EstablishmentRepository
}

func NewEstablishmentService(establishmentRepo establishment.EstablishmentRepository) establishment.EstablishmentService {
	return &EstablishmentServiceImpl{establishmentRepo: establishmentRepo}
}

func mapEstablishmentToResponse(est establishment.Establishment) establishment.EstablishmentResponse {
	return establishment.EstablishmentResponse{
		ID:        est.ID,
		Name:      est.Name,
		Timezone:  est.Timezone,
		CreatedAt: est.CreatedAt.Format(time.RFC3339),
		UpdatedAt: est.UpdatedAt.Format(time.RFC3339),
	}
}

// GetMy implements establishment.EstablishmentService.
func (s *EstablishmentServiceImpl) GetMy(ctx context.Context) (establishment.EstablishmentResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return establishment.EstablishmentResponse{}, err
	}

	est, err := s.establishmentRepo.GetByID(ctx, claims.EstablishmentID)
	if err != nil {
		return establishment.EstablishmentResponse{}, err
	}
	return mapEstablishmentToResponse(est), nil
}

// UpdateMy implements establishment.EstablishmentService.
func (s *EstablishmentServiceImpl) UpdateMy(ctx context.Context, req establishment.UpdateEstablishmentRequest) (establishment.EstablishmentResponse, error) {
	if err := req.Validate(); err != nil {
		return establishment.EstablishmentResponse{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return establishment.EstablishmentResponse{}, err
	}

	if err := s.establishmentRepo.Update(ctx, claims.EstablishmentID, req); err != nil {
		return establishment.EstablishmentResponse{}, err
	}

	if req.Timezone != nil {
		// Day boundaries of every timesheet move with the timezone
		slog.Info("Establishment timezone changed",
			"establishment_id", claims.EstablishmentID,
			"timezone", *req.Timezone,
			"changed_by", claims.UserID,
		)
	}

	return s.GetMy(ctx)
}
