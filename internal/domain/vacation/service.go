package vacation

import "context"

type VacationService interface {
	Create(ctx context.Context, req CreateVacationRequest) (VacationResponse, error)
	List(ctx context.Context, filter VacationFilter) ([]VacationResponse, error)
	Delete(ctx context.Context, id string) error

	// Estimate computes vacation pay: salary/30 per day plus one third
	Estimate(ctx context.Context, req EstimateRequest) (EstimateResponse, error)
}
