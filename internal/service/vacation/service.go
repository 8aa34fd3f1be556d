package vacation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
	"github.com/holiday-manager/ponto-backend-go/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

type VacationServiceImpl struct {
	txManager    postgresql.TxManager
	vacationRepo vacation.VacationRepository
	employeeRepo employee.EmployeeRepository
	calculator   *PayCalculator
}

func NewVacationService(
	txManager postgresql.TxManager,
	vacationRepo vacation.VacationRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *PayCalculator,
) vacation.VacationService {
	return &VacationServiceImpl{
		txManager:    txManager,
		vacationRepo: vacationRepo,
		employeeRepo: employeeRepo,
		calculator:   calculator,
	}
}

func ToResponse(v vacation.Vacation) vacation.VacationResponse {
	return vacation.VacationResponse{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		StartDate:    v.StartDate.Format(dateLayout),
		EndDate:      v.EndDate.Format(dateLayout),
		Days:         v.Days(),
	}
}

// Create implements vacation.VacationService.
func (s *VacationServiceImpl) Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	start, end := req.Dates()

	var created vacation.Vacation
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID, claims.EstablishmentID)
		if err != nil {
			return err
		}

		overlapping, err := s.vacationRepo.ExistsOverlapping(txCtx, claims.EstablishmentID, emp.ID, start, end)
		if err != nil {
			return fmt.Errorf("failed to check overlapping vacations: %w", err)
		}
		if overlapping {
			return vacation.ErrVacationOverlap
		}

		created, err = s.vacationRepo.Create(txCtx, vacation.Vacation{
			EmployeeID:      emp.ID,
			EstablishmentID: claims.EstablishmentID,
			StartDate:       start,
			EndDate:         end,
		})
		if err != nil {
			return fmt.Errorf("failed to create vacation: %w", err)
		}
		created.EmployeeName = &emp.Name
		return nil
	})
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	slog.Info("Vacation scheduled",
		"vacation_id", created.ID,
		"employee_id", created.EmployeeID,
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"scheduled_by", claims.UserID,
	)

	return ToResponse(created), nil
}

// List implements vacation.VacationService.
func (s *VacationServiceImpl) List(ctx context.Context, filter vacation.VacationFilter) ([]vacation.VacationResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if filter.EmployeeID != nil && !validator.IsValidUUID(*filter.EmployeeID) {
		return nil, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		}}
	}

	vacations, err := s.vacationRepo.List(ctx, claims.EstablishmentID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}

	responses := make([]vacation.VacationResponse, 0, len(vacations))
	for _, v := range vacations {
		responses = append(responses, ToResponse(v))
	}
	return responses, nil
}

// Delete implements vacation.VacationService.
func (s *VacationServiceImpl) Delete(ctx context.Context, id string) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if !validator.IsValidUUID(id) {
		return vacation.ErrVacationNotFound
	}

	if err := s.vacationRepo.Delete(ctx, id, claims.EstablishmentID); err != nil {
		if errors.Is(err, vacation.ErrVacationNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete vacation: %w", err)
	}

	slog.Info("Vacation cancelled", "vacation_id", id, "cancelled_by", claims.UserID)
	return nil
}

// Estimate implements vacation.VacationService.
func (s *VacationServiceImpl) Estimate(ctx context.Context, req vacation.EstimateRequest) (vacation.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.EstimateResponse{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return vacation.EstimateResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, claims.EstablishmentID)
	if err != nil {
		return vacation.EstimateResponse{}, err
	}

	start, end := req.Dates()
	pay := s.calculator.Calculate(emp.Salary, vacation.DaysBetween(start, end))

	return vacation.EstimateResponse{
		EmployeeID: emp.ID,
		Days:       pay.Days,
		Salary:     emp.Salary.StringFixed(2),
		DailyRate:  pay.DailyRate.StringFixed(2),
		BaseAmount: pay.BaseAmount.StringFixed(2),
		Bonus:      pay.Bonus.StringFixed(2),
		Total:      pay.Total.StringFixed(2),
	}, nil
}
