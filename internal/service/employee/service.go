package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
	"github.com/holiday-manager/ponto-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

const dateLayout = "2006-01-02"

type EmployeeServiceImpl struct {
	txManager    postgresql.TxManager
	employeeRepo employee.EmployeeRepository
	timeLogRepo  timelog.TimeLogRepository
	keepTimeLogs bool
}

func NewEmployeeService(
	txManager postgresql.TxManager,
	employeeRepo employee.EmployeeRepository,
	timeLogRepo timelog.TimeLogRepository,
	keepTimeLogs bool,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		txManager:    txManager,
		employeeRepo: employeeRepo,
		timeLogRepo:  timeLogRepo,
		keepTimeLogs: keepTimeLogs,
	}
}

// HashPIN hashes a time clock PIN the same way passwords are hashed
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hash), nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var hireDate *string
	if emp.HireDate != nil {
		s := emp.HireDate.Format(dateLayout)
		hireDate = &s
	}

	return employee.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Role:      emp.Role,
		Salary:    emp.Salary.StringFixed(2),
		HireDate:  hireDate,
		HasPIN:    emp.HasPIN(),
		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: emp.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		EstablishmentID: claims.EstablishmentID,
		Name:            req.Name,
		Role:            req.Role,
		Salary:          req.Salary,
	}

	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, _ := validator.IsValidDate(*req.HireDate)
		newEmployee.HireDate = &hireDate
	}

	if req.PIN != nil && *req.PIN != "" {
		hash, err := HashPIN(*req.PIN)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		newEmployee.PINHash = &hash
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created",
		"employee_id", created.ID,
		"establishment_id", created.EstablishmentID,
		"role", created.Role,
		"has_pin", created.HasPIN(),
	)

	return mapEmployeeToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, claims.EstablishmentID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, claims.EstablishmentID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	patch := employee.Patch{
		Name:     req.Name,
		Role:     req.Role,
		Salary:   req.Salary,
		HireDate: req.HireDate,
	}

	// An empty PIN keeps the current one
	if req.PIN != nil && *req.PIN != "" {
		hash, err := HashPIN(*req.PIN)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		patch.PINHash = &hash
	}

	var updated employee.Employee
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, req.ID, claims.EstablishmentID, patch); err != nil {
			return err
		}
		var err error
		updated, err = s.employeeRepo.GetByID(txCtx, req.ID, claims.EstablishmentID)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee updated",
		"employee_id", updated.ID,
		"pin_changed", patch.PINHash != nil,
		"updated_by", claims.UserID,
	)

	return mapEmployeeToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}

	var removedLogs int64
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.employeeRepo.Delete(txCtx, id, claims.EstablishmentID); err != nil {
			return err
		}
		if s.keepTimeLogs {
			return nil
		}

		var err error
		removedLogs, err = s.timeLogRepo.DeleteByEmployee(txCtx, id, claims.EstablishmentID)
		if err != nil {
			return fmt.Errorf("failed to delete time logs of employee: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("Employee deleted",
		"employee_id", id,
		"time_logs_kept", s.keepTimeLogs,
		"time_logs_removed", removedLogs,
		"deleted_by", claims.UserID,
	)
	return nil
}
