package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/dashboard"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	vacationservice "github.com/holiday-manager/ponto-backend-go/internal/service/vacation"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// upcomingWindowDays is how far ahead a vacation counts as upcoming
const upcomingWindowDays = 60

type DashboardServiceImpl struct {
	employeeRepo      employee.EmployeeRepository
	vacationRepo      vacation.VacationRepository
	establishmentRepo establishment.EstablishmentRepository
	timeLogService    timelog.TimeLogService
	calculator        *vacationservice.PayCalculator
	defaultLocation   *time.Location
	now               func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	vacationRepo vacation.VacationRepository,
	establishmentRepo establishment.EstablishmentRepository,
	timeLogService timelog.TimeLogService,
	calculator *vacationservice.PayCalculator,
	defaultLocation *time.Location,
) dashboard.DashboardService {
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}
	return &DashboardServiceImpl{
		employeeRepo:      employeeRepo,
		vacationRepo:      vacationRepo,
		establishmentRepo: establishmentRepo,
		timeLogService:    timeLogService,
		calculator:        calculator,
		defaultLocation:   defaultLocation,
		now:               time.Now,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	est, err := s.establishmentRepo.GetByID(ctx, claims.EstablishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get establishment: %w", err)
	}

	now := s.now()
	local := now.In(est.Location(s.defaultLocation))
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	var (
		headcount int64
		vacations []vacation.Vacation
		employees []employee.Employee
		presence  timelog.LivePresenceResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headcount
	g.Go(func() error {
		count, err := s.employeeRepo.Count(gCtx, claims.EstablishmentID)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		headcount = count
		return nil
	})

	// 2. Vacations touching [today, horizon]: covers both away today and upcoming
	g.Go(func() error {
		list, err := s.vacationRepo.List(gCtx, claims.EstablishmentID, vacation.VacationFilter{
			From: &today,
			To:   &horizon,
		})
		if err != nil {
			return fmt.Errorf("failed to list vacations: %w", err)
		}
		vacations = list
		return nil
	})

	// 3. Salaries for the projected cost
	g.Go(func() error {
		list, err := s.employeeRepo.List(gCtx, claims.EstablishmentID, employee.EmployeeFilter{})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		employees = list
		return nil
	})

	// 4. Who is clocked in right now
	g.Go(func() error {
		snapshot, err := s.timeLogService.SnapshotPresence(gCtx, claims.EstablishmentID)
		if err != nil {
			return err
		}
		presence = snapshot
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	salaries := make(map[string]decimal.Decimal, len(employees))
	for _, emp := range employees {
		salaries[emp.ID] = emp.Salary
	}

	response := &dashboard.DashboardResponse{
		Headcount:         headcount,
		AwayToday:         []vacation.VacationResponse{},
		UpcomingVacations: []dashboard.UpcomingVacationResponse{},
		PresentNow:        presence.Count,
		Date:              today.Format("2006-01-02"),
		GeneratedAt:       now.UTC().Format(time.RFC3339),
	}

	projected := decimal.Zero
	// List is ordered by start date, so upcoming stays sorted
	for _, v := range vacations {
		if v.Covers(today) {
			response.AwayToday = append(response.AwayToday, vacationservice.ToResponse(v))
			continue
		}
		if !v.StartDate.After(today) || v.StartDate.After(horizon) {
			continue
		}

		cost := decimal.Zero
		if salary, ok := salaries[v.EmployeeID]; ok {
			cost = s.calculator.Calculate(salary, v.Days()).Total
		}
		projected = projected.Add(cost)

		response.UpcomingVacations = append(response.UpcomingVacations, dashboard.UpcomingVacationResponse{
			VacationResponse: vacationservice.ToResponse(v),
			DaysUntilStart:   vacation.DaysBetween(today, v.StartDate) - 1,
			ProjectedCost:    cost.StringFixed(2),
		})
	}
	response.ProjectedVacationCost = projected.StringFixed(2)

	return response, nil
}
