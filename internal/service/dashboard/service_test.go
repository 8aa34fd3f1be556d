package dashboard

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	vacationservice "github.com/holiday-manager/ponto-backend-go/internal/service/vacation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const establishmentID = "11111111-1111-1111-1111-111111111111"

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context, establishmentID string, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context, establishmentID string) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeVacationRepo struct {
	vacation.VacationRepository
	vacations []vacation.Vacation
}

func (f *fakeVacationRepo) List(ctx context.Context, establishmentID string, filter vacation.VacationFilter) ([]vacation.Vacation, error) {
	out := []vacation.Vacation{}
	for _, v := range f.vacations {
		if filter.From != nil && v.EndDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && v.StartDate.After(*filter.To) {
			continue
		}
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b vacation.Vacation) int { return a.StartDate.Compare(b.StartDate) })
	return out, nil
}

type fakeEstablishmentRepo struct {
	establishment.EstablishmentRepository
}

func (fakeEstablishmentRepo) GetByID(ctx context.Context, id string) (establishment.Establishment, error) {
	return establishment.Establishment{ID: id, Name: "Skina Bar", Timezone: "America/Sao_Paulo"}, nil
}

type fakePresence struct {
	timelog.TimeLogService
	count int
	err   error
}

func (f fakePresence) SnapshotPresence(ctx context.Context, establishmentID string) (timelog.LivePresenceResponse, error) {
	return timelog.LivePresenceResponse{Count: f.count}, f.err
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func newTestService(presence fakePresence) *DashboardServiceImpl {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", Name: "Maria", Salary: decimal.NewFromInt(3000)},
		{ID: "e2", Name: "João", Salary: decimal.NewFromInt(1500)},
		{ID: "e3", Name: "Ana", Salary: decimal.NewFromInt(9000)},
	}}
	vacations := &fakeVacationRepo{vacations: []vacation.Vacation{
		// away today
		{ID: "v-now", EmployeeID: "e3", StartDate: date("2024-05-01"), EndDate: date("2024-05-05")},
		// starts today: away, not upcoming
		{ID: "v-today", EmployeeID: "e2", StartDate: date("2024-05-02"), EndDate: date("2024-05-02")},
		{ID: "v-later", EmployeeID: "e2", StartDate: date("2024-06-20"), EndDate: date("2024-06-29")},
		{ID: "v-soon", EmployeeID: "e1", StartDate: date("2024-05-10"), EndDate: date("2024-05-19")},
		// beyond 60 days
		{ID: "v-far", EmployeeID: "e1", StartDate: date("2024-07-15"), EndDate: date("2024-07-20")},
		// already over
		{ID: "v-past", EmployeeID: "e1", StartDate: date("2024-04-01"), EndDate: date("2024-04-10")},
	}}

	svc := NewDashboardService(employees, vacations, fakeEstablishmentRepo{}, presence, vacationservice.NewPayCalculator(), time.UTC).(*DashboardServiceImpl)
	// 2024-05-02 22:30 in São Paulo is already May 3rd in UTC
	svc.now = func() time.Time { return time.Date(2024, 5, 3, 1, 30, 0, 0, time.UTC) }
	return svc
}

func TestDashboardService_GetDashboard(t *testing.T) {
	svc := newTestService(fakePresence{count: 2})
	ctx := jwt.ContextWithClaims(context.Background(), jwt.Claims{UserID: "admin-1", EstablishmentID: establishmentID})

	resp, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Headcount)
	assert.Equal(t, 2, resp.PresentNow)
	assert.Equal(t, "2024-05-02", resp.Date)

	away := []string{}
	for _, v := range resp.AwayToday {
		away = append(away, v.ID)
	}
	assert.Equal(t, []string{"v-now", "v-today"}, away)

	require.Len(t, resp.UpcomingVacations, 2)
	soon := resp.UpcomingVacations[0]
	assert.Equal(t, "v-soon", soon.ID)
	assert.Equal(t, 8, soon.DaysUntilStart)
	assert.Equal(t, 10, soon.Days)
	assert.Equal(t, "1333.33", soon.ProjectedCost)

	later := resp.UpcomingVacations[1]
	assert.Equal(t, "v-later", later.ID)
	assert.Equal(t, "666.67", later.ProjectedCost)

	// 1333.333.. + 666.666.. summed before rounding
	assert.Equal(t, "2000.00", resp.ProjectedVacationCost)
}

func TestDashboardService_GetDashboard_PropagatesErrors(t *testing.T) {
	svc := newTestService(fakePresence{err: errors.New("connection reset")})
	ctx := jwt.ContextWithClaims(context.Background(), jwt.Claims{UserID: "admin-1", EstablishmentID: establishmentID})

	_, err := svc.GetDashboard(ctx)
	assert.ErrorContains(t, err, "connection reset")
}

func TestDashboardService_GetDashboard_RequiresClaims(t *testing.T) {
	svc := newTestService(fakePresence{})

	_, err := svc.GetDashboard(context.Background())
	assert.ErrorIs(t, err, jwt.ErrMissingClaims)
}
