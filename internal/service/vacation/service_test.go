package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	establishmentID = "11111111-1111-1111-1111-111111111111"
	otherTenantID   = "22222222-2222-2222-2222-222222222222"
	mariaID         = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	joaoID          = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	foreignID       = "cccccccc-cccc-cccc-cccc-cccccccccccc"
)

func newTestService() (*VacationServiceImpl, *fakeVacationRepo, context.Context) {
	vacations := &fakeVacationRepo{}
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: mariaID, EstablishmentID: establishmentID, Name: "Maria", Salary: decimal.NewFromInt(3000)},
		{ID: joaoID, EstablishmentID: establishmentID, Name: "João", Salary: decimal.RequireFromString("2400.50")},
		{ID: foreignID, EstablishmentID: otherTenantID, Name: "Outsider", Salary: decimal.NewFromInt(9000)},
	}}
	svc := NewVacationService(fakeTxManager{}, vacations, employees, NewPayCalculator()).(*VacationServiceImpl)
	ctx := jwt.ContextWithClaims(context.Background(), jwt.Claims{UserID: "admin-1", EstablishmentID: establishmentID})
	return svc, vacations, ctx
}

func TestVacationService_Create(t *testing.T) {
	svc, repo, ctx := newTestService()

	resp, err := svc.Create(ctx, vacation.CreateVacationRequest{EmployeeID: mariaID, StartDate: "2024-07-01", EndDate: "2024-07-10"})
	require.NoError(t, err)

	assert.Equal(t, mariaID, resp.EmployeeID)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Maria", *resp.EmployeeName)
	assert.Equal(t, "2024-07-01", resp.StartDate)
	assert.Equal(t, "2024-07-10", resp.EndDate)
	assert.Equal(t, 10, resp.Days)

	require.Len(t, repo.vacations, 1)
	assert.Equal(t, establishmentID, repo.vacations[0].EstablishmentID)
}

func TestVacationService_Create_Overlap(t *testing.T) {
	svc, _, ctx := newTestService()

	_, err := svc.Create(ctx, vacation.CreateVacationRequest{EmployeeID: mariaID, StartDate: "2024-07-01", EndDate: "2024-07-10"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, vacation.CreateVacationRequest{EmployeeID: mariaID, StartDate: "2024-07-10", EndDate: "2024-07-15"})
	assert.ErrorIs(t, err, vacation.ErrVacationOverlap)

	// Adjacent ranges and other employees are fine
	_, err = svc.Create(ctx, vacation.CreateVacationRequest{EmployeeID: mariaID, StartDate: "2024-07-11", EndDate: "2024-07-15"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, vacation.CreateVacationRequest{EmployeeID: joaoID, StartDate: "2024-07-05", EndDate: "2024-07-06"})
	assert.NoError(t, err)
}

func TestVacationService_Create_Invalid(t *testing.T) {
	svc, repo, ctx := newTestService()

	_, err := svc.Create(ctx, vacation.CreateVacationRequest{EmployeeID: mariaID, StartDate: "2024-07-10", EndDate: "2024-07-01"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end_date", verrs[0].Field)

	_, err = svc.Create(ctx, vacation.CreateVacationRequest{EmployeeID: foreignID, StartDate: "2024-07-01", EndDate: "2024-07-02"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.Empty(t, repo.vacations)
}

func TestVacationService_List(t *testing.T) {
	svc, repo, ctx := newTestService()
	day := func(s string) time.Time { d, _ := time.Parse(dateLayout, s); return d }
	repo.vacations = []vacation.Vacation{
		{ID: "v2", EmployeeID: joaoID, EstablishmentID: establishmentID, StartDate: day("2024-08-01"), EndDate: day("2024-08-05")},
		{ID: "v1", EmployeeID: mariaID, EstablishmentID: establishmentID, StartDate: day("2024-07-01"), EndDate: day("2024-07-10")},
		{ID: "v3", EmployeeID: foreignID, EstablishmentID: otherTenantID, StartDate: day("2024-07-01"), EndDate: day("2024-07-10")},
	}

	all, err := svc.List(ctx, vacation.VacationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "v1", all[0].ID)
	assert.Equal(t, "v2", all[1].ID)

	id := joaoID
	only, err := svc.List(ctx, vacation.VacationFilter{EmployeeID: &id})
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, 5, only[0].Days)

	bad := "nope"
	_, err = svc.List(ctx, vacation.VacationFilter{EmployeeID: &bad})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestVacationService_Delete(t *testing.T) {
	svc, repo, ctx := newTestService()
	created, err := svc.Create(ctx, vacation.CreateVacationRequest{EmployeeID: mariaID, StartDate: "2024-07-01", EndDate: "2024-07-02"})
	require.NoError(t, err)

	otherCtx := jwt.ContextWithClaims(context.Background(), jwt.Claims{UserID: "admin-2", EstablishmentID: otherTenantID})
	assert.ErrorIs(t, svc.Delete(otherCtx, created.ID), vacation.ErrVacationNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "not-a-uuid"), vacation.ErrVacationNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.vacations)
}

func TestVacationService_Estimate(t *testing.T) {
	svc, _, ctx := newTestService()

	resp, err := svc.Estimate(ctx, vacation.EstimateRequest{EmployeeID: mariaID, StartDate: "2024-07-01", EndDate: "2024-07-10"})
	require.NoError(t, err)
	assert.Equal(t, vacation.EstimateResponse{
		EmployeeID: mariaID,
		Days:       10,
		Salary:     "3000.00",
		DailyRate:  "100.00",
		BaseAmount: "1000.00",
		Bonus:      "333.33",
		Total:      "1333.33",
	}, resp)

	_, err = svc.Estimate(ctx, vacation.EstimateRequest{EmployeeID: foreignID, StartDate: "2024-07-01", EndDate: "2024-07-10"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
