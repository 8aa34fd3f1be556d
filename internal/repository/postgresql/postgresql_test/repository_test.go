package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
	"github.com/holiday-manager/ponto-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEmployee(t *testing.T, repo employee.EmployeeRepository, establishmentID, name, role string, pinHash *string) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{
		EstablishmentID: establishmentID,
		Name:            name,
		Role:            role,
		Salary:          decimal.RequireFromString("2400.00"),
		PINHash:         pinHash,
	})
	require.NoError(t, err)
	return emp
}

func TestEstablishmentRepository_NotFound(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEstablishmentRepository(setup.DB)

	_, err := repo.GetByID(context.Background(), "0190a5c4-6b1e-7c3a-9a52-3f1f2a9d1e01")

	assert.ErrorIs(t, err, establishment.ErrEstablishmentNotFound)
}

func TestEmployeeRepository_TenantScoped(t *testing.T) {
	// Setup
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)
	barA := setup.CreateEstablishment(t, "Bar A")
	barB := setup.CreateEstablishment(t, "Bar B")
	emp := createEmployee(t, repo, barA.ID, "Maria", "Garçom", nil)

	// Act
	_, errOther := repo.GetByID(ctx, emp.ID, barB.ID)
	found, errOwn := repo.GetByID(ctx, emp.ID, barA.ID)
	countB, err := repo.Count(ctx, barB.ID)

	// Assert
	require.NoError(t, err)
	assert.ErrorIs(t, errOther, employee.ErrEmployeeNotFound)
	require.NoError(t, errOwn)
	assert.Equal(t, "Maria", found.Name)
	assert.True(t, decimal.RequireFromString("2400").Equal(found.Salary))
	assert.Equal(t, int64(0), countB)
}

func TestEmployeeRepository_PINHashes(t *testing.T) {
	// Setup
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)
	bar := setup.CreateEstablishment(t, "Bar")
	ceoHash, waiterHash := "hash-ceo", "hash-waiter"
	createEmployee(t, repo, bar.ID, "Zé", employee.RoleCEO, &ceoHash)
	waiter := createEmployee(t, repo, bar.ID, "Ana", "Garçom", &waiterHash)
	noPIN := createEmployee(t, repo, bar.ID, "Rui", employee.RoleManager, nil)

	// Act
	waiterPIN, err := repo.GetPINHash(ctx, waiter.ID, bar.ID)
	require.NoError(t, err)
	missingPIN, err := repo.GetPINHash(ctx, noPIN.ID, bar.ID)
	require.NoError(t, err)
	privileged, err := repo.ListPINHashesByRoles(ctx, bar.ID, []string{employee.RoleCEO, employee.RoleManager})
	require.NoError(t, err)

	// Assert
	require.NotNil(t, waiterPIN)
	assert.Equal(t, waiterHash, *waiterPIN)
	assert.Nil(t, missingPIN)
	assert.Equal(t, []string{ceoHash}, privileged)
}

func TestTimeLogRepository_ListOrderAndTenant(t *testing.T) {
	// Setup
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	logs := postgresql.NewTimeLogRepository(setup.DB)
	barA := setup.CreateEstablishment(t, "Bar A")
	barB := setup.CreateEstablishment(t, "Bar B")
	emp := createEmployee(t, employees, barA.ID, "Maria", "Garçom", nil)
	base := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	for i, typ := range []timelog.EventType{timelog.EventIn, timelog.EventOut, timelog.EventIn} {
		_, err := logs.Create(ctx, timelog.TimeLog{
			EmployeeID:      emp.ID,
			EstablishmentID: barA.ID,
			Type:            typ,
			Timestamp:       base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
	window := timelog.ListFilter{From: base.Add(-time.Hour), To: base.Add(5 * time.Hour)}

	// Act
	newestFirst, err := logs.List(ctx, barA.ID, window)
	require.NoError(t, err)
	window.Ascending = true
	oldestFirst, err := logs.List(ctx, barA.ID, window)
	require.NoError(t, err)
	other, err := logs.List(ctx, barB.ID, window)
	require.NoError(t, err)

	// Assert
	require.Len(t, newestFirst, 3)
	assert.True(t, newestFirst[0].Timestamp.Equal(base.Add(2*time.Hour)))
	require.Len(t, oldestFirst, 3)
	assert.True(t, oldestFirst[0].Timestamp.Equal(base))
	require.NotNil(t, oldestFirst[0].EmployeeName)
	assert.Equal(t, "Maria", *oldestFirst[0].EmployeeName)
	assert.Empty(t, other)
}

func TestTimeLogRepository_KeptAfterEmployeeDelete(t *testing.T) {
	// Setup
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	logs := postgresql.NewTimeLogRepository(setup.DB)
	bar := setup.CreateEstablishment(t, "Bar")
	emp := createEmployee(t, employees, bar.ID, "Maria", "Garçom", nil)
	created, err := logs.Create(ctx, timelog.TimeLog{EmployeeID: emp.ID, EstablishmentID: bar.ID, Type: timelog.EventIn, Timestamp: time.Now()})
	require.NoError(t, err)

	// Act
	require.NoError(t, employees.Delete(ctx, emp.ID, bar.ID))
	orphan, err := logs.GetByID(ctx, created.ID, bar.ID)
	require.NoError(t, err)
	removed, err := logs.DeleteByEmployee(ctx, emp.ID, bar.ID)
	require.NoError(t, err)

	// Assert
	assert.Nil(t, orphan.EmployeeName)
	assert.Equal(t, int64(1), removed)
	_, err = logs.GetByID(ctx, created.ID, bar.ID)
	assert.ErrorIs(t, err, timelog.ErrTimeLogNotFound)
}

func TestVacationRepository_ExistsOverlapping(t *testing.T) {
	// Setup
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	vacations := postgresql.NewVacationRepository(setup.DB)
	bar := setup.CreateEstablishment(t, "Bar")
	emp := createEmployee(t, employees, bar.ID, "Maria", "Garçom", nil)
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }
	_, err := vacations.Create(ctx, vacation.Vacation{EmployeeID: emp.ID, EstablishmentID: bar.ID, StartDate: day(10), EndDate: day(20)})
	require.NoError(t, err)

	// Act
	inside, err := vacations.ExistsOverlapping(ctx, bar.ID, emp.ID, day(15), day(25))
	require.NoError(t, err)
	adjacent, err := vacations.ExistsOverlapping(ctx, bar.ID, emp.ID, day(21), day(25))
	require.NoError(t, err)

	// Assert
	assert.True(t, inside)
	assert.False(t, adjacent)
}

func TestTxManager_RollbackOnError(t *testing.T) {
	// Setup
	setup := NewTestDatabase(t)
	ctx := context.Background()
	txManager := postgresql.NewTxManager(setup.DB)
	employees := postgresql.NewEmployeeRepository(setup.DB)
	bar := setup.CreateEstablishment(t, "Bar")
	boom := errors.New("boom")

	// Act
	err := txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, err := employees.Create(txCtx, employee.Employee{
			EstablishmentID: bar.ID,
			Name:            "Maria",
			Role:            "Garçom",
			Salary:          decimal.RequireFromString("2400.00"),
		})
		require.NoError(t, err)
		return boom
	})

	// Assert
	assert.ErrorIs(t, err, boom)
	count, err := employees.Count(ctx, bar.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
