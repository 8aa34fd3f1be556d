package timeclock

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
)

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) find(id string, establishmentID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id && emp.EstablishmentID == establishmentID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, establishmentID string) (employee.Employee, error) {
	return f.find(id, establishmentID)
}

func (f *fakeEmployeeRepo) List(ctx context.Context, establishmentID string, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, establishmentID string, patch employee.Patch) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, establishmentID string) error {
	return nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context, establishmentID string) (int64, error) {
	return int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) GetPINHash(ctx context.Context, id string, establishmentID string) (*string, error) {
	emp, err := f.find(id, establishmentID)
	if err != nil {
		return nil, err
	}
	return emp.PINHash, nil
}

func (f *fakeEmployeeRepo) ListPINHashesByRoles(ctx context.Context, establishmentID string, roles []string) ([]string, error) {
	hashes := []string{}
	for _, emp := range f.employees {
		if emp.EstablishmentID == establishmentID && emp.HasPIN() && slices.Contains(roles, emp.Role) {
			hashes = append(hashes, *emp.PINHash)
		}
	}
	return hashes, nil
}

type fakeTimeLogRepo struct {
	mu   sync.Mutex
	logs []timelog.TimeLog
}

func (f *fakeTimeLogRepo) Create(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", len(f.logs)+1)
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeTimeLogRepo) GetByID(ctx context.Context, id string, establishmentID string) (timelog.TimeLog, error) {
	return timelog.TimeLog{}, timelog.ErrTimeLogNotFound
}

func (f *fakeTimeLogRepo) List(ctx context.Context, establishmentID string, filter timelog.ListFilter) ([]timelog.TimeLog, error) {
	return nil, nil
}

func (f *fakeTimeLogRepo) Update(ctx context.Context, id string, establishmentID string, patch timelog.Patch) error {
	return nil
}

func (f *fakeTimeLogRepo) Delete(ctx context.Context, id string, establishmentID string) error {
	return nil
}

func (f *fakeTimeLogRepo) DeleteByEmployee(ctx context.Context, employeeID string, establishmentID string) (int64, error) {
	return 0, nil
}

func (f *fakeTimeLogRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.logs)
}
