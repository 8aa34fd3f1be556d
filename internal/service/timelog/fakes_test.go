package timelog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
)

type fakeTimeLogRepo struct {
	mu     sync.Mutex
	logs   []timelog.TimeLog
	nextID int
}

func (f *fakeTimeLogRepo) Create(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	log.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.nextID)
	log.CreatedAt = time.Now()
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeTimeLogRepo) GetByID(ctx context.Context, id string, establishmentID string) (timelog.TimeLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, log := range f.logs {
		if log.ID == id && log.EstablishmentID == establishmentID {
			return log, nil
		}
	}
	return timelog.TimeLog{}, timelog.ErrTimeLogNotFound
}

func (f *fakeTimeLogRepo) List(ctx context.Context, establishmentID string, filter timelog.ListFilter) ([]timelog.TimeLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []timelog.TimeLog{}
	for _, log := range f.logs {
		if log.EstablishmentID != establishmentID {
			continue
		}
		if filter.EmployeeID != nil && log.EmployeeID != *filter.EmployeeID {
			continue
		}
		if log.Timestamp.Before(filter.From) || log.Timestamp.After(filter.To) {
			continue
		}
		out = append(out, log)
	}
	slices.SortFunc(out, func(a, b timelog.TimeLog) int {
		c := a.Timestamp.Compare(b.Timestamp)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if filter.Ascending {
			return c
		}
		return -c
	})
	return out, nil
}

func (f *fakeTimeLogRepo) Update(ctx context.Context, id string, establishmentID string, patch timelog.Patch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, log := range f.logs {
		if log.ID != id || log.EstablishmentID != establishmentID {
			continue
		}
		if patch.Type != nil {
			f.logs[i].Type = *patch.Type
		}
		if patch.Timestamp != nil {
			f.logs[i].Timestamp = *patch.Timestamp
		}
		return nil
	}
	return timelog.ErrTimeLogNotFound
}

func (f *fakeTimeLogRepo) Delete(ctx context.Context, id string, establishmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, log := range f.logs {
		if log.ID == id && log.EstablishmentID == establishmentID {
			f.logs = slices.Delete(f.logs, i, i+1)
			return nil
		}
	}
	return timelog.ErrTimeLogNotFound
}

func (f *fakeTimeLogRepo) DeleteByEmployee(ctx context.Context, employeeID string, establishmentID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	before := len(f.logs)
	f.logs = slices.DeleteFunc(f.logs, func(log timelog.TimeLog) bool {
		return log.EmployeeID == employeeID && log.EstablishmentID == establishmentID
	})
	return int64(before - len(f.logs)), nil
}

// seed stores a punch as the time clock would, with the employee name joined in
func (f *fakeTimeLogRepo) seed(establishmentID string, emp employee.Employee, t timelog.EventType, ts time.Time) timelog.TimeLog {
	name := emp.Name
	log, _ := f.Create(context.Background(), timelog.TimeLog{
		EmployeeID:      emp.ID,
		EstablishmentID: establishmentID,
		Type:            t,
		Timestamp:       ts,
		EmployeeName:    &name,
	})
	return log
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	for _, emp := range emps {
		f.employees[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, establishmentID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.EstablishmentID != establishmentID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, establishmentID string, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	out := []employee.Employee{}
	for _, emp := range f.employees {
		if emp.EstablishmentID == establishmentID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, establishmentID string, patch employee.Patch) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, establishmentID string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context, establishmentID string) (int64, error) {
	emps, _ := f.List(ctx, establishmentID, employee.EmployeeFilter{})
	return int64(len(emps)), nil
}

func (f *fakeEmployeeRepo) GetPINHash(ctx context.Context, id string, establishmentID string) (*string, error) {
	emp, err := f.GetByID(ctx, id, establishmentID)
	if err != nil {
		return nil, err
	}
	return emp.PINHash, nil
}

func (f *fakeEmployeeRepo) ListPINHashesByRoles(ctx context.Context, establishmentID string, roles []string) ([]string, error) {
	return nil, nil
}

type fakeEstablishmentRepo struct {
	establishments map[string]establishment.Establishment
}

func (f *fakeEstablishmentRepo) Create(ctx context.Context, newEstablishment establishment.Establishment) (establishment.Establishment, error) {
	f.establishments[newEstablishment.ID] = newEstablishment
	return newEstablishment, nil
}

func (f *fakeEstablishmentRepo) GetByID(ctx context.Context, id string) (establishment.Establishment, error) {
	est, ok := f.establishments[id]
	if !ok {
		return establishment.Establishment{}, establishment.ErrEstablishmentNotFound
	}
	return est, nil
}

func (f *fakeEstablishmentRepo) Update(ctx context.Context, id string, req establishment.UpdateEstablishmentRequest) error {
	return nil
}
