package employee

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) index(id string, establishmentID string) int {
	return slices.IndexFunc(f.employees, func(e employee.Employee) bool {
		return e.ID == id && e.EstablishmentID == establishmentID
	})
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, establishmentID string) (employee.Employee, error) {
	i := f.index(id, establishmentID)
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.employees[i], nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, establishmentID string, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	out := []employee.Employee{}
	for _, emp := range f.employees {
		if emp.EstablishmentID != establishmentID {
			continue
		}
		if filter.Search != nil && !strings.Contains(strings.ToLower(emp.Name), strings.ToLower(*filter.Search)) {
			continue
		}
		if filter.Role != nil && emp.Role != *filter.Role {
			continue
		}
		out = append(out, emp)
	}
	slices.SortFunc(out, func(a, b employee.Employee) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", len(f.employees)+1)
	newEmployee.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, establishmentID string, patch employee.Patch) error {
	i := f.index(id, establishmentID)
	if i < 0 {
		return employee.ErrEmployeeNotFound
	}
	emp := &f.employees[i]
	if patch.Name != nil {
		emp.Name = *patch.Name
	}
	if patch.Role != nil {
		emp.Role = *patch.Role
	}
	if patch.Salary != nil {
		emp.Salary = *patch.Salary
	}
	if patch.HireDate != nil {
		if *patch.HireDate == "" {
			emp.HireDate = nil
		} else {
			d, _ := time.Parse(dateLayout, *patch.HireDate)
			emp.HireDate = &d
		}
	}
	if patch.PINHash != nil {
		emp.PINHash = patch.PINHash
	}
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, establishmentID string) error {
	i := f.index(id, establishmentID)
	if i < 0 {
		return employee.ErrEmployeeNotFound
	}
	f.employees = slices.Delete(f.employees, i, i+1)
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

type fakeTimeLogRepo struct {
	logs []timelog.TimeLog
}

func (f *fakeTimeLogRepo) Create(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeTimeLogRepo) GetByID(ctx context.Context, id string, establishmentID string) (timelog.TimeLog, error) {
	return timelog.TimeLog{}, timelog.ErrTimeLogNotFound
}

func (f *fakeTimeLogRepo) List(ctx context.Context, establishmentID string, filter timelog.ListFilter) ([]timelog.TimeLog, error) {
	return f.logs, nil
}

func (f *fakeTimeLogRepo) Update(ctx context.Context, id string, establishmentID string, patch timelog.Patch) error {
	return nil
}

func (f *fakeTimeLogRepo) Delete(ctx context.Context, id string, establishmentID string) error {
	return nil
}

func (f *fakeTimeLogRepo) DeleteByEmployee(ctx context.Context, employeeID string, establishmentID string) (int64, error) {
	before := len(f.logs)
	f.logs = slices.DeleteFunc(f.logs, func(log timelog.TimeLog) bool {
		return log.EmployeeID == employeeID && log.EstablishmentID == establishmentID
	})
	return int64(before - len(f.logs)), nil
}
