package vacation

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeVacationRepo struct {
	vacations []vacation.Vacation
}

func (f *fakeVacationRepo) Create(ctx context.Context, newVacation vacation.Vacation) (vacation.Vacation, error) {
	newVacation.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", len(f.vacations)+1)
	f.vacations = append(f.vacations, newVacation)
	return newVacation, nil
}

func (f *fakeVacationRepo) GetByID(ctx context.Context, id string, establishmentID string) (vacation.Vacation, error) {
	for _, v := range f.vacations {
		if v.ID == id && v.EstablishmentID == establishmentID {
			return v, nil
		}
	}
	return vacation.Vacation{}, vacation.ErrVacationNotFound
}

func (f *fakeVacationRepo) List(ctx context.Context, establishmentID string, filter vacation.VacationFilter) ([]vacation.Vacation, error) {
	out := []vacation.Vacation{}
	for _, v := range f.vacations {
		if v.EstablishmentID != establishmentID {
			continue
		}
		if filter.EmployeeID != nil && v.EmployeeID != *filter.EmployeeID {
			continue
		}
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

func (f *fakeVacationRepo) Delete(ctx context.Context, id string, establishmentID string) error {
	for i, v := range f.vacations {
		if v.ID == id && v.EstablishmentID == establishmentID {
			f.vacations = slices.Delete(f.vacations, i, i+1)
			return nil
		}
	}
	return vacation.ErrVacationNotFound
}

func (f *fakeVacationRepo) ExistsOverlapping(ctx context.Context, establishmentID string, employeeID string, start, end time.Time) (bool, error) {
	for _, v := range f.vacations {
		if v.EstablishmentID == establishmentID && v.EmployeeID == employeeID &&
			!v.StartDate.After(end) && !v.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, establishmentID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id && emp.EstablishmentID == establishmentID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
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
	return nil, nil
}

func (f *fakeEmployeeRepo) ListPINHashesByRoles(ctx context.Context, establishmentID string, roles []string) ([]string, error) {
	return nil, nil
}
