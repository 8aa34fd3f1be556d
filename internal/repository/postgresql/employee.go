package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, establishment_id, name, role, salary, hire_date, pin_hash, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EstablishmentID, &emp.Name, &emp.Role, &emp.Salary,
		&emp.HireDate, &emp.PINHash, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, establishmentID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND establishment_id = $2`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, establishmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, establishmentID string, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE conditions
	conditions := []string{"establishment_id = $1"}
	args := []interface{}{establishmentID}
	argIdx := 2

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Role != nil && *filter.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *filter.Role)
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (establishment_id, name, role, salary, hire_date, pin_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.EstablishmentID,
		newEmployee.Name,
		newEmployee.Role,
		newEmployee.Salary,
		newEmployee.HireDate,
		newEmployee.PINHash,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, establishmentID string, patch employee.Patch) error {
	q := GetQuerier(ctx, e.db)

	updates := []string{}
	args := []interface{}{}
	i := 1

	if patch.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", i))
		args = append(args, *patch.Name)
		i++
	}
	if patch.Role != nil {
		updates = append(updates, fmt.Sprintf("role = $%d", i))
		args = append(args, *patch.Role)
		i++
	}
	if patch.Salary != nil {
		updates = append(updates, fmt.Sprintf("salary = $%d", i))
		args = append(args, *patch.Salary)
		i++
	}
	if patch.HireDate != nil {
		updates = append(updates, fmt.Sprintf("hire_date = $%d", i))
		// Empty string clears the date
		if *patch.HireDate == "" {
			args = append(args, nil)
		} else {
			args = append(args, *patch.HireDate)
		}
		i++
	}
	if patch.PINHash != nil {
		updates = append(updates, fmt.Sprintf("pin_hash = $%d", i))
		args = append(args, *patch.PINHash)
		i++
	}

	if len(updates) == 0 {
		return nil
	}
	updates = append(updates, "updated_at = NOW()")

	sql := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND establishment_id = $%d RETURNING id", i, i+1)
	args = append(args, id, establishmentID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository. Vacations follow through ON DELETE CASCADE.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string, establishmentID string) error {
	q := GetQuerier(ctx, e.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 AND establishment_id = $2 RETURNING id`, id, establishmentID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context, establishmentID string) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE establishment_id = $1`, establishmentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// GetPINHash implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetPINHash(ctx context.Context, id string, establishmentID string) (*string, error) {
	q := GetQuerier(ctx, e.db)

	var pinHash *string
	err := q.QueryRow(ctx, `SELECT pin_hash FROM employees WHERE id = $1 AND establishment_id = $2`, id, establishmentID).Scan(&pinHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee PIN: %w", err)
	}
	return pinHash, nil
}

// ListPINHashesByRoles implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListPINHashesByRoles(ctx context.Context, establishmentID string, roles []string) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT pin_hash
		FROM employees
		WHERE establishment_id = $1
			AND role = ANY($2)
			AND pin_hash IS NOT NULL
	`

	rows, err := q.Query(ctx, query, establishmentID, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to list privileged PINs: %w", err)
	}
	defer rows.Close()

	hashes := []string{}
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("failed to scan PIN hash: %w", err)
		}
		hashes = append(hashes, hash)
	}
	return hashes, rows.Err()
}
