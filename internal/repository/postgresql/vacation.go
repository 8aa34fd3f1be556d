package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepositoryImpl{db: db}
}

// Create implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Create(ctx context.Context, newVacation vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (employee_id, establishment_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, establishment_id, start_date, end_date, created_at
	`

	var created vacation.Vacation
	err := q.QueryRow(ctx, query,
		newVacation.EmployeeID,
		newVacation.EstablishmentID,
		newVacation.StartDate,
		newVacation.EndDate,
	).Scan(&created.ID, &created.EmployeeID, &created.EstablishmentID, &created.StartDate, &created.EndDate, &created.CreatedAt)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to create vacation: %w", err)
	}
	return created, nil
}

// GetByID implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string, establishmentID string) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.employee_id, v.establishment_id, v.start_date, v.end_date, v.created_at, e.name
		FROM vacations v
		JOIN employees e ON e.id = v.employee_id
		WHERE v.id = $1 AND v.establishment_id = $2
	`

	var found vacation.Vacation
	err := q.QueryRow(ctx, query, id, establishmentID).
		Scan(&found.ID, &found.EmployeeID, &found.EstablishmentID, &found.StartDate, &found.EndDate, &found.CreatedAt, &found.EmployeeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Vacation{}, vacation.ErrVacationNotFound
		}
		return vacation.Vacation{}, fmt.Errorf("failed to get vacation: %w", err)
	}
	return found, nil
}

// List implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) List(ctx context.Context, establishmentID string, filter vacation.VacationFilter) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"v.establishment_id = $1"}
	args := []interface{}{establishmentID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("v.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("v.end_date >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("v.start_date <= $%d", argIdx))
		args = append(args, *filter.To)
	}

	query := `
		SELECT v.id, v.employee_id, v.establishment_id, v.start_date, v.end_date, v.created_at, e.name
		FROM vacations v
		JOIN employees e ON e.id = v.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY v.start_date ASC, e.name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	defer rows.Close()

	vacations := []vacation.Vacation{}
	for rows.Next() {
		var v vacation.Vacation
		if err := rows.Scan(&v.ID, &v.EmployeeID, &v.EstablishmentID, &v.StartDate, &v.EndDate, &v.CreatedAt, &v.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan vacation: %w", err)
		}
		vacations = append(vacations, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vacations, nil
}

// Delete implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Delete(ctx context.Context, id string, establishmentID string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM vacations WHERE id = $1 AND establishment_id = $2 RETURNING id`, id, establishmentID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.ErrVacationNotFound
		}
		return fmt.Errorf("failed to delete vacation: %w", err)
	}
	return nil
}

// ExistsOverlapping implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) ExistsOverlapping(ctx context.Context, establishmentID string, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM vacations
			WHERE establishment_id = $1
				AND employee_id = $2
				AND start_date <= $4
				AND end_date >= $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, establishmentID, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping vacations: %w", err)
	}
	return exists, nil
}
