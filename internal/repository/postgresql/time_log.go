package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeLogRepositoryImpl struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepositoryImpl{db: db}
}

// Employees may be deleted while their punches are kept, hence the LEFT JOIN
const timeLogSelect = `
	SELECT t.id, t.employee_id, t.establishment_id, t.type, t.timestamp, t.created_at, e.name
	FROM time_logs t
	LEFT JOIN employees e ON e.id = t.employee_id
`

func scanTimeLog(row pgx.Row) (timelog.TimeLog, error) {
	var log timelog.TimeLog
	err := row.Scan(&log.ID, &log.EmployeeID, &log.EstablishmentID, &log.Type, &log.Timestamp, &log.CreatedAt, &log.EmployeeName)
	return log, err
}

// Create implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Create(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_logs (employee_id, establishment_id, type, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, establishment_id, type, timestamp, created_at
	`

	var created timelog.TimeLog
	err := q.QueryRow(ctx, query, log.EmployeeID, log.EstablishmentID, log.Type, log.Timestamp).
		Scan(&created.ID, &created.EmployeeID, &created.EstablishmentID, &created.Type, &created.Timestamp, &created.CreatedAt)
	if err != nil {
		return timelog.TimeLog{}, fmt.Errorf("failed to insert time log: %w", err)
	}
	created.EmployeeName = log.EmployeeName
	return created, nil
}

// GetByID implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) GetByID(ctx context.Context, id string, establishmentID string) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanTimeLog(q.QueryRow(ctx, timeLogSelect+` WHERE t.id = $1 AND t.establishment_id = $2`, id, establishmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, timelog.ErrTimeLogNotFound
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to get time log: %w", err)
	}
	return found, nil
}

// List implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) List(ctx context.Context, establishmentID string, filter timelog.ListFilter) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"t.establishment_id = $1", "t.timestamp >= $2", "t.timestamp <= $3"}
	args := []interface{}{establishmentID, filter.From, filter.To}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, "t.employee_id = $4")
		args = append(args, *filter.EmployeeID)
	}

	order := "DESC"
	if filter.Ascending {
		order = "ASC"
	}

	query := timeLogSelect + ` WHERE ` + strings.Join(conditions, " AND ") +
		` ORDER BY t.timestamp ` + order + `, t.id ` + order

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	defer rows.Close()

	logs := []timelog.TimeLog{}
	for rows.Next() {
		log, err := scanTimeLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// Update implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Update(ctx context.Context, id string, establishmentID string, patch timelog.Patch) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	i := 1

	if patch.Type != nil {
		setClauses = append(setClauses, fmt.Sprintf("type = $%d", i))
		args = append(args, *patch.Type)
		i++
	}
	if patch.Timestamp != nil {
		setClauses = append(setClauses, fmt.Sprintf("timestamp = $%d", i))
		args = append(args, *patch.Timestamp)
		i++
	}

	if len(setClauses) == 0 {
		return fmt.Errorf("no updatable fields provided for time log update")
	}

	sql := "UPDATE time_logs SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND establishment_id = $%d RETURNING id", i, i+1)
	args = append(args, id, establishmentID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.ErrTimeLogNotFound
		}
		return fmt.Errorf("failed to update time log with id %s: %w", id, err)
	}
	return nil
}

// Delete implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Delete(ctx context.Context, id string, establishmentID string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM time_logs WHERE id = $1 AND establishment_id = $2 RETURNING id`, id, establishmentID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.ErrTimeLogNotFound
		}
		return fmt.Errorf("failed to delete time log: %w", err)
	}
	return nil
}

// DeleteByEmployee implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string, establishmentID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_logs WHERE employee_id = $1 AND establishment_id = $2`, employeeID, establishmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete time logs of employee %s: %w", employeeID, err)
	}
	return tag.RowsAffected(), nil
}
