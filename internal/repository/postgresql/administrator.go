package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/administrator"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type administratorRepositoryImpl struct {
	db *database.DB
}

func NewAdministratorRepository(db *database.DB) administrator.AdministratorRepository {
	return &administratorRepositoryImpl{db: db}
}

const administratorColumns = `id, establishment_id, name, email, password_hash, role, created_at, updated_at`

func scanAdministrator(row pgx.Row) (administrator.Administrator, error) {
	var a administrator.Administrator
	err := row.Scan(&a.ID, &a.EstablishmentID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetByID implements administrator.AdministratorRepository.
func (r *administratorRepositoryImpl) GetByID(ctx context.Context, id string) (administrator.Administrator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + administratorColumns + ` FROM administrators WHERE id = $1`

	found, err := scanAdministrator(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return administrator.Administrator{}, administrator.ErrAdministratorNotFound
		}
		return administrator.Administrator{}, fmt.Errorf("failed to get administrator by id: %w", err)
	}
	return found, nil
}

// GetByEmail implements administrator.AdministratorRepository.
func (r *administratorRepositoryImpl) GetByEmail(ctx context.Context, email string) (administrator.Administrator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + administratorColumns + ` FROM administrators WHERE LOWER(email) = LOWER($1)`

	found, err := scanAdministrator(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return administrator.Administrator{}, administrator.ErrAdministratorNotFound
		}
		return administrator.Administrator{}, fmt.Errorf("failed to get administrator by email: %w", err)
	}
	return found, nil
}

// ExistsByEmail implements administrator.AdministratorRepository.
func (r *administratorRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM administrators WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check administrator email: %w", err)
	}
	return exists, nil
}

// Create implements administrator.AdministratorRepository.
func (r *administratorRepositoryImpl) Create(ctx context.Context, newAdministrator administrator.Administrator) (administrator.Administrator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO administrators (establishment_id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + administratorColumns

	created, err := scanAdministrator(q.QueryRow(ctx, query,
		newAdministrator.EstablishmentID,
		newAdministrator.Name,
		newAdministrator.Email,
		newAdministrator.PasswordHash,
		newAdministrator.Role,
	))
	if err != nil {
		return administrator.Administrator{}, fmt.Errorf("failed to create administrator: %w", err)
	}
	return created, nil
}

// UpdatePassword implements administrator.AdministratorRepository.
func (r *administratorRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE administrators
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, passwordHash, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return administrator.ErrAdministratorNotFound
		}
		return fmt.Errorf("failed to update password for administrator %s: %w", id, err)
	}
	return nil
}
