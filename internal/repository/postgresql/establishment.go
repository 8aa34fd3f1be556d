package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type establishmentRepositoryImpl struct {
	db *database.DB
}

func NewEstablishmentRepository(db *database.DB) establishment.EstablishmentRepository {
	return &establishmentRepositoryImpl{db: db}
}

// Create implements establishment.EstablishmentRepository.
func (r *establishmentRepositoryImpl) Create(ctx context.Context, newEstablishment establishment.Establishment) (establishment.Establishment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO establishments (name, timezone)
		VALUES ($1, $2)
		RETURNING id, name, timezone, created_at, updated_at
	`

	var created establishment.Establishment
	err := q.QueryRow(ctx, query, newEstablishment.Name, newEstablishment.Timezone).
		Scan(&created.ID, &created.Name, &created.Timezone, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return establishment.Establishment{}, fmt.Errorf("failed to create establishment: %w", err)
	}
	return created, nil
}

// GetByID implements establishment.EstablishmentRepository.
func (r *establishmentRepositoryImpl) GetByID(ctx context.Context, id string) (establishment.Establishment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, timezone, created_at, updated_at
		FROM establishments
		WHERE id = $1
	`

	var found establishment.Establishment
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Timezone, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return establishment.Establishment{}, establishment.ErrEstablishmentNotFound
		}
		return establishment.Establishment{}, fmt.Errorf("failed to get establishment: %w", err)
	}
	return found, nil
}

// Update implements establishment.EstablishmentRepository.
func (r *establishmentRepositoryImpl) Update(ctx context.Context, id string, req establishment.UpdateEstablishmentRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	i := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", i))
		args = append(args, *req.Name)
		i++
	}
	if req.Timezone != nil {
		setClauses = append(setClauses, fmt.Sprintf("timezone = $%d", i))
		args = append(args, *req.Timezone)
		i++
	}

	if len(setClauses) == 0 {
		return fmt.Errorf("no updatable fields provided for establishment update")
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	sql := "UPDATE establishments SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return establishment.ErrEstablishmentNotFound
		}
		return fmt.Errorf("failed to update establishment with id %s: %w", id, err)
	}
	return nil
}
