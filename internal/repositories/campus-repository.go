package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"facilities-system/internal/entities"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/types"
)

type CampusRepositoryInterface interface {
	GetCampuses(ctx context.Context, filter types.Filter) ([]entities.Campus, uint64, error)
	FindCampus(ctx context.Context, id uint64) (*entities.Campus, error)
	CreateCampus(ctx context.Context, campus entities.Campus) (uint64, error)
	UpdateCampus(ctx context.Context, id uint64, campus entities.Campus) error
	DeleteCampus(ctx context.Context, id uint64) error
}

type CampusRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCampusRepository(storage *pgxpool.Pool, logger *zap.Logger) CampusRepositoryInterface {
	return &CampusRepository{storage: storage, logger: logger}
}

func (r *CampusRepository) GetCampuses(ctx context.Context, filter types.Filter) ([]entities.Campus, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM campuses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar campi: %w", err)
	}

	rows, err := r.storage.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM campuses
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar campi: %w", err)
	}
	defer rows.Close()

	var campuses []entities.Campus
	for rows.Next() {
		var c entities.Campus
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear campus: %w", err)
		}
		campuses = append(campuses, c)
	}
	return campuses, total, rows.Err()
}

func (r *CampusRepository) FindCampus(ctx context.Context, id uint64) (*entities.Campus, error) {
	var c entities.Campus
	err := r.storage.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM campuses
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campus: %w", err)
	}
	return &c, nil
}

func (r *CampusRepository) CreateCampus(ctx context.Context, campus entities.Campus) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO campuses (name) VALUES ($1) RETURNING id
	`, campus.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar campus: %w", err)
	}
	return id, nil
}

func (r *CampusRepository) UpdateCampus(ctx context.Context, id uint64, campus entities.Campus) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE campuses SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2
	`, campus.Name, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar campus: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CampusRepository) DeleteCampus(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM campuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir campus: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
