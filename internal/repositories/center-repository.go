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

type CenterRepositoryInterface interface {
	GetCenters(ctx context.Context, filter types.Filter) ([]entities.Center, uint64, error)
	FindCenter(ctx context.Context, id uint64) (*entities.Center, error)
	CreateCenter(ctx context.Context, center entities.Center) (uint64, error)
	UpdateCenter(ctx context.Context, id uint64, center entities.Center) error
	DeleteCenter(ctx context.Context, id uint64) error
}

type CenterRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCenterRepository(storage *pgxpool.Pool, logger *zap.Logger) CenterRepositoryInterface {
	return &CenterRepository{storage: storage, logger: logger}
}

func scanCenter(row pgx.Row) (*entities.Center, error) {
	var c entities.Center
	var campus entities.Campus

	err := row.Scan(&c.ID, &c.Name, &c.CampusID, &c.CreatedAt, &c.UpdatedAt, &campus.ID, &campus.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear centro: %w", err)
	}

	c.Campus = &campus
	return &c, nil
}

func (r *CenterRepository) GetCenters(ctx context.Context, filter types.Filter) ([]entities.Center, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM centers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar centros: %w", err)
	}

	rows, err := r.storage.Query(ctx, `
		SELECT c.id, c.name, c.campus_id, c.created_at, c.updated_at, p.id, p.name
		FROM centers c
			JOIN campuses p ON p.id = c.campus_id
		ORDER BY c.name ASC
		LIMIT $1 OFFSET $2
	`, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar centros: %w", err)
	}
	defer rows.Close()

	var centers []entities.Center
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, 0, err
		}
		centers = append(centers, *c)
	}
	return centers, total, rows.Err()
}

func (r *CenterRepository) FindCenter(ctx context.Context, id uint64) (*entities.Center, error) {
	return scanCenter(r.storage.QueryRow(ctx, `
		SELECT c.id, c.name, c.campus_id, c.created_at, c.updated_at, p.id, p.name
		FROM centers c
			JOIN campuses p ON p.id = c.campus_id
		WHERE c.id = $1
	`, id))
}

func (r *CenterRepository) CreateCenter(ctx context.Context, center entities.Center) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO centers (name, campus_id) VALUES ($1, $2) RETURNING id
	`, center.Name, center.CampusID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar centro: %w", err)
	}
	return id, nil
}

func (r *CenterRepository) UpdateCenter(ctx context.Context, id uint64, center entities.Center) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE centers SET name = $1, campus_id = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3
	`, center.Name, center.CampusID, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar centro: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CenterRepository) DeleteCenter(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM centers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir centro: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
