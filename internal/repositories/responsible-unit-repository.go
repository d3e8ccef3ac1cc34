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

type ResponsibleUnitRepositoryInterface interface {
	GetResponsibleUnits(ctx context.Context, filter types.Filter) ([]entities.ResponsibleUnit, uint64, error)
	FindResponsibleUnit(ctx context.Context, id uint64) (*entities.ResponsibleUnit, error)
	CreateResponsibleUnit(ctx context.Context, unit entities.ResponsibleUnit) (uint64, error)
	UpdateResponsibleUnit(ctx context.Context, id uint64, unit entities.ResponsibleUnit) error
	DeleteResponsibleUnit(ctx context.Context, id uint64) error
}

type ResponsibleUnitRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewResponsibleUnitRepository(storage *pgxpool.Pool, logger *zap.Logger) ResponsibleUnitRepositoryInterface {
	return &ResponsibleUnitRepository{storage: storage, logger: logger}
}

func (r *ResponsibleUnitRepository) GetResponsibleUnits(ctx context.Context, filter types.Filter) ([]entities.ResponsibleUnit, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM responsible_units`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar unidades responsáveis: %w", err)
	}

	rows, err := r.storage.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM responsible_units
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar unidades responsáveis: %w", err)
	}
	defer rows.Close()

	var units []entities.ResponsibleUnit
	for rows.Next() {
		var u entities.ResponsibleUnit
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear unidade responsável: %w", err)
		}
		units = append(units, u)
	}
	return units, total, rows.Err()
}

func (r *ResponsibleUnitRepository) FindResponsibleUnit(ctx context.Context, id uint64) (*entities.ResponsibleUnit, error) {
	var u entities.ResponsibleUnit
	err := r.storage.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM responsible_units
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar unidade responsável: %w", err)
	}
	return &u, nil
}

func (r *ResponsibleUnitRepository) CreateResponsibleUnit(ctx context.Context, unit entities.ResponsibleUnit) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO responsible_units (name) VALUES ($1) RETURNING id
	`, unit.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar unidade responsável: %w", err)
	}
	return id, nil
}

func (r *ResponsibleUnitRepository) UpdateResponsibleUnit(ctx context.Context, id uint64, unit entities.ResponsibleUnit) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE responsible_units SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2
	`, unit.Name, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar unidade responsável: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ResponsibleUnitRepository) DeleteResponsibleUnit(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM responsible_units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir unidade responsável: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
