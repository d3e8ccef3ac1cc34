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

type BlockRepositoryInterface interface {
	GetBlocks(ctx context.Context, filter types.Filter) ([]entities.Block, uint64, error)
	FindBlock(ctx context.Context, id uint64) (*entities.Block, error)
	CreateBlock(ctx context.Context, block entities.Block) (uint64, error)
	UpdateBlock(ctx context.Context, id uint64, block entities.Block) error
	DeleteBlock(ctx context.Context, id uint64) error
}

type BlockRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewBlockRepository(storage *pgxpool.Pool, logger *zap.Logger) BlockRepositoryInterface {
	return &BlockRepository{storage: storage, logger: logger}
}

func scanBlock(row pgx.Row) (*entities.Block, error) {
	var b entities.Block
	var d entities.Department

	err := row.Scan(&b.ID, &b.Name, &b.DepartmentID, &b.CreatedAt, &b.UpdatedAt, &d.ID, &d.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear bloco: %w", err)
	}

	b.Department = &d
	return &b, nil
}

func (r *BlockRepository) GetBlocks(ctx context.Context, filter types.Filter) ([]entities.Block, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM blocks`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar blocos: %w", err)
	}

	rows, err := r.storage.Query(ctx, `
		SELECT b.id, b.name, b.department_id, b.created_at, b.updated_at, d.id, d.name
		FROM blocks b
			JOIN departments d ON d.id = b.department_id
		ORDER BY b.name ASC
		LIMIT $1 OFFSET $2
	`, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar blocos: %w", err)
	}
	defer rows.Close()

	var blocks []entities.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, 0, err
		}
		blocks = append(blocks, *b)
	}
	return blocks, total, rows.Err()
}

func (r *BlockRepository) FindBlock(ctx context.Context, id uint64) (*entities.Block, error) {
	return scanBlock(r.storage.QueryRow(ctx, `
		SELECT b.id, b.name, b.department_id, b.created_at, b.updated_at, d.id, d.name
		FROM blocks b
			JOIN departments d ON d.id = b.department_id
		WHERE b.id = $1
	`, id))
}

func (r *BlockRepository) CreateBlock(ctx context.Context, block entities.Block) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO blocks (name, department_id) VALUES ($1, $2) RETURNING id
	`, block.Name, block.DepartmentID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar bloco: %w", err)
	}
	return id, nil
}

func (r *BlockRepository) UpdateBlock(ctx context.Context, id uint64, block entities.Block) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE blocks SET name = $1, department_id = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3
	`, block.Name, block.DepartmentID, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar bloco: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BlockRepository) DeleteBlock(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM blocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir bloco: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
