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

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*entities.Department, error)
	CreateDepartment(ctx context.Context, department entities.Department) (uint64, error)
	UpdateDepartment(ctx context.Context, id uint64, department entities.Department) error
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	var c entities.Center

	err := row.Scan(&d.ID, &d.Name, &d.CenterID, &d.CreatedAt, &d.UpdatedAt, &c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear departamento: %w", err)
	}

	d.Center = &c
	return &d, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar departamentos: %w", err)
	}

	rows, err := r.storage.Query(ctx, `
		SELECT d.id, d.name, d.center_id, d.created_at, d.updated_at, c.id, c.name
		FROM departments d
			JOIN centers c ON c.id = d.center_id
		ORDER BY d.name ASC
		LIMIT $1 OFFSET $2
	`, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar departamentos: %w", err)
	}
	defer rows.Close()

	var departments []entities.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, *d)
	}
	return departments, total, rows.Err()
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	return scanDepartment(r.storage.QueryRow(ctx, `
		SELECT d.id, d.name, d.center_id, d.created_at, d.updated_at, c.id, c.name
		FROM departments d
			JOIN centers c ON c.id = d.center_id
		WHERE d.id = $1
	`, id))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department entities.Department) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO departments (name, center_id) VALUES ($1, $2) RETURNING id
	`, department.Name, department.CenterID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar departamento: %w", err)
	}
	return id, nil
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id uint64, department entities.Department) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE departments SET name = $1, center_id = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3
	`, department.Name, department.CenterID, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar departamento: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir departamento: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
