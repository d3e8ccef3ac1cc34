package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"facilities-system/internal/entities"
	"facilities-system/pkg/constants"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/types"
)

const maintenanceTable = "maintenances"

const maintenanceColumns = `m.id, m.work_order, m.equipment_id, m.opened_date, m.closed_date,
	m.kind, m.description, m.status, m.created_at, m.updated_at,
	e.id, e.kind, e.asset_tag`

var maintenanceFieldMap = map[string]string{
	"id":           "m.id",
	"work_order":   "m.work_order",
	"equipment_id": "m.equipment_id",
	"kind":         "m.kind",
	"status":       "m.status",
	"opened_date":  "m.opened_date",
	"closed_date":  "m.closed_date",
}

type MaintenanceRepositoryInterface interface {
	GetMaintenances(ctx context.Context, filter types.Filter) ([]entities.Maintenance, uint64, error)
	FindMaintenance(ctx context.Context, id uint64) (*entities.Maintenance, error)
	FindByWorkOrder(ctx context.Context, workOrder int) (*entities.Maintenance, error)
	FindInitials(ctx context.Context, equipmentID uint64) ([]entities.Maintenance, error)
	HasOpenOther(ctx context.Context, equipmentID uint64, excludeID uint64) (bool, error)
	CreateMaintenanceInTx(ctx context.Context, tx pgx.Tx, maintenance entities.Maintenance) (uint64, error)
	UpdateMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uint64, maintenance entities.Maintenance) error
	DeleteMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uint64) error
	DeleteDefaultInitialInTx(ctx context.Context, tx pgx.Tx, equipmentID uint64, keepID uint64) error
	LatestClosedInTx(ctx context.Context, tx pgx.Tx, equipmentID uint64) (*entities.Maintenance, error)
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage, logger: logger}
}

func scanMaintenance(row pgx.Row) (*entities.Maintenance, error) {
	var m entities.Maintenance
	var e entities.Equipment

	err := row.Scan(
		&m.ID, &m.WorkOrder, &m.EquipmentID, &m.OpenedDate, &m.ClosedDate,
		&m.Kind, &m.Description, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		&e.ID, &e.Kind, &e.AssetTag,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear manutenção: %w", err)
	}

	m.Equipment = &e
	return &m, nil
}

func (r *MaintenanceRepository) GetMaintenances(ctx context.Context, filter types.Filter) ([]entities.Maintenance, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(maintenanceColumns).
		From(maintenanceTable + " m").
		Join("equipments e ON e.id = m.equipment_id")

	countQuery := psql.Select("COUNT(*)").
		From(maintenanceTable + " m").
		Join("equipments e ON e.id = m.equipment_id")

	for field, value := range filter.Filter {
		column, ok := maintenanceFieldMap[field]
		if !ok {
			continue
		}
		raw := fmt.Sprintf("%v", value)
		if strings.Contains(raw, ",") {
			values := strings.Split(raw, ",")
			base = base.Where(sq.Eq{column: values})
			countQuery = countQuery.Where(sq.Eq{column: values})
		} else {
			base = base.Where(sq.Eq{column: raw})
			countQuery = countQuery.Where(sq.Eq{column: raw})
		}
	}

	if filter.Search != "" {
		cond := sq.Or{
			sq.ILike{"m.description": "%" + filter.Search + "%"},
			sq.Expr("CAST(m.work_order AS TEXT) LIKE ?", "%"+filter.Search+"%"),
		}
		base = base.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	orderBy := "m.opened_date DESC, m.id DESC"
	for field, direction := range filter.Sort {
		if column, ok := maintenanceFieldMap[field]; ok {
			orderBy = fmt.Sprintf("%s %s", column, strings.ToUpper(direction))
			break
		}
	}
	base = base.OrderBy(orderBy).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	var total uint64
	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar manutenções: %w", err)
	}

	querySQL, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar manutenções: %w", err)
	}
	defer rows.Close()

	var maintenances []entities.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, 0, err
		}
		maintenances = append(maintenances, *m)
	}
	return maintenances, total, rows.Err()
}

func (r *MaintenanceRepository) FindMaintenance(ctx context.Context, id uint64) (*entities.Maintenance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
			JOIN equipments e ON e.id = m.equipment_id
		WHERE m.id = $1
	`, maintenanceColumns, maintenanceTable)

	return scanMaintenance(r.storage.QueryRow(ctx, query, id))
}

func (r *MaintenanceRepository) FindByWorkOrder(ctx context.Context, workOrder int) (*entities.Maintenance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
			JOIN equipments e ON e.id = m.equipment_id
		WHERE m.work_order = $1 AND m.work_order <> 0
	`, maintenanceColumns, maintenanceTable)

	return scanMaintenance(r.storage.QueryRow(ctx, query, workOrder))
}

// FindInitials retorna as manutenções iniciais do equipamento, mais antigas primeiro.
func (r *MaintenanceRepository) FindInitials(ctx context.Context, equipmentID uint64) ([]entities.Maintenance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
			JOIN equipments e ON e.id = m.equipment_id
		WHERE m.equipment_id = $1 AND m.kind = $2
		ORDER BY m.id ASC
	`, maintenanceColumns, maintenanceTable)

	rows, err := r.storage.Query(ctx, query, equipmentID, constants.MaintenanceKindInitial)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar manutenções iniciais: %w", err)
	}
	defer rows.Close()

	var maintenances []entities.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		maintenances = append(maintenances, *m)
	}
	return maintenances, rows.Err()
}

// HasOpenOther informa se o equipamento tem alguma manutenção aberta além de excludeID.
// Use excludeID = 0 para considerar todas.
func (r *MaintenanceRepository) HasOpenOther(ctx context.Context, equipmentID uint64, excludeID uint64) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE equipment_id = $1 AND status = $2 AND id <> $3
		)
	`, maintenanceTable)

	var exists bool
	err := r.storage.QueryRow(ctx, query, equipmentID, constants.MaintenanceStatusOpen, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar manutenções abertas: %w", err)
	}
	return exists, nil
}

func (r *MaintenanceRepository) CreateMaintenanceInTx(ctx context.Context, tx pgx.Tx, maintenance entities.Maintenance) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (work_order, equipment_id, opened_date, closed_date, kind, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, maintenanceTable)

	var id uint64
	err := tx.QueryRow(ctx, query,
		maintenance.WorkOrder, maintenance.EquipmentID, maintenance.OpenedDate,
		maintenance.ClosedDate, maintenance.Kind, maintenance.Description, maintenance.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar manutenção: %w", err)
	}
	return id, nil
}

func (r *MaintenanceRepository) UpdateMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uint64, maintenance entities.Maintenance) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET work_order = $1, opened_date = $2, closed_date = $3, kind = $4,
			description = $5, status = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`, maintenanceTable)

	result, err := tx.Exec(ctx, query,
		maintenance.WorkOrder, maintenance.OpenedDate, maintenance.ClosedDate,
		maintenance.Kind, maintenance.Description, maintenance.Status, id,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar manutenção: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) DeleteMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, maintenanceTable)

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir manutenção: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDefaultInitialInTx remove o marcador de manutenção inicial padrão do
// equipamento (ordem de serviço 0 com a descrição gerada), preservando keepID.
// Usado quando uma manutenção inicial real passa a existir.
func (r *MaintenanceRepository) DeleteDefaultInitialInTx(ctx context.Context, tx pgx.Tx, equipmentID uint64, keepID uint64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE equipment_id = $1 AND kind = $2 AND work_order = 0
			AND description = $3 AND id <> $4
	`, maintenanceTable)

	_, err := tx.Exec(ctx, query,
		equipmentID, constants.MaintenanceKindInitial,
		constants.DefaultInitialMaintenanceDescription, keepID,
	)
	if err != nil {
		return fmt.Errorf("erro ao remover manutenção inicial padrão: %w", err)
	}
	return nil
}

// LatestClosedInTx retorna a manutenção concluída mais recente do equipamento,
// âncora do recálculo da próxima manutenção após exclusões.
func (r *MaintenanceRepository) LatestClosedInTx(ctx context.Context, tx pgx.Tx, equipmentID uint64) (*entities.Maintenance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
			JOIN equipments e ON e.id = m.equipment_id
		WHERE m.equipment_id = $1 AND m.status = $2
		ORDER BY m.closed_date DESC, m.id DESC
		LIMIT 1
	`, maintenanceColumns, maintenanceTable)

	return scanMaintenance(tx.QueryRow(ctx, query, equipmentID, constants.MaintenanceStatusClosed))
}
