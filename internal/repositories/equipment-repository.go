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
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/types"
)

const equipmentTable = "equipments"

const equipmentColumns = `e.id, e.kind, e.category, e.asset_tag, e.room_id, e.manufacturer,
	e.maintenance_interval, e.next_maintenance, e.extra_info, e.in_use, e.in_maintenance,
	e.maintenance_start, e.classification, e.nominal_charge_kg, e.input_power_w,
	e.cooling_capacity_btu, e.supply_voltage_v, e.efficiency_rating, e.created_at, e.updated_at,
	r.id, r.name, r.kind`

// Campos aceitos em filter[...] e sort[...] nas listagens.
var equipmentFieldMap = map[string]string{
	"id":               "e.id",
	"kind":             "e.kind",
	"asset_tag":        "e.asset_tag",
	"room_id":          "e.room_id",
	"in_use":           "e.in_use",
	"in_maintenance":   "e.in_maintenance",
	"next_maintenance": "e.next_maintenance",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindByAssetTag(ctx context.Context, assetTag int) (*entities.Equipment, error)
	CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment entities.Equipment) (uint64, error)
	UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64, equipment entities.Equipment) error
	UpdateDerivedStateInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var r entities.Room

	err := row.Scan(
		&e.ID, &e.Kind, &e.Category, &e.AssetTag, &e.RoomID, &e.Manufacturer,
		&e.MaintenanceInterval, &e.NextMaintenance, &e.ExtraInfo, &e.InUse, &e.InMaintenance,
		&e.MaintenanceStart, &e.Classification, &e.NominalChargeKg, &e.InputPowerW,
		&e.CoolingCapacityBTU, &e.SupplyVoltageV, &e.EfficiencyRating, &e.CreatedAt, &e.UpdatedAt,
		&r.ID, &r.Name, &r.Kind,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear equipamento: %w", err)
	}

	e.Room = &r
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(equipmentColumns).
		From(equipmentTable + " e").
		Join("rooms r ON r.id = e.room_id")

	countQuery := psql.Select("COUNT(*)").
		From(equipmentTable + " e").
		Join("rooms r ON r.id = e.room_id")

	for field, value := range filter.Filter {
		column, ok := equipmentFieldMap[field]
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
			sq.ILike{"e.manufacturer": "%" + filter.Search + "%"},
			sq.Expr("CAST(e.asset_tag AS TEXT) LIKE ?", "%"+filter.Search+"%"),
		}
		base = base.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	orderBy := "e.id ASC"
	for field, direction := range filter.Sort {
		if column, ok := equipmentFieldMap[field]; ok {
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
		return nil, 0, fmt.Errorf("erro ao contar equipamentos: %w", err)
	}

	querySQL, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar equipamentos: %w", err)
	}
	defer rows.Close()

	var equipments []entities.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		equipments = append(equipments, *e)
	}
	return equipments, total, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s e
			JOIN rooms r ON r.id = e.room_id
		WHERE e.id = $1
	`, equipmentColumns, equipmentTable)

	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) FindByAssetTag(ctx context.Context, assetTag int) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s e
			JOIN rooms r ON r.id = e.room_id
		WHERE e.asset_tag = $1 AND e.asset_tag <> 0
	`, equipmentColumns, equipmentTable)

	return scanEquipment(r.storage.QueryRow(ctx, query, assetTag))
}

func (r *EquipmentRepository) CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment entities.Equipment) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (kind, category, asset_tag, room_id, manufacturer, maintenance_interval,
			next_maintenance, extra_info, in_use, in_maintenance, maintenance_start,
			classification, nominal_charge_kg, input_power_w, cooling_capacity_btu,
			supply_voltage_v, efficiency_rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`, equipmentTable)

	var id uint64
	err := tx.QueryRow(ctx, query,
		equipment.Kind, equipment.Category, equipment.AssetTag, equipment.RoomID,
		equipment.Manufacturer, equipment.MaintenanceInterval, equipment.NextMaintenance,
		equipment.ExtraInfo, equipment.InUse, equipment.InMaintenance, equipment.MaintenanceStart,
		equipment.Classification, equipment.NominalChargeKg, equipment.InputPowerW,
		equipment.CoolingCapacityBTU, equipment.SupplyVoltageV, equipment.EfficiencyRating,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar equipamento: %w", err)
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64, equipment entities.Equipment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET asset_tag = $1, room_id = $2, manufacturer = $3, maintenance_interval = $4,
			extra_info = $5, in_use = $6, classification = $7, nominal_charge_kg = $8,
			input_power_w = $9, cooling_capacity_btu = $10, supply_voltage_v = $11,
			efficiency_rating = $12, updated_at = CURRENT_TIMESTAMP
		WHERE id = $13
	`, equipmentTable)

	result, err := tx.Exec(ctx, query,
		equipment.AssetTag, equipment.RoomID, equipment.Manufacturer, equipment.MaintenanceInterval,
		equipment.ExtraInfo, equipment.InUse, equipment.Classification, equipment.NominalChargeKg,
		equipment.InputPowerW, equipment.CoolingCapacityBTU, equipment.SupplyVoltageV,
		equipment.EfficiencyRating, id,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar equipamento: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateDerivedStateInTx persiste apenas o estado derivado mantido pelo motor
// de ciclo de vida: em uso, em manutenção, início e próxima manutenção.
func (r *EquipmentRepository) UpdateDerivedStateInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET in_use = $1, in_maintenance = $2, maintenance_start = $3,
			next_maintenance = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`, equipmentTable)

	result, err := tx.Exec(ctx, query,
		equipment.InUse, equipment.InMaintenance, equipment.MaintenanceStart,
		equipment.NextMaintenance, equipment.ID,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar estado do equipamento: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
