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

const consumerUnitColumns = `u.id, u.name, u.responsible_unit_id, u.client_number, u.address,
	u.tariff_modality, u.meter_number, u.created_at, u.updated_at, r.id, r.name`

type ConsumerUnitRepositoryInterface interface {
	GetConsumerUnits(ctx context.Context, filter types.Filter) ([]entities.ConsumerUnit, uint64, error)
	FindConsumerUnit(ctx context.Context, id uint64) (*entities.ConsumerUnit, error)
	FindByClientNumber(ctx context.Context, clientNumber int) (*entities.ConsumerUnit, error)
	FindByMeterNumber(ctx context.Context, meterNumber int) (*entities.ConsumerUnit, error)
	CreateConsumerUnit(ctx context.Context, unit entities.ConsumerUnit) (uint64, error)
	UpdateConsumerUnit(ctx context.Context, id uint64, unit entities.ConsumerUnit) error
	DeleteConsumerUnit(ctx context.Context, id uint64) error
}

type ConsumerUnitRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewConsumerUnitRepository(storage *pgxpool.Pool, logger *zap.Logger) ConsumerUnitRepositoryInterface {
	return &ConsumerUnitRepository{storage: storage, logger: logger}
}

func scanConsumerUnit(row pgx.Row) (*entities.ConsumerUnit, error) {
	var u entities.ConsumerUnit
	var r entities.ResponsibleUnit

	err := row.Scan(
		&u.ID, &u.Name, &u.ResponsibleUnitID, &u.ClientNumber, &u.Address,
		&u.TariffModality, &u.MeterNumber, &u.CreatedAt, &u.UpdatedAt,
		&r.ID, &r.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear unidade consumidora: %w", err)
	}

	u.ResponsibleUnit = &r
	return &u, nil
}

func (r *ConsumerUnitRepository) GetConsumerUnits(ctx context.Context, filter types.Filter) ([]entities.ConsumerUnit, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM consumer_units`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar unidades consumidoras: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM consumer_units u
			JOIN responsible_units r ON r.id = u.responsible_unit_id
		ORDER BY u.name ASC
		LIMIT $1 OFFSET $2
	`, consumerUnitColumns)

	rows, err := r.storage.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar unidades consumidoras: %w", err)
	}
	defer rows.Close()

	var units []entities.ConsumerUnit
	for rows.Next() {
		u, err := scanConsumerUnit(rows)
		if err != nil {
			return nil, 0, err
		}
		units = append(units, *u)
	}
	return units, total, rows.Err()
}

func (r *ConsumerUnitRepository) FindConsumerUnit(ctx context.Context, id uint64) (*entities.ConsumerUnit, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM consumer_units u
			JOIN responsible_units r ON r.id = u.responsible_unit_id
		WHERE u.id = $1
	`, consumerUnitColumns)

	return scanConsumerUnit(r.storage.QueryRow(ctx, query, id))
}

func (r *ConsumerUnitRepository) FindByClientNumber(ctx context.Context, clientNumber int) (*entities.ConsumerUnit, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM consumer_units u
			JOIN responsible_units r ON r.id = u.responsible_unit_id
		WHERE u.client_number = $1
	`, consumerUnitColumns)

	return scanConsumerUnit(r.storage.QueryRow(ctx, query, clientNumber))
}

func (r *ConsumerUnitRepository) FindByMeterNumber(ctx context.Context, meterNumber int) (*entities.ConsumerUnit, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM consumer_units u
			JOIN responsible_units r ON r.id = u.responsible_unit_id
		WHERE u.meter_number = $1
	`, consumerUnitColumns)

	return scanConsumerUnit(r.storage.QueryRow(ctx, query, meterNumber))
}

func (r *ConsumerUnitRepository) CreateConsumerUnit(ctx context.Context, unit entities.ConsumerUnit) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO consumer_units (name, responsible_unit_id, client_number, address, tariff_modality, meter_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, unit.Name, unit.ResponsibleUnitID, unit.ClientNumber, unit.Address,
		unit.TariffModality, unit.MeterNumber).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar unidade consumidora: %w", err)
	}
	return id, nil
}

func (r *ConsumerUnitRepository) UpdateConsumerUnit(ctx context.Context, id uint64, unit entities.ConsumerUnit) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE consumer_units
		SET name = $1, responsible_unit_id = $2, client_number = $3, address = $4,
			tariff_modality = $5, meter_number = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`, unit.Name, unit.ResponsibleUnitID, unit.ClientNumber, unit.Address,
		unit.TariffModality, unit.MeterNumber, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar unidade consumidora: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ConsumerUnitRepository) DeleteConsumerUnit(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM consumer_units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir unidade consumidora: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
