package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"facilities-system/internal/entities"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/types"
)

const energyBillColumns = `b.id, b.consumer_unit_id, b.reading_date, b.off_peak_kwh, b.peak_kwh,
	b.off_peak_amount, b.peak_amount, b.total_amount, b.created_at, b.updated_at,
	u.id, u.name, u.client_number`

var energyBillFieldMap = map[string]string{
	"id":               "b.id",
	"consumer_unit_id": "b.consumer_unit_id",
	"reading_date":     "b.reading_date",
}

type EnergyBillRepositoryInterface interface {
	GetEnergyBills(ctx context.Context, filter types.Filter) ([]entities.EnergyBill, uint64, error)
	FindEnergyBill(ctx context.Context, id uint64) (*entities.EnergyBill, error)
	ListByPeriod(ctx context.Context, consumerUnitID uint64, from, to time.Time) ([]entities.EnergyBill, error)
	CreateEnergyBill(ctx context.Context, bill entities.EnergyBill) (uint64, error)
	UpdateEnergyBill(ctx context.Context, id uint64, bill entities.EnergyBill) error
	DeleteEnergyBill(ctx context.Context, id uint64) error
}

type EnergyBillRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEnergyBillRepository(storage *pgxpool.Pool, logger *zap.Logger) EnergyBillRepositoryInterface {
	return &EnergyBillRepository{storage: storage, logger: logger}
}

func scanEnergyBill(row pgx.Row) (*entities.EnergyBill, error) {
	var b entities.EnergyBill
	var u entities.ConsumerUnit

	err := row.Scan(
		&b.ID, &b.ConsumerUnitID, &b.ReadingDate, &b.OffPeakKWh, &b.PeakKWh,
		&b.OffPeakAmount, &b.PeakAmount, &b.TotalAmount, &b.CreatedAt, &b.UpdatedAt,
		&u.ID, &u.Name, &u.ClientNumber,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear conta de energia: %w", err)
	}

	b.ConsumerUnit = &u
	return &b, nil
}

func (r *EnergyBillRepository) GetEnergyBills(ctx context.Context, filter types.Filter) ([]entities.EnergyBill, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(energyBillColumns).
		From("energy_bills b").
		Join("consumer_units u ON u.id = b.consumer_unit_id")

	countQuery := psql.Select("COUNT(*)").
		From("energy_bills b").
		Join("consumer_units u ON u.id = b.consumer_unit_id")

	for field, value := range filter.Filter {
		raw := fmt.Sprintf("%v", value)
		switch field {
		case "from":
			base = base.Where(sq.GtOrEq{"b.reading_date": raw})
			countQuery = countQuery.Where(sq.GtOrEq{"b.reading_date": raw})
		case "to":
			base = base.Where(sq.LtOrEq{"b.reading_date": raw})
			countQuery = countQuery.Where(sq.LtOrEq{"b.reading_date": raw})
		default:
			column, ok := energyBillFieldMap[field]
			if !ok {
				continue
			}
			base = base.Where(sq.Eq{column: raw})
			countQuery = countQuery.Where(sq.Eq{column: raw})
		}
	}

	orderBy := "b.reading_date DESC, b.id DESC"
	for field, direction := range filter.Sort {
		if column, ok := energyBillFieldMap[field]; ok {
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
		return nil, 0, fmt.Errorf("erro ao contar contas de energia: %w", err)
	}

	querySQL, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar contas de energia: %w", err)
	}
	defer rows.Close()

	var bills []entities.EnergyBill
	for rows.Next() {
		b, err := scanEnergyBill(rows)
		if err != nil {
			return nil, 0, err
		}
		bills = append(bills, *b)
	}
	return bills, total, rows.Err()
}

func (r *EnergyBillRepository) FindEnergyBill(ctx context.Context, id uint64) (*entities.EnergyBill, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM energy_bills b
			JOIN consumer_units u ON u.id = b.consumer_unit_id
		WHERE b.id = $1
	`, energyBillColumns)

	return scanEnergyBill(r.storage.QueryRow(ctx, query, id))
}

// ListByPeriod retorna as contas do período, em ordem cronológica, para o
// relatório exportado. consumerUnitID = 0 traz todas as unidades.
func (r *EnergyBillRepository) ListByPeriod(ctx context.Context, consumerUnitID uint64, from, to time.Time) ([]entities.EnergyBill, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(energyBillColumns).
		From("energy_bills b").
		Join("consumer_units u ON u.id = b.consumer_unit_id").
		Where(sq.GtOrEq{"b.reading_date": from}).
		Where(sq.LtOrEq{"b.reading_date": to}).
		OrderBy("u.name ASC", "b.reading_date ASC")

	if consumerUnitID != 0 {
		query = query.Where(sq.Eq{"b.consumer_unit_id": consumerUnitID})
	}

	querySQL, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas do período: %w", err)
	}
	defer rows.Close()

	var bills []entities.EnergyBill
	for rows.Next() {
		b, err := scanEnergyBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, *b)
	}
	return bills, rows.Err()
}

func (r *EnergyBillRepository) CreateEnergyBill(ctx context.Context, bill entities.EnergyBill) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO energy_bills (consumer_unit_id, reading_date, off_peak_kwh, peak_kwh,
			off_peak_amount, peak_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, bill.ConsumerUnitID, bill.ReadingDate, bill.OffPeakKWh, bill.PeakKWh,
		bill.OffPeakAmount, bill.PeakAmount, bill.TotalAmount).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar conta de energia: %w", err)
	}
	return id, nil
}

func (r *EnergyBillRepository) UpdateEnergyBill(ctx context.Context, id uint64, bill entities.EnergyBill) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE energy_bills
		SET reading_date = $1, off_peak_kwh = $2, peak_kwh = $3, off_peak_amount = $4,
			peak_amount = $5, total_amount = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`, bill.ReadingDate, bill.OffPeakKWh, bill.PeakKWh, bill.OffPeakAmount,
		bill.PeakAmount, bill.TotalAmount, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar conta de energia: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EnergyBillRepository) DeleteEnergyBill(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM energy_bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir conta de energia: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
