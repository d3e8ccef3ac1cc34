package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"facilities-system/internal/entities"
	"facilities-system/pkg/constants"
)

type DashboardRepositoryInterface interface {
	GetSummary(ctx context.Context) (*entities.DashboardSummary, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) GetSummary(ctx context.Context) (*entities.DashboardSummary, error) {
	var s entities.DashboardSummary

	query := `
		SELECT
			(SELECT COUNT(*) FROM equipments WHERE in_use),
			(SELECT COUNT(*) FROM equipments WHERE NOT in_use),
			(SELECT COUNT(*) FROM equipments WHERE in_maintenance),
			(SELECT COUNT(*) FROM maintenances WHERE status = $1),
			(SELECT COUNT(*) FROM equipments WHERE in_use AND next_maintenance < CURRENT_DATE),
			(SELECT COUNT(*) FROM consumer_units)
	`

	err := r.storage.QueryRow(ctx, query, constants.MaintenanceStatusOpen).Scan(
		&s.EquipmentsInUse,
		&s.EquipmentsRetired,
		&s.EquipmentsMaintenance,
		&s.MaintenancesOpen,
		&s.PreventivesOverdue,
		&s.ConsumerUnits,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar resumo do painel: %w", err)
	}
	return &s, nil
}
