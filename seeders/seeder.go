package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"facilities-system/pkg/constants"
	"facilities-system/pkg/utils"
)

// Run popula o banco com dados de demonstração. As inserções são idempotentes:
// rodar o seeder mais de uma vez não duplica registros.
func Run(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	steps := []struct {
		name string
		fn   func(context.Context, *pgxpool.Pool) error
	}{
		{"localizações", seedLocations},
		{"equipamentos", seedEquipments},
		{"consumo", seedConsumption},
	}

	for _, step := range steps {
		if err := step.fn(ctx, pool); err != nil {
			return fmt.Errorf("seed de %s: %w", step.name, err)
		}
		logger.Info("seed aplicado", zap.String("area", step.name))
	}
	return nil
}

func seedLocations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO campuses (id, name) VALUES
			(1, 'Campus I'),
			(2, 'Campus II')
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO centers (id, name, campus_id) VALUES
			(1, 'Centro de Informática', 1),
			(2, 'Centro de Tecnologia', 1)
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO departments (id, name, center_id) VALUES
			(1, 'Departamento de Sistemas de Computação', 1),
			(2, 'Departamento de Engenharia Elétrica', 2)
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO blocks (id, name, department_id) VALUES
			(1, 'Bloco A', 1),
			(2, 'Bloco B', 2)
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO rooms (id, name, kind, block_id, location_detail, floor, area_m2, occupancy) VALUES
			(1, 'Sala 101', 'INTERNO', 1, NULL, 'Térreo', 42.5, 30),
			(2, 'Laboratório LMI', 'INTERNO', 1, 'Ao lado da copa', '1º andar', 65.0, 20),
			(3, 'Pátio central', 'EXTERNO', 1, 'Entre os blocos A e B', NULL, NULL, NULL),
			(4, 'Subestação SE-01', 'SUBESTACAO_ABRIGADA', 2, NULL, NULL, NULL, NULL)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}
	return resetSequences(ctx, pool, "campuses", "centers", "departments", "blocks", "rooms")
}

func seedEquipments(ctx context.Context, pool *pgxpool.Pool) error {
	today := utils.Today()
	next := utils.NextMaintenanceDate(today, 6)
	nextAC := utils.NextMaintenanceDate(today, 12)

	_, err := pool.Exec(ctx, `
		INSERT INTO equipments (id, kind, category, asset_tag, room_id, manufacturer,
			maintenance_interval, next_maintenance, in_use, in_maintenance,
			classification, nominal_charge_kg, input_power_w, cooling_capacity_btu,
			supply_voltage_v, efficiency_rating) VALUES
			(1, 'EXTINTOR', 'COMBATE_INCENDIO', 1001, 1, 'Extang', 6, $1, TRUE, FALSE,
				'ABC', 6.0, NULL, NULL, NULL, NULL),
			(2, 'EXTINTOR', 'COMBATE_INCENDIO', 1002, 3, 'Extang', 6, $1, TRUE, FALSE,
				'BC', 4.0, NULL, NULL, NULL, NULL),
			(3, 'CONDICIONADOR_AR', 'EQUIPAMENTO_ELETRICO', 2001, 2, 'Frigelar', 12, $2, TRUE, FALSE,
				NULL, NULL, 1400, 12000, 220, 'A')
		ON CONFLICT (id) DO NOTHING;
	`, next, nextAC)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO maintenances (id, work_order, equipment_id, opened_date, closed_date,
			kind, description, status) VALUES
			(1, 0, 1, $1, $1, $2, $3, $4),
			(2, 0, 2, $1, $1, $2, $3, $4),
			(3, 0, 3, $1, $1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING;
	`, today, constants.MaintenanceKindInitial,
		constants.DefaultInitialMaintenanceDescription, constants.MaintenanceStatusClosed)
	if err != nil {
		return err
	}
	return resetSequences(ctx, pool, "equipments", "maintenances")
}

func seedConsumption(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO responsible_units (id, name) VALUES
			(1, 'Prefeitura Universitária')
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO consumer_units (id, name, responsible_unit_id, client_number, address,
			tariff_modality, meter_number) VALUES
			(1, 'UC Campus I', 1, 7001234, 'Av. Universitária, s/n', 'Horo-sazonal verde', 556677),
			(2, 'UC Campus II', 1, 7005678, NULL, 'Convencional', 889900)
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO energy_bills (id, consumer_unit_id, reading_date, off_peak_kwh, peak_kwh,
			off_peak_amount, peak_amount, total_amount) VALUES
			(1, 1, '2026-06-10', 48000, 9000, 28800.00, 13500.00, 42300.00),
			(2, 1, '2026-07-10', 51000, 9500, 30600.00, 14250.00, 44850.00),
			(3, 2, '2026-07-12', 12000, 2100, 7200.00, 3150.00, 10350.00)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}
	return resetSequences(ctx, pool, "responsible_units", "consumer_units", "energy_bills")
}

// resetSequences realinha as sequências após inserções com id explícito.
func resetSequences(ctx context.Context, pool *pgxpool.Pool, tables ...string) error {
	for _, table := range tables {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))`,
			table, table)
		if _, err := pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
