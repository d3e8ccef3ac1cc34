package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/pkg/constants"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/types"
	"facilities-system/pkg/utils"
)

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeEquipmentRepo struct {
	equipments map[uint64]*entities.Equipment
	nextID     uint64
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{equipments: make(map[uint64]*entities.Equipment), nextID: 1}
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	var result []entities.Equipment
	for _, e := range f.equipments {
		result = append(result, *e)
	}
	return result, uint64(len(result)), nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := f.equipments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEquipmentRepo) FindByAssetTag(ctx context.Context, assetTag int) (*entities.Equipment, error) {
	for _, e := range f.equipments {
		if e.AssetTag == assetTag && assetTag != 0 {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEquipmentRepo) CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment entities.Equipment) (uint64, error) {
	id := f.nextID
	f.nextID++
	equipment.ID = id
	f.equipments[id] = &equipment
	return id, nil
}

func (f *fakeEquipmentRepo) UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64, equipment entities.Equipment) error {
	if _, ok := f.equipments[id]; !ok {
		return apperrors.ErrNotFound
	}
	equipment.ID = id
	f.equipments[id] = &equipment
	return nil
}

func (f *fakeEquipmentRepo) UpdateDerivedStateInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) error {
	stored, ok := f.equipments[equipment.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	stored.InUse = equipment.InUse
	stored.InMaintenance = equipment.InMaintenance
	stored.MaintenanceStart = equipment.MaintenanceStart
	stored.NextMaintenance = equipment.NextMaintenance
	return nil
}

type fakeMaintenanceRepo struct {
	maintenances map[uint64]*entities.Maintenance
	nextID       uint64
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{maintenances: make(map[uint64]*entities.Maintenance), nextID: 1}
}

func (f *fakeMaintenanceRepo) GetMaintenances(ctx context.Context, filter types.Filter) ([]entities.Maintenance, uint64, error) {
	var result []entities.Maintenance
	for _, m := range f.maintenances {
		result = append(result, *m)
	}
	return result, uint64(len(result)), nil
}

func (f *fakeMaintenanceRepo) FindMaintenance(ctx context.Context, id uint64) (*entities.Maintenance, error) {
	m, ok := f.maintenances[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *m
	copied.Equipment = &entities.Equipment{ID: m.EquipmentID}
	return &copied, nil
}

func (f *fakeMaintenanceRepo) FindByWorkOrder(ctx context.Context, workOrder int) (*entities.Maintenance, error) {
	for _, m := range f.maintenances {
		if m.WorkOrder == workOrder && workOrder != 0 {
			copied := *m
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeMaintenanceRepo) FindInitials(ctx context.Context, equipmentID uint64) ([]entities.Maintenance, error) {
	var result []entities.Maintenance
	for _, m := range f.maintenances {
		if m.EquipmentID == equipmentID && m.Kind == constants.MaintenanceKindInitial {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (f *fakeMaintenanceRepo) HasOpenOther(ctx context.Context, equipmentID uint64, excludeID uint64) (bool, error) {
	for _, m := range f.maintenances {
		if m.EquipmentID == equipmentID && m.Status == constants.MaintenanceStatusOpen && m.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMaintenanceRepo) CreateMaintenanceInTx(ctx context.Context, tx pgx.Tx, maintenance entities.Maintenance) (uint64, error) {
	id := f.nextID
	f.nextID++
	maintenance.ID = id
	f.maintenances[id] = &maintenance
	return id, nil
}

func (f *fakeMaintenanceRepo) UpdateMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uint64, maintenance entities.Maintenance) error {
	if _, ok := f.maintenances[id]; !ok {
		return apperrors.ErrNotFound
	}
	maintenance.ID = id
	f.maintenances[id] = &maintenance
	return nil
}

func (f *fakeMaintenanceRepo) DeleteMaintenanceInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	if _, ok := f.maintenances[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.maintenances, id)
	return nil
}

func (f *fakeMaintenanceRepo) DeleteDefaultInitialInTx(ctx context.Context, tx pgx.Tx, equipmentID uint64, keepID uint64) error {
	for id, m := range f.maintenances {
		if m.EquipmentID == equipmentID && m.ID != keepID &&
			m.Kind == constants.MaintenanceKindInitial && m.WorkOrder == 0 &&
			m.Description != nil && *m.Description == constants.DefaultInitialMaintenanceDescription {
			delete(f.maintenances, id)
		}
	}
	return nil
}

func (f *fakeMaintenanceRepo) LatestClosedInTx(ctx context.Context, tx pgx.Tx, equipmentID uint64) (*entities.Maintenance, error) {
	var latest *entities.Maintenance
	for _, m := range f.maintenances {
		if m.EquipmentID != equipmentID || m.Status != constants.MaintenanceStatusClosed {
			continue
		}
		if latest == nil || m.ClosedDate.After(*latest.ClosedDate) ||
			(m.ClosedDate.Equal(*latest.ClosedDate) && m.ID > latest.ID) {
			latest = m
		}
	}
	if latest == nil {
		return nil, apperrors.ErrNotFound
	}
	copied := *latest
	return &copied, nil
}

type engineFixture struct {
	service         MaintenanceServiceInterface
	equipmentRepo   *fakeEquipmentRepo
	maintenanceRepo *fakeMaintenanceRepo
}

func newEngineFixture() *engineFixture {
	equipmentRepo := newFakeEquipmentRepo()
	maintenanceRepo := newFakeMaintenanceRepo()
	service := NewMaintenanceService(maintenanceRepo, equipmentRepo, &fakeTxManager{}, zap.NewNop())
	return &engineFixture{
		service:         service,
		equipmentRepo:   equipmentRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

// seedEquipment cadastra um extintor em uso com intervalo de 6 meses.
func (f *engineFixture) seedEquipment() *entities.Equipment {
	equipment := &entities.Equipment{
		ID:                  1,
		Kind:                constants.EquipmentKindExtinguisher,
		Category:            constants.EquipmentCategoryFireFighting,
		AssetTag:            1001,
		RoomID:              1,
		MaintenanceInterval: 6,
		InUse:               true,
	}
	f.equipmentRepo.equipments[1] = equipment
	f.equipmentRepo.nextID = 2
	return equipment
}

func (f *engineFixture) seedDefaultInitial(t *testing.T, equipmentID uint64, closedOn string) uint64 {
	t.Helper()
	closed := mustDate(t, closedOn)
	desc := constants.DefaultInitialMaintenanceDescription
	id, err := f.maintenanceRepo.CreateMaintenanceInTx(context.Background(), nil, entities.Maintenance{
		WorkOrder:   0,
		EquipmentID: equipmentID,
		OpenedDate:  closed,
		ClosedDate:  &closed,
		Kind:        constants.MaintenanceKindInitial,
		Description: &desc,
		Status:      constants.MaintenanceStatusClosed,
	})
	require.NoError(t, err)

	equipment := f.equipmentRepo.equipments[equipmentID]
	next := utils.NextMaintenanceDate(closed, equipment.MaintenanceInterval)
	equipment.NextMaintenance = &next
	return id
}

func (f *engineFixture) seedClosed(t *testing.T, equipmentID uint64, workOrder int, kind, closedOn string) uint64 {
	t.Helper()
	closed := mustDate(t, closedOn)
	id, err := f.maintenanceRepo.CreateMaintenanceInTx(context.Background(), nil, entities.Maintenance{
		WorkOrder:   workOrder,
		EquipmentID: equipmentID,
		OpenedDate:  closed,
		ClosedDate:  &closed,
		Kind:        kind,
		Status:      constants.MaintenanceStatusClosed,
	})
	require.NoError(t, err)
	return id
}

func TestCreateClosedInitialAnchorsSchedule(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	placeholderID := f.seedDefaultInitial(t, equipment.ID, "2023-12-01")

	result, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   100,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-01-10",
		ClosedDate:  "2024-01-10",
		Kind:        constants.MaintenanceKindInitial,
		Status:      constants.MaintenanceStatusClosed,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Replacement)

	// Intervalo de 6 meses de 30 dias: 2024-01-10 + 180 dias.
	require.NotNil(t, equipmentNext(f, equipment.ID))
	assert.Equal(t, mustDate(t, "2024-07-08"), *equipmentNext(f, equipment.ID))

	// A manutenção inicial real substitui a inicial padrão.
	_, err = f.maintenanceRepo.FindMaintenance(context.Background(), placeholderID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func equipmentNext(f *engineFixture, id uint64) *time.Time {
	return f.equipmentRepo.equipments[id].NextMaintenance
}

func TestOpenMaintenanceSetsFlags(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")

	_, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   200,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-07-01",
		Kind:        constants.MaintenanceKindPreventive,
		Status:      constants.MaintenanceStatusOpen,
	})
	require.NoError(t, err)

	stored := f.equipmentRepo.equipments[equipment.ID]
	assert.True(t, stored.InMaintenance)
	require.NotNil(t, stored.MaintenanceStart)
	assert.Equal(t, mustDate(t, "2024-07-01"), *stored.MaintenanceStart)

	// Uma segunda manutenção aberta é rejeitada enquanto a primeira não conclui.
	_, err = f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   201,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-07-02",
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusOpen,
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentUnderMaintenance)
}

func TestClosingRecomputesNextMaintenance(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")

	created, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   300,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-07-01",
		Kind:        constants.MaintenanceKindPreventive,
		Status:      constants.MaintenanceStatusOpen,
	})
	require.NoError(t, err)

	status := constants.MaintenanceStatusClosed
	_, err = f.service.UpdateMaintenance(context.Background(), created.Maintenance.ID, dto.UpdateMaintenanceDTO{
		ClosedDate: null.StringFrom("2024-07-05"),
		Status:     &status,
	})
	require.NoError(t, err)

	stored := f.equipmentRepo.equipments[equipment.ID]
	assert.False(t, stored.InMaintenance)
	assert.Nil(t, stored.MaintenanceStart)
	require.NotNil(t, stored.NextMaintenance)
	assert.Equal(t, mustDate(t, "2025-01-01"), *stored.NextMaintenance)
}

func TestReplacementClosureRetiresEquipment(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")
	nextBefore := *equipmentNext(f, equipment.ID)

	result, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   400,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-06-01",
		ClosedDate:  "2024-06-01",
		Kind:        constants.MaintenanceKindReplacement,
		Status:      constants.MaintenanceStatusClosed,
	})
	require.NoError(t, err)

	stored := f.equipmentRepo.equipments[equipment.ID]
	assert.False(t, stored.InUse)
	assert.False(t, stored.InMaintenance)

	// Troca encerra o agendamento: nada é recalculado.
	require.NotNil(t, stored.NextMaintenance)
	assert.Equal(t, nextBefore, *stored.NextMaintenance)

	require.NotNil(t, result.Replacement)
	assert.Equal(t, equipment.ID, result.Replacement.ReplacedEquipmentID)
	assert.Equal(t, constants.EquipmentKindExtinguisher, result.Replacement.SuccessorKind)

	// Equipamento fora de uso não aceita novas manutenções.
	_, err = f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   401,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-06-02",
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusOpen,
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentOutOfUse)
}

func TestDeleteInitialMaintenanceRejected(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	initialID := f.seedDefaultInitial(t, equipment.ID, "2024-01-10")

	err := f.service.DeleteMaintenance(context.Background(), initialID)
	assert.ErrorIs(t, err, apperrors.ErrInitialMaintenanceImmutable)
}

func TestDeleteReanchorsOnRemainingClosed(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")
	correctiveID := f.seedClosed(t, equipment.ID, 500, constants.MaintenanceKindCorrective, "2024-03-01")

	err := f.service.DeleteMaintenance(context.Background(), correctiveID)
	require.NoError(t, err)

	// Volta a ancorar na inicial: 2024-01-10 + 180 dias.
	require.NotNil(t, equipmentNext(f, equipment.ID))
	assert.Equal(t, mustDate(t, "2024-07-08"), *equipmentNext(f, equipment.ID))
}

func TestDeleteWithoutRemainingAnchorFails(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()

	opened := mustDate(t, "2024-05-01")
	id, err := f.maintenanceRepo.CreateMaintenanceInTx(context.Background(), nil, entities.Maintenance{
		WorkOrder:   600,
		EquipmentID: equipment.ID,
		OpenedDate:  opened,
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusOpen,
	})
	require.NoError(t, err)

	err = f.service.DeleteMaintenance(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrScheduleAnchorMissing)
}

func TestDeleteOpenMaintenanceClearsFlags(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")

	created, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   700,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-07-01",
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusOpen,
	})
	require.NoError(t, err)
	require.True(t, f.equipmentRepo.equipments[equipment.ID].InMaintenance)

	err = f.service.DeleteMaintenance(context.Background(), created.Maintenance.ID)
	require.NoError(t, err)

	stored := f.equipmentRepo.equipments[equipment.ID]
	assert.False(t, stored.InMaintenance)
	assert.Nil(t, stored.MaintenanceStart)
	require.NotNil(t, stored.NextMaintenance)
	assert.Equal(t, mustDate(t, "2024-07-08"), *stored.NextMaintenance)
}

func TestDateBoundaries(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")

	today := utils.FormatDate(utils.Today())
	tomorrow := utils.FormatDate(utils.Today().AddDate(0, 0, 1))

	// Abrir hoje é permitido.
	_, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   800,
		EquipmentID: equipment.ID,
		OpenedDate:  today,
		Kind:        constants.MaintenanceKindPreventive,
		Status:      constants.MaintenanceStatusOpen,
	})
	require.NoError(t, err)

	// Abrir amanhã não.
	_, err = f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   801,
		EquipmentID: equipment.ID,
		OpenedDate:  tomorrow,
		Kind:        constants.MaintenanceKindPreventive,
		Status:      constants.MaintenanceStatusOpen,
	})
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	// Conclusão anterior à abertura.
	_, err = f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   802,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-07-05",
		ClosedDate:  "2024-07-01",
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusClosed,
	})
	assert.ErrorAs(t, err, &invalid)

	// Concluída sem data de conclusão.
	_, err = f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   803,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-07-01",
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusClosed,
	})
	assert.ErrorAs(t, err, &invalid)

	// Aberta com data de conclusão.
	_, err = f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   804,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-07-01",
		ClosedDate:  "2024-07-02",
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusOpen,
	})
	assert.ErrorAs(t, err, &invalid)
}

func TestRecloseIsIdempotent(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")
	correctiveID := f.seedClosed(t, equipment.ID, 900, constants.MaintenanceKindCorrective, "2024-03-01")

	desc := null.StringFrom("ajuste de descrição")
	_, err := f.service.UpdateMaintenance(context.Background(), correctiveID, dto.UpdateMaintenanceDTO{
		Description: desc,
	})
	require.NoError(t, err)

	first := *equipmentNext(f, equipment.ID)

	_, err = f.service.UpdateMaintenance(context.Background(), correctiveID, dto.UpdateMaintenanceDTO{
		Description: desc,
	})
	require.NoError(t, err)

	assert.Equal(t, first, *equipmentNext(f, equipment.ID))
	assert.Equal(t, mustDate(t, "2024-08-28"), first)
}

// O recálculo em criação/edição ancora no registro salvo, mesmo que exista
// uma conclusão mais recente; só a exclusão reconsulta a mais recente.
func TestSaveAnchorsOnSavedRecordNotLatest(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")
	f.seedClosed(t, equipment.ID, 1000, constants.MaintenanceKindCorrective, "2024-03-01")

	// Registro concluído antes da conclusão mais recente (2024-03-01).
	_, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   1001,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-02-15",
		ClosedDate:  "2024-02-15",
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusClosed,
	})
	require.NoError(t, err)

	// 2024-02-15 + 180 dias, não 2024-03-01 + 180.
	assert.Equal(t, mustDate(t, "2024-08-13"), *equipmentNext(f, equipment.ID))
}

func TestDuplicateWorkOrderRejected(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedDefaultInitial(t, equipment.ID, "2024-01-10")
	f.seedClosed(t, equipment.ID, 1100, constants.MaintenanceKindCorrective, "2024-03-01")

	_, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   1100,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-04-01",
		Kind:        constants.MaintenanceKindCorrective,
		Status:      constants.MaintenanceStatusOpen,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateWorkOrder)
}

func TestDuplicateInitialRejected(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()
	f.seedClosed(t, equipment.ID, 1200, constants.MaintenanceKindInitial, "2024-01-10")

	_, err := f.service.CreateMaintenance(context.Background(), dto.CreateMaintenanceDTO{
		WorkOrder:   1201,
		EquipmentID: equipment.ID,
		OpenedDate:  "2024-02-01",
		ClosedDate:  "2024-02-01",
		Kind:        constants.MaintenanceKindInitial,
		Status:      constants.MaintenanceStatusClosed,
	})
	assert.ErrorIs(t, err, apperrors.ErrInitialMaintenanceDuplicated)
}

func TestProvisionInitialCreatesAnchor(t *testing.T) {
	f := newEngineFixture()
	equipment := f.seedEquipment()

	err := f.service.ProvisionInitialInTx(context.Background(), nil, equipment)
	require.NoError(t, err)

	initials, err := f.maintenanceRepo.FindInitials(context.Background(), equipment.ID)
	require.NoError(t, err)
	require.Len(t, initials, 1)
	assert.Equal(t, 0, initials[0].WorkOrder)
	assert.Equal(t, constants.MaintenanceStatusClosed, initials[0].Status)
	require.NotNil(t, initials[0].Description)
	assert.Equal(t, constants.DefaultInitialMaintenanceDescription, *initials[0].Description)

	expected := utils.NextMaintenanceDate(utils.Today(), equipment.MaintenanceInterval)
	require.NotNil(t, equipmentNext(f, equipment.ID))
	assert.Equal(t, expected, *equipmentNext(f, equipment.ID))
}
