package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
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

type fakeRoomRepo struct {
	rooms map[uint64]*entities.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[uint64]*entities.Room{
		1: {ID: 1, Name: "Sala 101", Kind: constants.RoomKindInternal, BlockID: 1},
	}}
}

func (f *fakeRoomRepo) GetRooms(ctx context.Context, filter types.Filter) ([]entities.Room, uint64, error) {
	var result []entities.Room
	for _, r := range f.rooms {
		result = append(result, *r)
	}
	return result, uint64(len(result)), nil
}

func (f *fakeRoomRepo) FindRoom(ctx context.Context, id uint64) (*entities.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRoomRepo) CreateRoom(ctx context.Context, room entities.Room) (uint64, error) {
	id := uint64(len(f.rooms) + 1)
	room.ID = id
	f.rooms[id] = &room
	return id, nil
}

func (f *fakeRoomRepo) UpdateRoom(ctx context.Context, id uint64, room entities.Room) error {
	if _, ok := f.rooms[id]; !ok {
		return apperrors.ErrNotFound
	}
	room.ID = id
	f.rooms[id] = &room
	return nil
}

func (f *fakeRoomRepo) DeleteRoom(ctx context.Context, id uint64) error {
	if _, ok := f.rooms[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

type equipmentFixture struct {
	service         EquipmentServiceInterface
	equipmentRepo   *fakeEquipmentRepo
	maintenanceRepo *fakeMaintenanceRepo
	roomRepo        *fakeRoomRepo
}

func newEquipmentFixture() *equipmentFixture {
	equipmentRepo := newFakeEquipmentRepo()
	maintenanceRepo := newFakeMaintenanceRepo()
	roomRepo := newFakeRoomRepo()
	txManager := &fakeTxManager{}
	maintenanceService := NewMaintenanceService(maintenanceRepo, equipmentRepo, txManager, zap.NewNop())
	service := NewEquipmentService(equipmentRepo, roomRepo, maintenanceService, txManager, zap.NewNop())
	return &equipmentFixture{
		service:         service,
		equipmentRepo:   equipmentRepo,
		maintenanceRepo: maintenanceRepo,
		roomRepo:        roomRepo,
	}
}

func TestCreateEquipmentWithDefaultInitial(t *testing.T) {
	f := newEquipmentFixture()

	result, err := f.service.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Kind:                     constants.EquipmentKindExtinguisher,
		AssetTag:                 2001,
		RoomID:                   1,
		MaintenanceInterval:      6,
		InitialMaintenanceChoice: "default",
		Classification:           null.StringFrom("ABC"),
		NominalChargeKg:          null.Float64From(6),
	})
	require.NoError(t, err)

	assert.True(t, result.Equipment.InUse)
	assert.False(t, result.PendingInitial)
	assert.Equal(t, constants.EquipmentCategoryFireFighting, result.Equipment.Category)
	assert.Equal(t, "ABC", result.Equipment.Classification)

	// Manutenção inicial padrão concluída hoje, ancorando a próxima.
	initials, err := f.maintenanceRepo.FindInitials(context.Background(), result.Equipment.ID)
	require.NoError(t, err)
	require.Len(t, initials, 1)

	expected := utils.NextMaintenanceDate(utils.Today(), 6)
	assert.Equal(t, utils.FormatDate(expected), result.Equipment.NextMaintenance)
}

func TestCreateEquipmentWithCustomInitialLeavesSchedulePending(t *testing.T) {
	f := newEquipmentFixture()

	result, err := f.service.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Kind:                     constants.EquipmentKindAirConditioner,
		AssetTag:                 2002,
		RoomID:                   1,
		MaintenanceInterval:      12,
		InitialMaintenanceChoice: "custom",
		InputPowerW:              null.IntFrom(1400),
		CoolingCapacityBTU:       null.IntFrom(12000),
	})
	require.NoError(t, err)

	assert.True(t, result.PendingInitial)
	assert.Empty(t, result.Equipment.NextMaintenance)
	assert.Equal(t, constants.EquipmentCategoryElectrical, result.Equipment.Category)

	initials, err := f.maintenanceRepo.FindInitials(context.Background(), result.Equipment.ID)
	require.NoError(t, err)
	assert.Empty(t, initials)
}

func TestCreateEquipmentDuplicateAssetTagRejected(t *testing.T) {
	f := newEquipmentFixture()

	payload := dto.CreateEquipmentDTO{
		Kind:                     constants.EquipmentKindExtinguisher,
		AssetTag:                 2003,
		RoomID:                   1,
		MaintenanceInterval:      6,
		InitialMaintenanceChoice: "default",
	}
	_, err := f.service.CreateEquipment(context.Background(), payload)
	require.NoError(t, err)

	_, err = f.service.CreateEquipment(context.Background(), payload)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateAssetTag)
}

func TestCreateEquipmentWithoutAssetTagAllowedRepeatedly(t *testing.T) {
	f := newEquipmentFixture()

	payload := dto.CreateEquipmentDTO{
		Kind:                     constants.EquipmentKindExtinguisher,
		AssetTag:                 0,
		RoomID:                   1,
		MaintenanceInterval:      6,
		InitialMaintenanceChoice: "default",
	}
	_, err := f.service.CreateEquipment(context.Background(), payload)
	require.NoError(t, err)

	// Tombamento 0 significa "sem tombamento" e não entra na unicidade.
	_, err = f.service.CreateEquipment(context.Background(), payload)
	require.NoError(t, err)
}

func TestCreateEquipmentUnknownRoomRejected(t *testing.T) {
	f := newEquipmentFixture()

	_, err := f.service.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Kind:                     constants.EquipmentKindExtinguisher,
		AssetTag:                 2004,
		RoomID:                   99,
		MaintenanceInterval:      6,
		InitialMaintenanceChoice: "default",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateEquipmentRetirement(t *testing.T) {
	f := newEquipmentFixture()

	created, err := f.service.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Kind:                     constants.EquipmentKindExtinguisher,
		AssetTag:                 2005,
		RoomID:                   1,
		MaintenanceInterval:      6,
		InitialMaintenanceChoice: "default",
	})
	require.NoError(t, err)

	inUse := false
	updated, err := f.service.UpdateEquipment(context.Background(), created.Equipment.ID, dto.UpdateEquipmentDTO{
		InUse: &inUse,
	})
	require.NoError(t, err)
	assert.False(t, updated.InUse)
}
