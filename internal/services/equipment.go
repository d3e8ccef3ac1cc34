package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/internal/repositories"
	"facilities-system/pkg/constants"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/types"
	"facilities-system/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.CreateEquipmentResultDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepo      repositories.EquipmentRepositoryInterface
	roomRepo           repositories.RoomRepositoryInterface
	maintenanceService MaintenanceServiceInterface
	txManager          repositories.TxManagerInterface
	logger             *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	roomRepo repositories.RoomRepositoryInterface,
	maintenanceService MaintenanceServiceInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo:      equipmentRepo,
		roomRepo:           roomRepo,
		maintenanceService: maintenanceService,
		txManager:          txManager,
		logger:             logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	equipments, total, err := s.equipmentRepo.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.EquipmentDTO, 0, len(equipments))
	for _, e := range equipments {
		dtos = append(dtos, mapEquipment(e))
	}
	return dtos, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapEquipment(*e)
	return &result, nil
}

func (s *EquipmentService) checkAssetTagUnique(ctx context.Context, assetTag int, selfID uint64) error {
	if assetTag == 0 {
		return nil
	}
	existing, err := s.equipmentRepo.FindByAssetTag(ctx, assetTag)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return apperrors.ErrDuplicateAssetTag
	}
	return nil
}

// CreateEquipment cadastra o equipamento já em uso. Com provisionamento
// "default", a manutenção inicial padrão é criada na mesma transação; com
// "custom", o cadastro fica pendente no fluxo normal de manutenções.
func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.CreateEquipmentResultDTO, error) {
	if _, err := s.roomRepo.FindRoom(ctx, payload.RoomID); err != nil {
		return nil, err
	}
	if err := s.checkAssetTagUnique(ctx, payload.AssetTag, 0); err != nil {
		return nil, err
	}

	equipment := entities.Equipment{
		Kind:                payload.Kind,
		Category:            constants.EquipmentCategoryFor(payload.Kind),
		AssetTag:            payload.AssetTag,
		RoomID:              payload.RoomID,
		MaintenanceInterval: payload.MaintenanceInterval,
		InUse:               true,
	}
	if payload.Manufacturer.Valid && payload.Manufacturer.String != "" {
		equipment.Manufacturer = utils.StringPtr(payload.Manufacturer.String)
	}
	if payload.ExtraInfo.Valid && payload.ExtraInfo.String != "" {
		equipment.ExtraInfo = utils.StringPtr(payload.ExtraInfo.String)
	}

	switch payload.Kind {
	case constants.EquipmentKindExtinguisher:
		if payload.Classification.Valid && payload.Classification.String != "" {
			equipment.Classification = utils.StringPtr(payload.Classification.String)
		}
		if payload.NominalChargeKg.Valid {
			v := payload.NominalChargeKg.Float64
			equipment.NominalChargeKg = &v
		}
	case constants.EquipmentKindAirConditioner:
		if payload.InputPowerW.Valid {
			v := int(payload.InputPowerW.Int)
			equipment.InputPowerW = &v
		}
		if payload.CoolingCapacityBTU.Valid {
			v := int(payload.CoolingCapacityBTU.Int)
			equipment.CoolingCapacityBTU = &v
		}
		if payload.SupplyVoltageV.Valid {
			v := int(payload.SupplyVoltageV.Int)
			equipment.SupplyVoltageV = &v
		}
		if payload.EfficiencyRating.Valid && payload.EfficiencyRating.String != "" {
			equipment.EfficiencyRating = utils.StringPtr(payload.EfficiencyRating.String)
		}
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.equipmentRepo.CreateEquipmentInTx(ctx, tx, equipment)
		if err != nil {
			return err
		}
		equipment.ID = id

		if payload.InitialMaintenanceChoice == "default" {
			return s.maintenanceService.ProvisionInitialInTx(ctx, tx, &equipment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipamento criado",
		zap.Uint64("id", equipment.ID),
		zap.String("kind", equipment.Kind),
		zap.Int("asset_tag", equipment.AssetTag),
		zap.String("initial_maintenance", payload.InitialMaintenanceChoice))

	saved, err := s.equipmentRepo.FindEquipment(ctx, equipment.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CreateEquipmentResultDTO{
		Equipment:          mapEquipment(*saved),
		InitialMaintenance: payload.InitialMaintenanceChoice,
		PendingInitial:     payload.InitialMaintenanceChoice == "custom",
	}, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	existing, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if payload.AssetTag != nil {
		merged.AssetTag = *payload.AssetTag
	}
	if payload.RoomID != nil {
		if _, err := s.roomRepo.FindRoom(ctx, *payload.RoomID); err != nil {
			return nil, err
		}
		merged.RoomID = *payload.RoomID
	}
	if payload.MaintenanceInterval != nil {
		merged.MaintenanceInterval = *payload.MaintenanceInterval
	}
	if payload.InUse != nil {
		merged.InUse = *payload.InUse
	}
	if payload.Manufacturer.Valid {
		if payload.Manufacturer.String == "" {
			merged.Manufacturer = nil
		} else {
			merged.Manufacturer = utils.StringPtr(payload.Manufacturer.String)
		}
	}
	if payload.ExtraInfo.Valid {
		if payload.ExtraInfo.String == "" {
			merged.ExtraInfo = nil
		} else {
			merged.ExtraInfo = utils.StringPtr(payload.ExtraInfo.String)
		}
	}

	switch merged.Kind {
	case constants.EquipmentKindExtinguisher:
		if payload.Classification.Valid {
			if payload.Classification.String == "" {
				merged.Classification = nil
			} else {
				merged.Classification = utils.StringPtr(payload.Classification.String)
			}
		}
		if payload.NominalChargeKg.Valid {
			v := payload.NominalChargeKg.Float64
			merged.NominalChargeKg = &v
		}
	case constants.EquipmentKindAirConditioner:
		if payload.InputPowerW.Valid {
			v := int(payload.InputPowerW.Int)
			merged.InputPowerW = &v
		}
		if payload.CoolingCapacityBTU.Valid {
			v := int(payload.CoolingCapacityBTU.Int)
			merged.CoolingCapacityBTU = &v
		}
		if payload.SupplyVoltageV.Valid {
			v := int(payload.SupplyVoltageV.Int)
			merged.SupplyVoltageV = &v
		}
		if payload.EfficiencyRating.Valid {
			if payload.EfficiencyRating.String == "" {
				merged.EfficiencyRating = nil
			} else {
				merged.EfficiencyRating = utils.StringPtr(payload.EfficiencyRating.String)
			}
		}
	}

	if err := s.checkAssetTagUnique(ctx, merged.AssetTag, id); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.equipmentRepo.UpdateEquipmentInTx(ctx, tx, id, merged)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipamento atualizado", zap.Uint64("id", id))

	saved, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapEquipment(*saved)
	return &result, nil
}
