package services

import (
	"context"
	"errors"
	"time"

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

type MaintenanceServiceInterface interface {
	GetMaintenances(ctx context.Context, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error)
	FindMaintenance(ctx context.Context, id uint64) (*dto.MaintenanceDTO, error)
	CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*dto.MaintenanceSaveResultDTO, error)
	UpdateMaintenance(ctx context.Context, id uint64, payload dto.UpdateMaintenanceDTO) (*dto.MaintenanceSaveResultDTO, error)
	DeleteMaintenance(ctx context.Context, id uint64) error
	ProvisionInitialInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) error
}

// MaintenanceService mantém o histórico de manutenções e o estado derivado
// dos equipamentos (em manutenção, início, próxima manutenção). Toda mutação
// roda em transação: validações primeiro, escrita e reconciliação depois.
type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	txManager       repositories.TxManagerInterface
	logger          *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (s *MaintenanceService) GetMaintenances(ctx context.Context, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error) {
	maintenances, total, err := s.maintenanceRepo.GetMaintenances(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.MaintenanceDTO, 0, len(maintenances))
	for _, m := range maintenances {
		dtos = append(dtos, mapMaintenance(m))
	}
	return dtos, total, nil
}

func (s *MaintenanceService) FindMaintenance(ctx context.Context, id uint64) (*dto.MaintenanceDTO, error) {
	m, err := s.maintenanceRepo.FindMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapMaintenance(*m)
	return &result, nil
}

// validateLifecycleDates aplica as regras cruzadas de data e status:
// nada no futuro, conclusão exige data e a data de conclusão não pode
// anteceder a abertura.
func validateLifecycleDates(opened time.Time, closed *time.Time, status string) error {
	today := utils.Today()

	if opened.After(today) {
		return apperrors.NewInvalidInputError("data de abertura não pode estar no futuro")
	}
	switch status {
	case constants.MaintenanceStatusClosed:
		if closed == nil {
			return apperrors.NewInvalidInputError("manutenção concluída exige data de conclusão")
		}
		if closed.After(today) {
			return apperrors.NewInvalidInputError("data de conclusão não pode estar no futuro")
		}
		if closed.Before(opened) {
			return apperrors.NewInvalidInputError("data de conclusão não pode anteceder a abertura")
		}
	case constants.MaintenanceStatusOpen:
		if closed != nil {
			return apperrors.NewInvalidInputError("manutenção aberta não pode ter data de conclusão")
		}
	}
	return nil
}

func isDefaultInitial(m entities.Maintenance) bool {
	return m.Kind == constants.MaintenanceKindInitial &&
		m.WorkOrder == 0 &&
		m.Description != nil &&
		*m.Description == constants.DefaultInitialMaintenanceDescription
}

func (s *MaintenanceService) checkWorkOrderUnique(ctx context.Context, workOrder int, selfID uint64) error {
	if workOrder == 0 {
		return nil
	}
	existing, err := s.maintenanceRepo.FindByWorkOrder(ctx, workOrder)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return apperrors.ErrDuplicateWorkOrder
	}
	return nil
}

func (s *MaintenanceService) checkInitialUnique(ctx context.Context, equipmentID uint64, selfID uint64) error {
	initials, err := s.maintenanceRepo.FindInitials(ctx, equipmentID)
	if err != nil {
		return err
	}
	for _, initial := range initials {
		if initial.ID == selfID || isDefaultInitial(initial) {
			continue
		}
		return apperrors.ErrInitialMaintenanceDuplicated
	}
	return nil
}

// applyTransition reconcilia o estado derivado do equipamento após salvar a
// manutenção. A âncora do recálculo é o próprio registro salvo.
func (s *MaintenanceService) applyTransition(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment, m *entities.Maintenance) (*dto.ReplacementDirectiveDTO, error) {
	var replacement *dto.ReplacementDirectiveDTO

	switch m.Status {
	case constants.MaintenanceStatusClosed:
		equipment.InMaintenance = false
		equipment.MaintenanceStart = nil

		if m.Kind == constants.MaintenanceKindReplacement {
			// Troca concluída tira o equipamento de uso e encerra o
			// agendamento; o sucessor é criado pelo chamador.
			equipment.InUse = false
			replacement = &dto.ReplacementDirectiveDTO{
				ReplacedEquipmentID: equipment.ID,
				SuccessorKind:       equipment.Kind,
			}
		} else {
			if m.Kind == constants.MaintenanceKindInitial {
				if err := s.maintenanceRepo.DeleteDefaultInitialInTx(ctx, tx, equipment.ID, m.ID); err != nil {
					return nil, err
				}
			}
			next := utils.NextMaintenanceDate(*m.ClosedDate, equipment.MaintenanceInterval)
			equipment.NextMaintenance = &next
		}

	case constants.MaintenanceStatusOpen:
		equipment.InMaintenance = true
		opened := m.OpenedDate
		equipment.MaintenanceStart = &opened
	}

	if err := s.equipmentRepo.UpdateDerivedStateInTx(ctx, tx, equipment); err != nil {
		return nil, err
	}
	return replacement, nil
}

func (s *MaintenanceService) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*dto.MaintenanceSaveResultDTO, error) {
	opened, err := utils.ParseDate(payload.OpenedDate)
	if err != nil {
		return nil, err
	}
	var closed *time.Time
	if payload.ClosedDate != "" {
		t, err := utils.ParseDate(payload.ClosedDate)
		if err != nil {
			return nil, err
		}
		closed = &t
	}
	if err := validateLifecycleDates(opened, closed, payload.Status); err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !equipment.InUse {
		return nil, apperrors.ErrEquipmentOutOfUse
	}
	if err := s.checkWorkOrderUnique(ctx, payload.WorkOrder, 0); err != nil {
		return nil, err
	}
	if payload.Kind == constants.MaintenanceKindInitial {
		if err := s.checkInitialUnique(ctx, equipment.ID, 0); err != nil {
			return nil, err
		}
	}
	if payload.Status == constants.MaintenanceStatusOpen {
		hasOpen, err := s.maintenanceRepo.HasOpenOther(ctx, equipment.ID, 0)
		if err != nil {
			return nil, err
		}
		if hasOpen {
			return nil, apperrors.ErrEquipmentUnderMaintenance
		}
	}

	maintenance := entities.Maintenance{
		WorkOrder:   payload.WorkOrder,
		EquipmentID: equipment.ID,
		OpenedDate:  opened,
		ClosedDate:  closed,
		Kind:        payload.Kind,
		Status:      payload.Status,
	}
	if payload.Description.Valid && payload.Description.String != "" {
		maintenance.Description = utils.StringPtr(payload.Description.String)
	}

	var replacement *dto.ReplacementDirectiveDTO
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.maintenanceRepo.CreateMaintenanceInTx(ctx, tx, maintenance)
		if err != nil {
			return err
		}
		maintenance.ID = id

		replacement, err = s.applyTransition(ctx, tx, equipment, &maintenance)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("manutenção criada",
		zap.Uint64("id", maintenance.ID),
		zap.Uint64("equipment_id", equipment.ID),
		zap.String("kind", maintenance.Kind),
		zap.String("status", maintenance.Status))

	saved, err := s.maintenanceRepo.FindMaintenance(ctx, maintenance.ID)
	if err != nil {
		return nil, err
	}
	return &dto.MaintenanceSaveResultDTO{
		Maintenance: mapMaintenance(*saved),
		Replacement: replacement,
	}, nil
}

func (s *MaintenanceService) UpdateMaintenance(ctx context.Context, id uint64, payload dto.UpdateMaintenanceDTO) (*dto.MaintenanceSaveResultDTO, error) {
	existing, err := s.maintenanceRepo.FindMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if payload.WorkOrder != nil {
		merged.WorkOrder = *payload.WorkOrder
	}
	if payload.OpenedDate != nil {
		opened, err := utils.ParseDate(*payload.OpenedDate)
		if err != nil {
			return nil, err
		}
		merged.OpenedDate = opened
	}
	if payload.ClosedDate.Valid {
		if payload.ClosedDate.String == "" {
			merged.ClosedDate = nil
		} else {
			closed, err := utils.ParseDate(payload.ClosedDate.String)
			if err != nil {
				return nil, err
			}
			merged.ClosedDate = &closed
		}
	}
	if payload.Kind != nil {
		merged.Kind = *payload.Kind
	}
	if payload.Status != nil {
		merged.Status = *payload.Status
	}
	if payload.Description.Valid {
		if payload.Description.String == "" {
			merged.Description = nil
		} else {
			merged.Description = utils.StringPtr(payload.Description.String)
		}
	}

	if err := validateLifecycleDates(merged.OpenedDate, merged.ClosedDate, merged.Status); err != nil {
		return nil, err
	}
	if err := s.checkWorkOrderUnique(ctx, merged.WorkOrder, id); err != nil {
		return nil, err
	}
	if merged.Kind == constants.MaintenanceKindInitial {
		if err := s.checkInitialUnique(ctx, merged.EquipmentID, id); err != nil {
			return nil, err
		}
	}
	if merged.Status == constants.MaintenanceStatusOpen {
		hasOpen, err := s.maintenanceRepo.HasOpenOther(ctx, merged.EquipmentID, id)
		if err != nil {
			return nil, err
		}
		if hasOpen {
			return nil, apperrors.ErrEquipmentUnderMaintenance
		}
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, merged.EquipmentID)
	if err != nil {
		return nil, err
	}

	var replacement *dto.ReplacementDirectiveDTO
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.maintenanceRepo.UpdateMaintenanceInTx(ctx, tx, id, merged); err != nil {
			return err
		}
		replacement, err = s.applyTransition(ctx, tx, equipment, &merged)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("manutenção atualizada",
		zap.Uint64("id", id),
		zap.Uint64("equipment_id", merged.EquipmentID),
		zap.String("status", merged.Status))

	saved, err := s.maintenanceRepo.FindMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.MaintenanceSaveResultDTO{
		Maintenance: mapMaintenance(*saved),
		Replacement: replacement,
	}, nil
}

// DeleteMaintenance exclui uma manutenção e reancora a próxima manutenção na
// conclusão mais recente restante. A manutenção inicial nunca é excluída: ela
// é a âncora de último recurso do agendamento.
func (s *MaintenanceService) DeleteMaintenance(ctx context.Context, id uint64) error {
	existing, err := s.maintenanceRepo.FindMaintenance(ctx, id)
	if err != nil {
		return err
	}
	if existing.Kind == constants.MaintenanceKindInitial {
		return apperrors.ErrInitialMaintenanceImmutable
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, existing.EquipmentID)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.maintenanceRepo.DeleteMaintenanceInTx(ctx, tx, id); err != nil {
			return err
		}

		latest, err := s.maintenanceRepo.LatestClosedInTx(ctx, tx, equipment.ID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrScheduleAnchorMissing
		}
		if err != nil {
			return err
		}

		next := utils.NextMaintenanceDate(*latest.ClosedDate, equipment.MaintenanceInterval)
		equipment.NextMaintenance = &next

		if existing.Status == constants.MaintenanceStatusOpen {
			equipment.InMaintenance = false
			equipment.MaintenanceStart = nil
		}

		return s.equipmentRepo.UpdateDerivedStateInTx(ctx, tx, equipment)
	})
	if err != nil {
		return err
	}

	s.logger.Info("manutenção excluída",
		zap.Uint64("id", id),
		zap.Uint64("equipment_id", existing.EquipmentID))
	return nil
}

// ProvisionInitialInTx cria a manutenção inicial padrão de um equipamento
// recém-cadastrado: concluída hoje, sem ordem de serviço, com a descrição
// gerada. A próxima manutenção é ancorada na data de hoje.
func (s *MaintenanceService) ProvisionInitialInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) error {
	today := utils.Today()

	maintenance := entities.Maintenance{
		WorkOrder:   0,
		EquipmentID: equipment.ID,
		OpenedDate:  today,
		ClosedDate:  &today,
		Kind:        constants.MaintenanceKindInitial,
		Description: utils.StringPtr(constants.DefaultInitialMaintenanceDescription),
		Status:      constants.MaintenanceStatusClosed,
	}
	if _, err := s.maintenanceRepo.CreateMaintenanceInTx(ctx, tx, maintenance); err != nil {
		return err
	}

	next := utils.NextMaintenanceDate(today, equipment.MaintenanceInterval)
	equipment.NextMaintenance = &next
	return s.equipmentRepo.UpdateDerivedStateInTx(ctx, tx, equipment)
}
