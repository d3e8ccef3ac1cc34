package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/internal/repositories"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/types"
	"facilities-system/pkg/utils"
)

type ConsumptionServiceInterface interface {
	GetResponsibleUnits(ctx context.Context, filter types.Filter) ([]dto.ResponsibleUnitDTO, uint64, error)
	FindResponsibleUnit(ctx context.Context, id uint64) (*dto.ResponsibleUnitDTO, error)
	CreateResponsibleUnit(ctx context.Context, payload dto.CreateResponsibleUnitDTO) (*dto.ResponsibleUnitDTO, error)
	UpdateResponsibleUnit(ctx context.Context, id uint64, payload dto.UpdateResponsibleUnitDTO) (*dto.ResponsibleUnitDTO, error)
	DeleteResponsibleUnit(ctx context.Context, id uint64) error

	GetConsumerUnits(ctx context.Context, filter types.Filter) ([]dto.ConsumerUnitDTO, uint64, error)
	FindConsumerUnit(ctx context.Context, id uint64) (*dto.ConsumerUnitDTO, error)
	CreateConsumerUnit(ctx context.Context, payload dto.CreateConsumerUnitDTO) (*dto.ConsumerUnitDTO, error)
	UpdateConsumerUnit(ctx context.Context, id uint64, payload dto.UpdateConsumerUnitDTO) (*dto.ConsumerUnitDTO, error)
	DeleteConsumerUnit(ctx context.Context, id uint64) error

	GetEnergyBills(ctx context.Context, filter types.Filter) ([]dto.EnergyBillDTO, uint64, error)
	FindEnergyBill(ctx context.Context, id uint64) (*dto.EnergyBillDTO, error)
	CreateEnergyBill(ctx context.Context, payload dto.CreateEnergyBillDTO) (*dto.EnergyBillDTO, error)
	UpdateEnergyBill(ctx context.Context, id uint64, payload dto.UpdateEnergyBillDTO) (*dto.EnergyBillDTO, error)
	DeleteEnergyBill(ctx context.Context, id uint64) error
	ExportEnergyBills(ctx context.Context, consumerUnitID uint64, from, to string) (*excelize.File, error)
}

// ConsumptionService cobre o controle de consumo de energia: unidades
// responsáveis, unidades consumidoras e contas mensais, com exportação
// do histórico em planilha.
type ConsumptionService struct {
	responsibleRepo repositories.ResponsibleUnitRepositoryInterface
	consumerRepo    repositories.ConsumerUnitRepositoryInterface
	billRepo        repositories.EnergyBillRepositoryInterface
	logger          *zap.Logger
}

func NewConsumptionService(
	responsibleRepo repositories.ResponsibleUnitRepositoryInterface,
	consumerRepo repositories.ConsumerUnitRepositoryInterface,
	billRepo repositories.EnergyBillRepositoryInterface,
	logger *zap.Logger,
) ConsumptionServiceInterface {
	return &ConsumptionService{
		responsibleRepo: responsibleRepo,
		consumerRepo:    consumerRepo,
		billRepo:        billRepo,
		logger:          logger,
	}
}

func mapResponsibleUnit(u entities.ResponsibleUnit) dto.ResponsibleUnitDTO {
	return dto.ResponsibleUnitDTO{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: formatTimestamp(u.CreatedAt),
		UpdatedAt: formatTimestamp(u.UpdatedAt),
	}
}

func mapConsumerUnit(u entities.ConsumerUnit) dto.ConsumerUnitDTO {
	result := dto.ConsumerUnitDTO{
		ID:             u.ID,
		Name:           u.Name,
		ClientNumber:   u.ClientNumber,
		Address:        derefString(u.Address),
		TariffModality: u.TariffModality,
		MeterNumber:    u.MeterNumber,
		CreatedAt:      formatTimestamp(u.CreatedAt),
		UpdatedAt:      formatTimestamp(u.UpdatedAt),
	}
	if u.ResponsibleUnit != nil {
		result.ResponsibleUnit = dto.ShortResponsibleUnitDTO{ID: u.ResponsibleUnit.ID, Name: u.ResponsibleUnit.Name}
	}
	return result
}

func mapEnergyBill(b entities.EnergyBill) dto.EnergyBillDTO {
	result := dto.EnergyBillDTO{
		ID:            b.ID,
		ReadingDate:   utils.FormatDate(b.ReadingDate),
		OffPeakKWh:    b.OffPeakKWh,
		PeakKWh:       b.PeakKWh,
		OffPeakAmount: b.OffPeakAmount,
		PeakAmount:    b.PeakAmount,
		TotalAmount:   b.TotalAmount,
		CreatedAt:     formatTimestamp(b.CreatedAt),
		UpdatedAt:     formatTimestamp(b.UpdatedAt),
	}
	if b.ConsumerUnit != nil {
		result.ConsumerUnit = dto.ShortConsumerUnitDTO{
			ID:           b.ConsumerUnit.ID,
			Name:         b.ConsumerUnit.Name,
			ClientNumber: b.ConsumerUnit.ClientNumber,
		}
	}
	return result
}

func (s *ConsumptionService) GetResponsibleUnits(ctx context.Context, filter types.Filter) ([]dto.ResponsibleUnitDTO, uint64, error) {
	units, total, err := s.responsibleRepo.GetResponsibleUnits(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.ResponsibleUnitDTO, 0, len(units))
	for _, u := range units {
		dtos = append(dtos, mapResponsibleUnit(u))
	}
	return dtos, total, nil
}

func (s *ConsumptionService) FindResponsibleUnit(ctx context.Context, id uint64) (*dto.ResponsibleUnitDTO, error) {
	u, err := s.responsibleRepo.FindResponsibleUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapResponsibleUnit(*u)
	return &result, nil
}

func (s *ConsumptionService) CreateResponsibleUnit(ctx context.Context, payload dto.CreateResponsibleUnitDTO) (*dto.ResponsibleUnitDTO, error) {
	id, err := s.responsibleRepo.CreateResponsibleUnit(ctx, entities.ResponsibleUnit{Name: payload.Name})
	if err != nil {
		return nil, err
	}
	s.logger.Info("unidade responsável criada", zap.Uint64("id", id), zap.String("name", payload.Name))
	return s.FindResponsibleUnit(ctx, id)
}

func (s *ConsumptionService) UpdateResponsibleUnit(ctx context.Context, id uint64, payload dto.UpdateResponsibleUnitDTO) (*dto.ResponsibleUnitDTO, error) {
	existing, err := s.responsibleRepo.FindResponsibleUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if err := s.responsibleRepo.UpdateResponsibleUnit(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindResponsibleUnit(ctx, id)
}

func (s *ConsumptionService) DeleteResponsibleUnit(ctx context.Context, id uint64) error {
	return s.responsibleRepo.DeleteResponsibleUnit(ctx, id)
}

func (s *ConsumptionService) checkClientNumberUnique(ctx context.Context, clientNumber int, selfID uint64) error {
	existing, err := s.consumerRepo.FindByClientNumber(ctx, clientNumber)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return apperrors.ErrDuplicateClientNum
	}
	return nil
}

func (s *ConsumptionService) checkMeterNumberUnique(ctx context.Context, meterNumber int, selfID uint64) error {
	existing, err := s.consumerRepo.FindByMeterNumber(ctx, meterNumber)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return apperrors.ErrDuplicateMeterNumber
	}
	return nil
}

func (s *ConsumptionService) GetConsumerUnits(ctx context.Context, filter types.Filter) ([]dto.ConsumerUnitDTO, uint64, error) {
	units, total, err := s.consumerRepo.GetConsumerUnits(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.ConsumerUnitDTO, 0, len(units))
	for _, u := range units {
		dtos = append(dtos, mapConsumerUnit(u))
	}
	return dtos, total, nil
}

func (s *ConsumptionService) FindConsumerUnit(ctx context.Context, id uint64) (*dto.ConsumerUnitDTO, error) {
	u, err := s.consumerRepo.FindConsumerUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapConsumerUnit(*u)
	return &result, nil
}

func (s *ConsumptionService) CreateConsumerUnit(ctx context.Context, payload dto.CreateConsumerUnitDTO) (*dto.ConsumerUnitDTO, error) {
	if _, err := s.responsibleRepo.FindResponsibleUnit(ctx, payload.ResponsibleUnitID); err != nil {
		return nil, err
	}
	if err := s.checkClientNumberUnique(ctx, payload.ClientNumber, 0); err != nil {
		return nil, err
	}
	if err := s.checkMeterNumberUnique(ctx, payload.MeterNumber, 0); err != nil {
		return nil, err
	}

	unit := entities.ConsumerUnit{
		Name:              payload.Name,
		ResponsibleUnitID: payload.ResponsibleUnitID,
		ClientNumber:      payload.ClientNumber,
		TariffModality:    payload.TariffModality,
		MeterNumber:       payload.MeterNumber,
	}
	if payload.Address.Valid && payload.Address.String != "" {
		unit.Address = utils.StringPtr(payload.Address.String)
	}

	id, err := s.consumerRepo.CreateConsumerUnit(ctx, unit)
	if err != nil {
		return nil, err
	}
	s.logger.Info("unidade consumidora criada", zap.Uint64("id", id), zap.Int("client_number", payload.ClientNumber))
	return s.FindConsumerUnit(ctx, id)
}

func (s *ConsumptionService) UpdateConsumerUnit(ctx context.Context, id uint64, payload dto.UpdateConsumerUnitDTO) (*dto.ConsumerUnitDTO, error) {
	existing, err := s.consumerRepo.FindConsumerUnit(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.ResponsibleUnitID != nil {
		if _, err := s.responsibleRepo.FindResponsibleUnit(ctx, *payload.ResponsibleUnitID); err != nil {
			return nil, err
		}
		existing.ResponsibleUnitID = *payload.ResponsibleUnitID
	}
	if payload.ClientNumber != nil {
		existing.ClientNumber = *payload.ClientNumber
	}
	if payload.MeterNumber != nil {
		existing.MeterNumber = *payload.MeterNumber
	}
	if payload.TariffModality != nil {
		existing.TariffModality = *payload.TariffModality
	}
	if payload.Address.Valid {
		if payload.Address.String == "" {
			existing.Address = nil
		} else {
			existing.Address = utils.StringPtr(payload.Address.String)
		}
	}

	if err := s.checkClientNumberUnique(ctx, existing.ClientNumber, id); err != nil {
		return nil, err
	}
	if err := s.checkMeterNumberUnique(ctx, existing.MeterNumber, id); err != nil {
		return nil, err
	}

	if err := s.consumerRepo.UpdateConsumerUnit(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindConsumerUnit(ctx, id)
}

func (s *ConsumptionService) DeleteConsumerUnit(ctx context.Context, id uint64) error {
	return s.consumerRepo.DeleteConsumerUnit(ctx, id)
}

func (s *ConsumptionService) GetEnergyBills(ctx context.Context, filter types.Filter) ([]dto.EnergyBillDTO, uint64, error) {
	bills, total, err := s.billRepo.GetEnergyBills(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.EnergyBillDTO, 0, len(bills))
	for _, b := range bills {
		dtos = append(dtos, mapEnergyBill(b))
	}
	return dtos, total, nil
}

func (s *ConsumptionService) FindEnergyBill(ctx context.Context, id uint64) (*dto.EnergyBillDTO, error) {
	b, err := s.billRepo.FindEnergyBill(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapEnergyBill(*b)
	return &result, nil
}

func (s *ConsumptionService) CreateEnergyBill(ctx context.Context, payload dto.CreateEnergyBillDTO) (*dto.EnergyBillDTO, error) {
	if _, err := s.consumerRepo.FindConsumerUnit(ctx, payload.ConsumerUnitID); err != nil {
		return nil, err
	}
	readingDate, err := utils.ParseDate(payload.ReadingDate)
	if err != nil {
		return nil, err
	}

	bill := entities.EnergyBill{
		ConsumerUnitID: payload.ConsumerUnitID,
		ReadingDate:    readingDate,
		OffPeakKWh:     payload.OffPeakKWh,
		PeakKWh:        payload.PeakKWh,
		OffPeakAmount:  payload.OffPeakAmount,
		PeakAmount:     payload.PeakAmount,
		TotalAmount:    payload.TotalAmount,
	}

	id, err := s.billRepo.CreateEnergyBill(ctx, bill)
	if err != nil {
		return nil, err
	}
	s.logger.Info("conta de energia criada", zap.Uint64("id", id), zap.Uint64("consumer_unit_id", payload.ConsumerUnitID))
	return s.FindEnergyBill(ctx, id)
}

func (s *ConsumptionService) UpdateEnergyBill(ctx context.Context, id uint64, payload dto.UpdateEnergyBillDTO) (*dto.EnergyBillDTO, error) {
	existing, err := s.billRepo.FindEnergyBill(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.ReadingDate != nil {
		readingDate, err := utils.ParseDate(*payload.ReadingDate)
		if err != nil {
			return nil, err
		}
		existing.ReadingDate = readingDate
	}
	if payload.OffPeakKWh != nil {
		existing.OffPeakKWh = *payload.OffPeakKWh
	}
	if payload.PeakKWh != nil {
		existing.PeakKWh = *payload.PeakKWh
	}
	if payload.OffPeakAmount != nil {
		existing.OffPeakAmount = *payload.OffPeakAmount
	}
	if payload.PeakAmount != nil {
		existing.PeakAmount = *payload.PeakAmount
	}
	if payload.TotalAmount != nil {
		existing.TotalAmount = *payload.TotalAmount
	}

	if err := s.billRepo.UpdateEnergyBill(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindEnergyBill(ctx, id)
}

func (s *ConsumptionService) DeleteEnergyBill(ctx context.Context, id uint64) error {
	return s.billRepo.DeleteEnergyBill(ctx, id)
}

// ExportEnergyBills monta a planilha do histórico de contas do período.
// consumerUnitID = 0 exporta todas as unidades.
func (s *ConsumptionService) ExportEnergyBills(ctx context.Context, consumerUnitID uint64, from, to string) (*excelize.File, error) {
	fromDate, err := utils.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := utils.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, apperrors.NewInvalidInputError("período inválido: data final anterior à inicial")
	}

	bills, err := s.billRepo.ListByPeriod(ctx, consumerUnitID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Contas"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a planilha: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []interface{}{
		"Unidade consumidora", "Nº cliente", "Data da leitura",
		"Consumo fora de ponta (kWh)", "Consumo em ponta (kWh)",
		"Valor fora de ponta (R$)", "Valor em ponta (R$)", "Valor total (R$)",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, b := range bills {
		unitName := ""
		clientNumber := 0
		if b.ConsumerUnit != nil {
			unitName = b.ConsumerUnit.Name
			clientNumber = b.ConsumerUnit.ClientNumber
		}
		row := []interface{}{
			unitName, clientNumber, utils.FormatDate(b.ReadingDate),
			b.OffPeakKWh, b.PeakKWh,
			b.OffPeakAmount, b.PeakAmount, b.TotalAmount,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	s.logger.Info("relatório de contas exportado",
		zap.Uint64("consumer_unit_id", consumerUnitID),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("rows", len(bills)))
	return f, nil
}
