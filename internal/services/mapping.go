package services

import (
	"time"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/pkg/utils"
)

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mapShortEquipment(e *entities.Equipment) dto.ShortEquipmentDTO {
	if e == nil {
		return dto.ShortEquipmentDTO{}
	}
	return dto.ShortEquipmentDTO{ID: e.ID, Kind: e.Kind, AssetTag: e.AssetTag}
}

func mapMaintenance(m entities.Maintenance) dto.MaintenanceDTO {
	return dto.MaintenanceDTO{
		ID:          m.ID,
		WorkOrder:   m.WorkOrder,
		Equipment:   mapShortEquipment(m.Equipment),
		OpenedDate:  utils.FormatDate(m.OpenedDate),
		ClosedDate:  utils.FormatDatePtr(m.ClosedDate),
		Kind:        m.Kind,
		Description: derefString(m.Description),
		Status:      m.Status,
		CreatedAt:   formatTimestamp(m.CreatedAt),
		UpdatedAt:   formatTimestamp(m.UpdatedAt),
	}
}

func mapShortRoom(r *entities.Room) dto.ShortRoomDTO {
	if r == nil {
		return dto.ShortRoomDTO{}
	}
	return dto.ShortRoomDTO{ID: r.ID, Name: r.Name, Kind: r.Kind}
}

func mapEquipment(e entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:                  e.ID,
		Kind:                e.Kind,
		Category:            e.Category,
		AssetTag:            e.AssetTag,
		Room:                mapShortRoom(e.Room),
		Manufacturer:        derefString(e.Manufacturer),
		MaintenanceInterval: e.MaintenanceInterval,
		ExtraInfo:           derefString(e.ExtraInfo),
		InUse:               e.InUse,
		InMaintenance:       e.InMaintenance,
		MaintenanceStart:    utils.FormatDatePtr(e.MaintenanceStart),
		NextMaintenance:     utils.FormatDatePtr(e.NextMaintenance),
		Classification:      derefString(e.Classification),
		NominalChargeKg:     e.NominalChargeKg,
		InputPowerW:         e.InputPowerW,
		CoolingCapacityBTU:  e.CoolingCapacityBTU,
		SupplyVoltageV:      e.SupplyVoltageV,
		EfficiencyRating:    derefString(e.EfficiencyRating),
		CreatedAt:           formatTimestamp(e.CreatedAt),
		UpdatedAt:           formatTimestamp(e.UpdatedAt),
	}
}
