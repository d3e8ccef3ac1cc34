package dto

import "github.com/aarondl/null/v8"

// InitialMaintenanceChoice controla o provisionamento da manutenção inicial
// na criação do equipamento: "default" cria a manutenção inicial padrão na
// data de hoje; "custom" deixa o cadastro para o fluxo normal de manutenções.
type CreateEquipmentDTO struct {
	Kind                string      `json:"kind" validate:"required,oneof=EXTINTOR CONDICIONADOR_AR"`
	AssetTag            int         `json:"asset_tag" validate:"gte=0"`
	RoomID              uint64      `json:"room_id" validate:"required"`
	Manufacturer        null.String `json:"manufacturer"`
	MaintenanceInterval int         `json:"maintenance_interval" validate:"required,gt=0"`
	ExtraInfo           null.String `json:"extra_info"`

	InitialMaintenanceChoice string `json:"initial_maintenance" validate:"required,oneof=default custom"`

	// Extintor
	Classification  null.String  `json:"classification"`
	NominalChargeKg null.Float64 `json:"nominal_charge_kg"`

	// Condicionador de ar
	InputPowerW        null.Int    `json:"input_power_w"`
	CoolingCapacityBTU null.Int    `json:"cooling_capacity_btu"`
	SupplyVoltageV     null.Int    `json:"supply_voltage_v" validate:"omitempty"`
	EfficiencyRating   null.String `json:"efficiency_rating" validate:"omitempty"`
}

type UpdateEquipmentDTO struct {
	AssetTag            *int        `json:"asset_tag,omitempty" validate:"omitempty,gte=0"`
	RoomID              *uint64     `json:"room_id,omitempty" validate:"omitempty,gt=0"`
	Manufacturer        null.String `json:"manufacturer"`
	MaintenanceInterval *int        `json:"maintenance_interval,omitempty" validate:"omitempty,gt=0"`
	ExtraInfo           null.String `json:"extra_info"`
	InUse               *bool       `json:"in_use,omitempty"`

	Classification  null.String  `json:"classification"`
	NominalChargeKg null.Float64 `json:"nominal_charge_kg"`

	InputPowerW        null.Int    `json:"input_power_w"`
	CoolingCapacityBTU null.Int    `json:"cooling_capacity_btu"`
	SupplyVoltageV     null.Int    `json:"supply_voltage_v"`
	EfficiencyRating   null.String `json:"efficiency_rating"`
}

type EquipmentDTO struct {
	ID                  uint64       `json:"id"`
	Kind                string       `json:"kind"`
	Category            string       `json:"category"`
	AssetTag            int          `json:"asset_tag"`
	Room                ShortRoomDTO `json:"room"`
	Manufacturer        string       `json:"manufacturer,omitempty"`
	MaintenanceInterval int          `json:"maintenance_interval"`
	ExtraInfo           string       `json:"extra_info,omitempty"`

	InUse            bool   `json:"in_use"`
	InMaintenance    bool   `json:"in_maintenance"`
	MaintenanceStart string `json:"maintenance_start,omitempty"`
	NextMaintenance  string `json:"next_maintenance,omitempty"`

	Classification  string   `json:"classification,omitempty"`
	NominalChargeKg *float64 `json:"nominal_charge_kg,omitempty"`

	InputPowerW        *int   `json:"input_power_w,omitempty"`
	CoolingCapacityBTU *int   `json:"cooling_capacity_btu,omitempty"`
	SupplyVoltageV     *int   `json:"supply_voltage_v,omitempty"`
	EfficiencyRating   string `json:"efficiency_rating,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID       uint64 `json:"id"`
	Kind     string `json:"kind"`
	AssetTag int    `json:"asset_tag"`
}

// CreateEquipmentResultDTO devolve o equipamento criado e, quando o
// provisionamento foi "custom", a instrução de cadastro da manutenção inicial.
type CreateEquipmentResultDTO struct {
	Equipment          EquipmentDTO `json:"equipment"`
	InitialMaintenance string       `json:"initial_maintenance"`
	PendingInitial     bool         `json:"pending_initial"`
}
