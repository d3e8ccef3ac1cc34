package entities

import (
	"time"

	"facilities-system/pkg/types"
)

// Equipment é o envelope comum dos equipamentos. Kind discrimina a variante
// (extintor, condicionador de ar); os campos específicos de cada variante são
// ponteiros e ficam nil nas demais. AssetTag 0 significa "sem tombamento".
type Equipment struct {
	ID                  uint64  `json:"id"`
	Kind                string  `json:"kind"`
	Category            string  `json:"category"`
	AssetTag            int     `json:"asset_tag"`
	RoomID              uint64  `json:"room_id"`
	Manufacturer        *string `json:"manufacturer,omitempty"`
	MaintenanceInterval int     `json:"maintenance_interval"`
	ExtraInfo           *string `json:"extra_info,omitempty"`

	// Estado derivado, mantido pelo motor de ciclo de vida de manutenções.
	InUse            bool       `json:"in_use"`
	InMaintenance    bool       `json:"in_maintenance"`
	MaintenanceStart *time.Time `json:"maintenance_start,omitempty"`
	NextMaintenance  *time.Time `json:"next_maintenance,omitempty"`

	// Extintor
	Classification  *string  `json:"classification,omitempty"`
	NominalChargeKg *float64 `json:"nominal_charge_kg,omitempty"`

	// Condicionador de ar
	InputPowerW        *int    `json:"input_power_w,omitempty"`
	CoolingCapacityBTU *int    `json:"cooling_capacity_btu,omitempty"`
	SupplyVoltageV     *int    `json:"supply_voltage_v,omitempty"`
	EfficiencyRating   *string `json:"efficiency_rating,omitempty"`

	types.BaseEntity

	Room *Room `json:"room,omitempty" db:"-"`
}
