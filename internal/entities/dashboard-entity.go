package entities

// DashboardSummary agrega os contadores exibidos na tela inicial.
type DashboardSummary struct {
	EquipmentsInUse       uint64 `json:"equipments_in_use"`
	EquipmentsRetired     uint64 `json:"equipments_retired"`
	EquipmentsMaintenance uint64 `json:"equipments_in_maintenance"`
	MaintenancesOpen      uint64 `json:"maintenances_open"`
	PreventivesOverdue    uint64 `json:"preventives_overdue"`
	ConsumerUnits         uint64 `json:"consumer_units"`
}
