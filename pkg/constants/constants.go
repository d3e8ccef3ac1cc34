package constants

// Status de manutenção.
const (
	MaintenanceStatusOpen   = "ABERTA"
	MaintenanceStatusClosed = "CONCLUIDA"
)

// Tipos de manutenção.
const (
	MaintenanceKindInitial     = "INICIAL"
	MaintenanceKindPreventive  = "PREVENTIVA"
	MaintenanceKindCorrective  = "CORRETIVA"
	MaintenanceKindReplacement = "TROCA"
)

// Tipos de equipamento (variantes fechadas).
const (
	EquipmentKindExtinguisher   = "EXTINTOR"
	EquipmentKindAirConditioner = "CONDICIONADOR_AR"
)

// Categorias de equipamento, derivadas do tipo.
const (
	EquipmentCategoryFireFighting = "COMBATE_INCENDIO"
	EquipmentCategoryElectrical   = "EQUIPAMENTO_ELETRICO"
)

// Tipos de ambiente (variantes fechadas).
const (
	RoomKindInternal            = "INTERNO"
	RoomKindExternal            = "EXTERNO"
	RoomKindShelteredSubstation = "SUBESTACAO_ABRIGADA"
	RoomKindAerialSubstation    = "SUBESTACAO_AEREA"
)

// Descrição da manutenção inicial padrão criada junto com o equipamento.
const DefaultInitialMaintenanceDescription = "Manutenção inicial padrão criada automaticamente."

// Dias considerados por mês no cálculo da próxima manutenção preventiva.
const DaysPerMaintenanceMonth = 30

func ValidMaintenanceStatus(s string) bool {
	return s == MaintenanceStatusOpen || s == MaintenanceStatusClosed
}

func ValidMaintenanceKind(k string) bool {
	switch k {
	case MaintenanceKindInitial, MaintenanceKindPreventive,
		MaintenanceKindCorrective, MaintenanceKindReplacement:
		return true
	}
	return false
}

func ValidEquipmentKind(k string) bool {
	return k == EquipmentKindExtinguisher || k == EquipmentKindAirConditioner
}

func ValidRoomKind(k string) bool {
	switch k {
	case RoomKindInternal, RoomKindExternal,
		RoomKindShelteredSubstation, RoomKindAerialSubstation:
		return true
	}
	return false
}

// EquipmentCategoryFor devolve a categoria fixa de cada tipo de equipamento.
func EquipmentCategoryFor(kind string) string {
	if kind == EquipmentKindExtinguisher {
		return EquipmentCategoryFireFighting
	}
	return EquipmentCategoryElectrical
}
