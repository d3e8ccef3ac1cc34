package dto

import "github.com/aarondl/null/v8"

type CreateMaintenanceDTO struct {
	WorkOrder   int         `json:"work_order" validate:"gte=0"`
	EquipmentID uint64      `json:"equipment_id" validate:"required"`
	OpenedDate  string      `json:"opened_date" validate:"required,apidate,notfuture"`
	ClosedDate  string      `json:"closed_date" validate:"omitempty,apidate,notfuture"`
	Kind        string      `json:"kind" validate:"required,oneof=INICIAL PREVENTIVA CORRETIVA TROCA"`
	Description null.String `json:"description"`
	Status      string      `json:"status" validate:"required,oneof=ABERTA CONCLUIDA"`
}

// O equipamento de uma manutenção é imutável após a criação.
type UpdateMaintenanceDTO struct {
	WorkOrder   *int        `json:"work_order,omitempty" validate:"omitempty,gte=0"`
	OpenedDate  *string     `json:"opened_date,omitempty" validate:"omitempty,apidate,notfuture"`
	ClosedDate  null.String `json:"closed_date" validate:"omitempty"`
	Kind        *string     `json:"kind,omitempty" validate:"omitempty,oneof=INICIAL PREVENTIVA CORRETIVA TROCA"`
	Description null.String `json:"description"`
	Status      *string     `json:"status,omitempty" validate:"omitempty,oneof=ABERTA CONCLUIDA"`
}

type MaintenanceDTO struct {
	ID          uint64            `json:"id"`
	WorkOrder   int               `json:"work_order"`
	Equipment   ShortEquipmentDTO `json:"equipment"`
	OpenedDate  string            `json:"opened_date"`
	ClosedDate  string            `json:"closed_date,omitempty"`
	Kind        string            `json:"kind"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// ReplacementDirectiveDTO instrui o chamador a criar o equipamento sucessor
// após a conclusão de uma manutenção de troca. A criação não é automática.
type ReplacementDirectiveDTO struct {
	ReplacedEquipmentID uint64 `json:"replaced_equipment_id"`
	SuccessorKind       string `json:"successor_kind"`
}

// MaintenanceSaveResultDTO é a resposta de criação/edição de manutenção;
// Replacement é preenchido quando uma troca foi concluída.
type MaintenanceSaveResultDTO struct {
	Maintenance MaintenanceDTO           `json:"maintenance"`
	Replacement *ReplacementDirectiveDTO `json:"replacement,omitempty"`
}
