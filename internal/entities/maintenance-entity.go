package entities

import (
	"time"

	"facilities-system/pkg/types"
)

// Maintenance é uma ordem de serviço de manutenção de um equipamento.
// WorkOrder 0 significa "sem ordem de serviço formal".
// Invariante: ClosedDate preenchida se e somente se Status = CONCLUIDA.
type Maintenance struct {
	ID          uint64     `json:"id"`
	WorkOrder   int        `json:"work_order"`
	EquipmentID uint64     `json:"equipment_id"`
	OpenedDate  time.Time  `json:"opened_date"`
	ClosedDate  *time.Time `json:"closed_date,omitempty"`
	Kind        string     `json:"kind"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`

	types.BaseEntity

	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}
