package entities

import "facilities-system/pkg/types"

type Block struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	DepartmentID uint64 `json:"department_id"`

	types.BaseEntity

	Department *Department `json:"department,omitempty" db:"-"`
}
