package entities

import "facilities-system/pkg/types"

type ResponsibleUnit struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`

	types.BaseEntity
}
