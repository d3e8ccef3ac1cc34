package entities

import "facilities-system/pkg/types"

type Department struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	CenterID uint64 `json:"center_id"`

	types.BaseEntity

	Center *Center `json:"center,omitempty" db:"-"`
}
