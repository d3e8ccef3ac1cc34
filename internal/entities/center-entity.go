package entities

import "facilities-system/pkg/types"

type Center struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	CampusID uint64 `json:"campus_id"`

	types.BaseEntity

	Campus *Campus `json:"campus,omitempty" db:"-"`
}
