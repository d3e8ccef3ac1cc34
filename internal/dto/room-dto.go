package dto

import "github.com/aarondl/null/v8"

type CreateRoomDTO struct {
	Name           string      `json:"name" validate:"required,max=64"`
	Kind           string      `json:"kind" validate:"required,oneof=INTERNO EXTERNO SUBESTACAO_ABRIGADA SUBESTACAO_AEREA"`
	BlockID        uint64      `json:"block_id" validate:"required"`
	LocationDetail null.String `json:"location_detail"`

	// Somente para ambientes internos.
	Floor     null.String  `json:"floor"`
	AreaM2    null.Float64 `json:"area_m2"`
	Occupancy null.Int     `json:"occupancy"`
}

type UpdateRoomDTO struct {
	Name           *string     `json:"name,omitempty" validate:"omitempty,max=64"`
	BlockID        *uint64     `json:"block_id,omitempty" validate:"omitempty,gt=0"`
	LocationDetail null.String `json:"location_detail"`
	Floor          null.String `json:"floor"`
	AreaM2         null.Float64 `json:"area_m2"`
	Occupancy      null.Int    `json:"occupancy"`
}

type RoomDTO struct {
	ID             uint64        `json:"id"`
	Name           string        `json:"name"`
	Kind           string        `json:"kind"`
	Block          ShortBlockDTO `json:"block"`
	LocationDetail string        `json:"location_detail,omitempty"`
	Floor          string        `json:"floor,omitempty"`
	AreaM2         *float64      `json:"area_m2,omitempty"`
	Occupancy      *int          `json:"occupancy,omitempty"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
}

type ShortRoomDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}
