package entities

import "facilities-system/pkg/types"

// Room é um ambiente físico. O campo Kind discrimina a variante
// (interno, externo, subestação abrigada, subestação aérea); os campos
// específicos de cada variante são ponteiros e ficam nil nas demais.
type Room struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Kind           string  `json:"kind"`
	BlockID        uint64  `json:"block_id"`
	LocationDetail *string `json:"location_detail,omitempty"`

	// Ambiente interno
	Floor     *string  `json:"floor,omitempty"`
	AreaM2    *float64 `json:"area_m2,omitempty"`
	Occupancy *int     `json:"occupancy,omitempty"`

	types.BaseEntity

	Block *Block `json:"block,omitempty" db:"-"`
}
