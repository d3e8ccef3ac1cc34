package entities

import "facilities-system/pkg/types"

type ConsumerUnit struct {
	ID                uint64  `json:"id"`
	Name              string  `json:"name"`
	ResponsibleUnitID uint64  `json:"responsible_unit_id"`
	ClientNumber      int     `json:"client_number"`
	Address           *string `json:"address,omitempty"`
	TariffModality    string  `json:"tariff_modality"`
	MeterNumber       int     `json:"meter_number"`

	types.BaseEntity

	ResponsibleUnit *ResponsibleUnit `json:"responsible_unit,omitempty" db:"-"`
}
