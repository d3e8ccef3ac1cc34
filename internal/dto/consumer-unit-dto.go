package dto

import "github.com/aarondl/null/v8"

type CreateConsumerUnitDTO struct {
	Name              string      `json:"name" validate:"required,max=64"`
	ResponsibleUnitID uint64      `json:"responsible_unit_id" validate:"required"`
	ClientNumber      int         `json:"client_number" validate:"required,gt=0"`
	Address           null.String `json:"address"`
	TariffModality    string      `json:"tariff_modality" validate:"required,max=64"`
	MeterNumber       int         `json:"meter_number" validate:"required,gt=0"`
}

type UpdateConsumerUnitDTO struct {
	Name              *string     `json:"name,omitempty" validate:"omitempty,max=64"`
	ResponsibleUnitID *uint64     `json:"responsible_unit_id,omitempty" validate:"omitempty,gt=0"`
	ClientNumber      *int        `json:"client_number,omitempty" validate:"omitempty,gt=0"`
	Address           null.String `json:"address"`
	TariffModality    *string     `json:"tariff_modality,omitempty" validate:"omitempty,max=64"`
	MeterNumber       *int        `json:"meter_number,omitempty" validate:"omitempty,gt=0"`
}

type ConsumerUnitDTO struct {
	ID              uint64                  `json:"id"`
	Name            string                  `json:"name"`
	ResponsibleUnit ShortResponsibleUnitDTO `json:"responsible_unit"`
	ClientNumber    int                     `json:"client_number"`
	Address         string                  `json:"address,omitempty"`
	TariffModality  string                  `json:"tariff_modality"`
	MeterNumber     int                     `json:"meter_number"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

type ShortConsumerUnitDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	ClientNumber int    `json:"client_number"`
}
