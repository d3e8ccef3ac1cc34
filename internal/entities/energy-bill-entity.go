package entities

import (
	"time"

	"facilities-system/pkg/types"
)

// EnergyBill é uma conta de energia de uma unidade consumidora:
// leitura mensal com consumo (kWh) e valores faturados (R$).
type EnergyBill struct {
	ID             uint64    `json:"id"`
	ConsumerUnitID uint64    `json:"consumer_unit_id"`
	ReadingDate    time.Time `json:"reading_date"`
	OffPeakKWh     int       `json:"off_peak_kwh"`
	PeakKWh        int       `json:"peak_kwh"`
	OffPeakAmount  float64   `json:"off_peak_amount"`
	PeakAmount     float64   `json:"peak_amount"`
	TotalAmount    float64   `json:"total_amount"`

	types.BaseEntity

	ConsumerUnit *ConsumerUnit `json:"consumer_unit,omitempty" db:"-"`
}
