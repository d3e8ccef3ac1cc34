package dto

type CreateEnergyBillDTO struct {
	ConsumerUnitID uint64  `json:"consumer_unit_id" validate:"required"`
	ReadingDate    string  `json:"reading_date" validate:"required,apidate,notfuture"`
	OffPeakKWh     int     `json:"off_peak_kwh" validate:"gte=0"`
	PeakKWh        int     `json:"peak_kwh" validate:"gte=0"`
	OffPeakAmount  float64 `json:"off_peak_amount" validate:"gte=0"`
	PeakAmount     float64 `json:"peak_amount" validate:"gte=0"`
	TotalAmount    float64 `json:"total_amount" validate:"gte=0"`
}

type UpdateEnergyBillDTO struct {
	ReadingDate   *string  `json:"reading_date,omitempty" validate:"omitempty,apidate,notfuture"`
	OffPeakKWh    *int     `json:"off_peak_kwh,omitempty" validate:"omitempty,gte=0"`
	PeakKWh       *int     `json:"peak_kwh,omitempty" validate:"omitempty,gte=0"`
	OffPeakAmount *float64 `json:"off_peak_amount,omitempty" validate:"omitempty,gte=0"`
	PeakAmount    *float64 `json:"peak_amount,omitempty" validate:"omitempty,gte=0"`
	TotalAmount   *float64 `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
}

type EnergyBillDTO struct {
	ID            uint64               `json:"id"`
	ConsumerUnit  ShortConsumerUnitDTO `json:"consumer_unit"`
	ReadingDate   string               `json:"reading_date"`
	OffPeakKWh    int                  `json:"off_peak_kwh"`
	PeakKWh       int                  `json:"peak_kwh"`
	OffPeakAmount float64              `json:"off_peak_amount"`
	PeakAmount    float64              `json:"peak_amount"`
	TotalAmount   float64              `json:"total_amount"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}
