package dto

type CreateResponsibleUnitDTO struct {
	Name string `json:"name" validate:"required,max=64"`
}

type UpdateResponsibleUnitDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=64"`
}

type ResponsibleUnitDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortResponsibleUnitDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
