package dto

type CreateCampusDTO struct {
	Name string `json:"name" validate:"required,max=64"`
}

type UpdateCampusDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=64"`
}

type CampusDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortCampusDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
