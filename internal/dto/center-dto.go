package dto

type CreateCenterDTO struct {
	Name     string `json:"name" validate:"required,max=64"`
	CampusID uint64 `json:"campus_id" validate:"required"`
}

type UpdateCenterDTO struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=64"`
	CampusID *uint64 `json:"campus_id,omitempty" validate:"omitempty,gt=0"`
}

type CenterDTO struct {
	ID        uint64         `json:"id"`
	Name      string         `json:"name"`
	Campus    ShortCampusDTO `json:"campus"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

type ShortCenterDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
