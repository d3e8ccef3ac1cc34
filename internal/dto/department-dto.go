package dto

type CreateDepartmentDTO struct {
	Name     string `json:"name" validate:"required,max=64"`
	CenterID uint64 `json:"center_id" validate:"required"`
}

type UpdateDepartmentDTO struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=64"`
	CenterID *uint64 `json:"center_id,omitempty" validate:"omitempty,gt=0"`
}

type DepartmentDTO struct {
	ID        uint64         `json:"id"`
	Name      string         `json:"name"`
	Center    ShortCenterDTO `json:"center"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

type ShortDepartmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
