package dto

type CreateBlockDTO struct {
	Name         string `json:"name" validate:"required,max=64"`
	DepartmentID uint64 `json:"department_id" validate:"required"`
}

type UpdateBlockDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=64"`
	DepartmentID *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
}

type BlockDTO struct {
	ID         uint64             `json:"id"`
	Name       string             `json:"name"`
	Department ShortDepartmentDTO `json:"department"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

type ShortBlockDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
