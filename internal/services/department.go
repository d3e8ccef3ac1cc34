package services

import (
	"context"

	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/internal/repositories"
	"facilities-system/pkg/types"
)

type DepartmentServiceInterface interface {
	GetDepartments(ctx context.Context, filter types.Filter) ([]dto.DepartmentDTO, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error)
	UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error)
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentService struct {
	departmentRepo repositories.DepartmentRepositoryInterface
	centerRepo     repositories.CenterRepositoryInterface
	logger         *zap.Logger
}

func NewDepartmentService(
	departmentRepo repositories.DepartmentRepositoryInterface,
	centerRepo repositories.CenterRepositoryInterface,
	logger *zap.Logger,
) DepartmentServiceInterface {
	return &DepartmentService{departmentRepo: departmentRepo, centerRepo: centerRepo, logger: logger}
}

func mapDepartment(d entities.Department) dto.DepartmentDTO {
	result := dto.DepartmentDTO{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: formatTimestamp(d.CreatedAt),
		UpdatedAt: formatTimestamp(d.UpdatedAt),
	}
	if d.Center != nil {
		result.Center = dto.ShortCenterDTO{ID: d.Center.ID, Name: d.Center.Name}
	}
	return result
}

func (s *DepartmentService) GetDepartments(ctx context.Context, filter types.Filter) ([]dto.DepartmentDTO, uint64, error) {
	departments, total, err := s.departmentRepo.GetDepartments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.DepartmentDTO, 0, len(departments))
	for _, d := range departments {
		dtos = append(dtos, mapDepartment(d))
	}
	return dtos, total, nil
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	d, err := s.departmentRepo.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapDepartment(*d)
	return &result, nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	if _, err := s.centerRepo.FindCenter(ctx, payload.CenterID); err != nil {
		return nil, err
	}
	id, err := s.departmentRepo.CreateDepartment(ctx, entities.Department{Name: payload.Name, CenterID: payload.CenterID})
	if err != nil {
		return nil, err
	}
	s.logger.Info("departamento criado", zap.Uint64("id", id), zap.String("name", payload.Name))
	return s.FindDepartment(ctx, id)
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	existing, err := s.departmentRepo.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.CenterID != nil {
		if _, err := s.centerRepo.FindCenter(ctx, *payload.CenterID); err != nil {
			return nil, err
		}
		existing.CenterID = *payload.CenterID
	}
	if err := s.departmentRepo.UpdateDepartment(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindDepartment(ctx, id)
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	return s.departmentRepo.DeleteDepartment(ctx, id)
}
