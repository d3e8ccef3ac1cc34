package services

import (
	"context"

	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/internal/repositories"
	"facilities-system/pkg/types"
)

type CampusServiceInterface interface {
	GetCampuses(ctx context.Context, filter types.Filter) ([]dto.CampusDTO, uint64, error)
	FindCampus(ctx context.Context, id uint64) (*dto.CampusDTO, error)
	CreateCampus(ctx context.Context, payload dto.CreateCampusDTO) (*dto.CampusDTO, error)
	UpdateCampus(ctx context.Context, id uint64, payload dto.UpdateCampusDTO) (*dto.CampusDTO, error)
	DeleteCampus(ctx context.Context, id uint64) error
}

type CampusService struct {
	campusRepo repositories.CampusRepositoryInterface
	logger     *zap.Logger
}

func NewCampusService(campusRepo repositories.CampusRepositoryInterface, logger *zap.Logger) CampusServiceInterface {
	return &CampusService{campusRepo: campusRepo, logger: logger}
}

func mapCampus(c entities.Campus) dto.CampusDTO {
	return dto.CampusDTO{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: formatTimestamp(c.CreatedAt),
		UpdatedAt: formatTimestamp(c.UpdatedAt),
	}
}

func (s *CampusService) GetCampuses(ctx context.Context, filter types.Filter) ([]dto.CampusDTO, uint64, error) {
	campuses, total, err := s.campusRepo.GetCampuses(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.CampusDTO, 0, len(campuses))
	for _, c := range campuses {
		dtos = append(dtos, mapCampus(c))
	}
	return dtos, total, nil
}

func (s *CampusService) FindCampus(ctx context.Context, id uint64) (*dto.CampusDTO, error) {
	c, err := s.campusRepo.FindCampus(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapCampus(*c)
	return &result, nil
}

func (s *CampusService) CreateCampus(ctx context.Context, payload dto.CreateCampusDTO) (*dto.CampusDTO, error) {
	id, err := s.campusRepo.CreateCampus(ctx, entities.Campus{Name: payload.Name})
	if err != nil {
		return nil, err
	}
	s.logger.Info("campus criado", zap.Uint64("id", id), zap.String("name", payload.Name))
	return s.FindCampus(ctx, id)
}

func (s *CampusService) UpdateCampus(ctx context.Context, id uint64, payload dto.UpdateCampusDTO) (*dto.CampusDTO, error) {
	existing, err := s.campusRepo.FindCampus(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if err := s.campusRepo.UpdateCampus(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindCampus(ctx, id)
}

func (s *CampusService) DeleteCampus(ctx context.Context, id uint64) error {
	return s.campusRepo.DeleteCampus(ctx, id)
}
