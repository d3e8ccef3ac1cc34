package services

import (
	"context"

	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/internal/repositories"
	"facilities-system/pkg/types"
)

type CenterServiceInterface interface {
	GetCenters(ctx context.Context, filter types.Filter) ([]dto.CenterDTO, uint64, error)
	FindCenter(ctx context.Context, id uint64) (*dto.CenterDTO, error)
	CreateCenter(ctx context.Context, payload dto.CreateCenterDTO) (*dto.CenterDTO, error)
	UpdateCenter(ctx context.Context, id uint64, payload dto.UpdateCenterDTO) (*dto.CenterDTO, error)
	DeleteCenter(ctx context.Context, id uint64) error
}

type CenterService struct {
	centerRepo repositories.CenterRepositoryInterface
	campusRepo repositories.CampusRepositoryInterface
	logger     *zap.Logger
}

func NewCenterService(
	centerRepo repositories.CenterRepositoryInterface,
	campusRepo repositories.CampusRepositoryInterface,
	logger *zap.Logger,
) CenterServiceInterface {
	return &CenterService{centerRepo: centerRepo, campusRepo: campusRepo, logger: logger}
}

func mapCenter(c entities.Center) dto.CenterDTO {
	result := dto.CenterDTO{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: formatTimestamp(c.CreatedAt),
		UpdatedAt: formatTimestamp(c.UpdatedAt),
	}
	if c.Campus != nil {
		result.Campus = dto.ShortCampusDTO{ID: c.Campus.ID, Name: c.Campus.Name}
	}
	return result
}

func (s *CenterService) GetCenters(ctx context.Context, filter types.Filter) ([]dto.CenterDTO, uint64, error) {
	centers, total, err := s.centerRepo.GetCenters(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.CenterDTO, 0, len(centers))
	for _, c := range centers {
		dtos = append(dtos, mapCenter(c))
	}
	return dtos, total, nil
}

func (s *CenterService) FindCenter(ctx context.Context, id uint64) (*dto.CenterDTO, error) {
	c, err := s.centerRepo.FindCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapCenter(*c)
	return &result, nil
}

func (s *CenterService) CreateCenter(ctx context.Context, payload dto.CreateCenterDTO) (*dto.CenterDTO, error) {
	if _, err := s.campusRepo.FindCampus(ctx, payload.CampusID); err != nil {
		return nil, err
	}
	id, err := s.centerRepo.CreateCenter(ctx, entities.Center{Name: payload.Name, CampusID: payload.CampusID})
	if err != nil {
		return nil, err
	}
	s.logger.Info("centro criado", zap.Uint64("id", id), zap.String("name", payload.Name))
	return s.FindCenter(ctx, id)
}

func (s *CenterService) UpdateCenter(ctx context.Context, id uint64, payload dto.UpdateCenterDTO) (*dto.CenterDTO, error) {
	existing, err := s.centerRepo.FindCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.CampusID != nil {
		if _, err := s.campusRepo.FindCampus(ctx, *payload.CampusID); err != nil {
			return nil, err
		}
		existing.CampusID = *payload.CampusID
	}
	if err := s.centerRepo.UpdateCenter(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindCenter(ctx, id)
}

func (s *CenterService) DeleteCenter(ctx context.Context, id uint64) error {
	return s.centerRepo.DeleteCenter(ctx, id)
}
