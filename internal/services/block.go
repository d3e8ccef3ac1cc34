package services

import (
	"context"

	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/internal/repositories"
	"facilities-system/pkg/types"
)

type BlockServiceInterface interface {
	GetBlocks(ctx context.Context, filter types.Filter) ([]dto.BlockDTO, uint64, error)
	FindBlock(ctx context.Context, id uint64) (*dto.BlockDTO, error)
	CreateBlock(ctx context.Context, payload dto.CreateBlockDTO) (*dto.BlockDTO, error)
	UpdateBlock(ctx context.Context, id uint64, payload dto.UpdateBlockDTO) (*dto.BlockDTO, error)
	DeleteBlock(ctx context.Context, id uint64) error
}

type BlockService struct {
	blockRepo      repositories.BlockRepositoryInterface
	departmentRepo repositories.DepartmentRepositoryInterface
	logger         *zap.Logger
}

func NewBlockService(
	blockRepo repositories.BlockRepositoryInterface,
	departmentRepo repositories.DepartmentRepositoryInterface,
	logger *zap.Logger,
) BlockServiceInterface {
	return &BlockService{blockRepo: blockRepo, departmentRepo: departmentRepo, logger: logger}
}

func mapBlock(b entities.Block) dto.BlockDTO {
	result := dto.BlockDTO{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: formatTimestamp(b.CreatedAt),
		UpdatedAt: formatTimestamp(b.UpdatedAt),
	}
	if b.Department != nil {
		result.Department = dto.ShortDepartmentDTO{ID: b.Department.ID, Name: b.Department.Name}
	}
	return result
}

func (s *BlockService) GetBlocks(ctx context.Context, filter types.Filter) ([]dto.BlockDTO, uint64, error) {
	blocks, total, err := s.blockRepo.GetBlocks(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.BlockDTO, 0, len(blocks))
	for _, b := range blocks {
		dtos = append(dtos, mapBlock(b))
	}
	return dtos, total, nil
}

func (s *BlockService) FindBlock(ctx context.Context, id uint64) (*dto.BlockDTO, error) {
	b, err := s.blockRepo.FindBlock(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapBlock(*b)
	return &result, nil
}

func (s *BlockService) CreateBlock(ctx context.Context, payload dto.CreateBlockDTO) (*dto.BlockDTO, error) {
	if _, err := s.departmentRepo.FindDepartment(ctx, payload.DepartmentID); err != nil {
		return nil, err
	}
	id, err := s.blockRepo.CreateBlock(ctx, entities.Block{Name: payload.Name, DepartmentID: payload.DepartmentID})
	if err != nil {
		return nil, err
	}
	s.logger.Info("bloco criado", zap.Uint64("id", id), zap.String("name", payload.Name))
	return s.FindBlock(ctx, id)
}

func (s *BlockService) UpdateBlock(ctx context.Context, id uint64, payload dto.UpdateBlockDTO) (*dto.BlockDTO, error) {
	existing, err := s.blockRepo.FindBlock(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.DepartmentID != nil {
		if _, err := s.departmentRepo.FindDepartment(ctx, *payload.DepartmentID); err != nil {
			return nil, err
		}
		existing.DepartmentID = *payload.DepartmentID
	}
	if err := s.blockRepo.UpdateBlock(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindBlock(ctx, id)
}

func (s *BlockService) DeleteBlock(ctx context.Context, id uint64) error {
	return s.blockRepo.DeleteBlock(ctx, id)
}
