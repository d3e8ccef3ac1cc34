package services

import (
	"context"

	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/entities"
	"facilities-system/internal/repositories"
	"facilities-system/pkg/constants"
	"facilities-system/pkg/types"
	"facilities-system/pkg/utils"
)

type RoomServiceInterface interface {
	GetRooms(ctx context.Context, filter types.Filter) ([]dto.RoomDTO, uint64, error)
	FindRoom(ctx context.Context, id uint64) (*dto.RoomDTO, error)
	CreateRoom(ctx context.Context, payload dto.CreateRoomDTO) (*dto.RoomDTO, error)
	UpdateRoom(ctx context.Context, id uint64, payload dto.UpdateRoomDTO) (*dto.RoomDTO, error)
	DeleteRoom(ctx context.Context, id uint64) error
}

type RoomService struct {
	roomRepo  repositories.RoomRepositoryInterface
	blockRepo repositories.BlockRepositoryInterface
	logger    *zap.Logger
}

func NewRoomService(
	roomRepo repositories.RoomRepositoryInterface,
	blockRepo repositories.BlockRepositoryInterface,
	logger *zap.Logger,
) RoomServiceInterface {
	return &RoomService{roomRepo: roomRepo, blockRepo: blockRepo, logger: logger}
}

func mapRoom(r entities.Room) dto.RoomDTO {
	result := dto.RoomDTO{
		ID:             r.ID,
		Name:           r.Name,
		Kind:           r.Kind,
		LocationDetail: derefString(r.LocationDetail),
		Floor:          derefString(r.Floor),
		AreaM2:         r.AreaM2,
		Occupancy:      r.Occupancy,
		CreatedAt:      formatTimestamp(r.CreatedAt),
		UpdatedAt:      formatTimestamp(r.UpdatedAt),
	}
	if r.Block != nil {
		result.Block = dto.ShortBlockDTO{ID: r.Block.ID, Name: r.Block.Name}
	}
	return result
}

func (s *RoomService) GetRooms(ctx context.Context, filter types.Filter) ([]dto.RoomDTO, uint64, error) {
	rooms, total, err := s.roomRepo.GetRooms(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.RoomDTO, 0, len(rooms))
	for _, r := range rooms {
		dtos = append(dtos, mapRoom(r))
	}
	return dtos, total, nil
}

func (s *RoomService) FindRoom(ctx context.Context, id uint64) (*dto.RoomDTO, error) {
	r, err := s.roomRepo.FindRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapRoom(*r)
	return &result, nil
}

// Campos de variante só são aceitos para ambientes internos; nas demais
// variantes ficam sempre vazios.
func (s *RoomService) CreateRoom(ctx context.Context, payload dto.CreateRoomDTO) (*dto.RoomDTO, error) {
	if _, err := s.blockRepo.FindBlock(ctx, payload.BlockID); err != nil {
		return nil, err
	}

	room := entities.Room{
		Name:    payload.Name,
		Kind:    payload.Kind,
		BlockID: payload.BlockID,
	}
	if payload.LocationDetail.Valid && payload.LocationDetail.String != "" {
		room.LocationDetail = utils.StringPtr(payload.LocationDetail.String)
	}
	if payload.Kind == constants.RoomKindInternal {
		if payload.Floor.Valid && payload.Floor.String != "" {
			room.Floor = utils.StringPtr(payload.Floor.String)
		}
		if payload.AreaM2.Valid {
			v := payload.AreaM2.Float64
			room.AreaM2 = &v
		}
		if payload.Occupancy.Valid {
			v := int(payload.Occupancy.Int)
			room.Occupancy = &v
		}
	}

	id, err := s.roomRepo.CreateRoom(ctx, room)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ambiente criado", zap.Uint64("id", id), zap.String("kind", payload.Kind))
	return s.FindRoom(ctx, id)
}

func (s *RoomService) UpdateRoom(ctx context.Context, id uint64, payload dto.UpdateRoomDTO) (*dto.RoomDTO, error) {
	existing, err := s.roomRepo.FindRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.BlockID != nil {
		if _, err := s.blockRepo.FindBlock(ctx, *payload.BlockID); err != nil {
			return nil, err
		}
		existing.BlockID = *payload.BlockID
	}
	if payload.LocationDetail.Valid {
		if payload.LocationDetail.String == "" {
			existing.LocationDetail = nil
		} else {
			existing.LocationDetail = utils.StringPtr(payload.LocationDetail.String)
		}
	}
	if existing.Kind == constants.RoomKindInternal {
		if payload.Floor.Valid {
			if payload.Floor.String == "" {
				existing.Floor = nil
			} else {
				existing.Floor = utils.StringPtr(payload.Floor.String)
			}
		}
		if payload.AreaM2.Valid {
			v := payload.AreaM2.Float64
			existing.AreaM2 = &v
		}
		if payload.Occupancy.Valid {
			v := int(payload.Occupancy.Int)
			existing.Occupancy = &v
		}
	}

	if err := s.roomRepo.UpdateRoom(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.FindRoom(ctx, id)
}

func (s *RoomService) DeleteRoom(ctx context.Context, id uint64) error {
	return s.roomRepo.DeleteRoom(ctx, id)
}
