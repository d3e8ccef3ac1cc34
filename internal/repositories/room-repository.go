package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"facilities-system/internal/entities"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/types"
)

const roomColumns = `r.id, r.name, r.kind, r.block_id, r.location_detail,
	r.floor, r.area_m2, r.occupancy, r.created_at, r.updated_at, b.id, b.name`

var roomFieldMap = map[string]string{
	"id":       "r.id",
	"kind":     "r.kind",
	"block_id": "r.block_id",
	"name":     "r.name",
}

type RoomRepositoryInterface interface {
	GetRooms(ctx context.Context, filter types.Filter) ([]entities.Room, uint64, error)
	FindRoom(ctx context.Context, id uint64) (*entities.Room, error)
	CreateRoom(ctx context.Context, room entities.Room) (uint64, error)
	UpdateRoom(ctx context.Context, id uint64, room entities.Room) error
	DeleteRoom(ctx context.Context, id uint64) error
}

type RoomRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRoomRepository(storage *pgxpool.Pool, logger *zap.Logger) RoomRepositoryInterface {
	return &RoomRepository{storage: storage, logger: logger}
}

func scanRoom(row pgx.Row) (*entities.Room, error) {
	var r entities.Room
	var b entities.Block

	err := row.Scan(
		&r.ID, &r.Name, &r.Kind, &r.BlockID, &r.LocationDetail,
		&r.Floor, &r.AreaM2, &r.Occupancy, &r.CreatedAt, &r.UpdatedAt,
		&b.ID, &b.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear ambiente: %w", err)
	}

	r.Block = &b
	return &r, nil
}

func (r *RoomRepository) GetRooms(ctx context.Context, filter types.Filter) ([]entities.Room, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(roomColumns).
		From("rooms r").
		Join("blocks b ON b.id = r.block_id")

	countQuery := psql.Select("COUNT(*)").
		From("rooms r").
		Join("blocks b ON b.id = r.block_id")

	for field, value := range filter.Filter {
		column, ok := roomFieldMap[field]
		if !ok {
			continue
		}
		raw := fmt.Sprintf("%v", value)
		if strings.Contains(raw, ",") {
			values := strings.Split(raw, ",")
			base = base.Where(sq.Eq{column: values})
			countQuery = countQuery.Where(sq.Eq{column: values})
		} else {
			base = base.Where(sq.Eq{column: raw})
			countQuery = countQuery.Where(sq.Eq{column: raw})
		}
	}

	if filter.Search != "" {
		cond := sq.ILike{"r.name": "%" + filter.Search + "%"}
		base = base.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	orderBy := "r.name ASC"
	for field, direction := range filter.Sort {
		if column, ok := roomFieldMap[field]; ok {
			orderBy = fmt.Sprintf("%s %s", column, strings.ToUpper(direction))
			break
		}
	}
	base = base.OrderBy(orderBy).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	var total uint64
	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar ambientes: %w", err)
	}

	querySQL, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar ambientes: %w", err)
	}
	defer rows.Close()

	var rooms []entities.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, total, rows.Err()
}

func (r *RoomRepository) FindRoom(ctx context.Context, id uint64) (*entities.Room, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM rooms r
			JOIN blocks b ON b.id = r.block_id
		WHERE r.id = $1
	`, roomColumns)

	return scanRoom(r.storage.QueryRow(ctx, query, id))
}

func (r *RoomRepository) CreateRoom(ctx context.Context, room entities.Room) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO rooms (name, kind, block_id, location_detail, floor, area_m2, occupancy)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, room.Name, room.Kind, room.BlockID, room.LocationDetail,
		room.Floor, room.AreaM2, room.Occupancy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar ambiente: %w", err)
	}
	return id, nil
}

func (r *RoomRepository) UpdateRoom(ctx context.Context, id uint64, room entities.Room) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE rooms
		SET name = $1, block_id = $2, location_detail = $3, floor = $4,
			area_m2 = $5, occupancy = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`, room.Name, room.BlockID, room.LocationDetail, room.Floor,
		room.AreaM2, room.Occupancy, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar ambiente: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoomRepository) DeleteRoom(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir ambiente: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
