package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/hostalqori/hotel_management_app/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxRoomRepository struct {
	db dbtx
}

// Ensure PgxRoomRepository implements portsrepo.RoomRepositoryFacade
var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

func toDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:     m.RoomID,
		Number:     m.Number,
		RoomTypeID: m.RoomTypeID,
		IsActive:   m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainRoomType(m models.RoomType) domain.RoomType {
	return domain.RoomType{
		RoomTypeID:   m.RoomTypeID,
		Name:         m.Name,
		NightlyPrice: m.NightlyPrice,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxRoomRepository) FindActiveRooms(ctx context.Context) ([]domain.Room, error) {
	query := `
        SELECT room_id, number, room_type_id, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM rooms
        WHERE is_active = TRUE
        ORDER BY number;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active rooms: %w", err)
	}
	defer rows.Close()

	result := []domain.Room{}
	for rows.Next() {
		var m models.Room
		err := rows.Scan(
			&m.RoomID,
			&m.Number,
			&m.RoomTypeID,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		result = append(result, toDomainRoom(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxRoomRepository) FindActiveRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	query := `
        SELECT room_type_id, name, nightly_price, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM room_types
        WHERE is_active = TRUE
        ORDER BY nightly_price;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active room types: %w", err)
	}
	defer rows.Close()

	result := []domain.RoomType{}
	for rows.Next() {
		var m models.RoomType
		err := rows.Scan(
			&m.RoomTypeID,
			&m.Name,
			&m.NightlyPrice,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room type row: %w", err)
		}
		result = append(result, toDomainRoomType(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating room type rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxRoomRepository) FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	query := `
        SELECT room_type_id, name, nightly_price, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM room_types
        WHERE room_type_id = $1;
    `
	var m models.RoomType
	err := r.db.QueryRow(ctx, query, roomTypeID).Scan(
		&m.RoomTypeID,
		&m.Name,
		&m.NightlyPrice,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room type %s: %w", roomTypeID, err)
	}
	d := toDomainRoomType(m)
	return &d, nil
}
