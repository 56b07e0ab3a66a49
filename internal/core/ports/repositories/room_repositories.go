package repositories

import (
	"context"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
)

// RoomReader defines the read operations the import engine needs from the room
// collaborator. The active sets are small, so the selection cascade works over
// full lists rather than pushing heuristics into SQL.
type RoomReader interface {
	// FindActiveRooms retrieves every active room.
	FindActiveRooms(ctx context.Context) ([]domain.Room, error)

	// FindActiveRoomTypes retrieves every active room type.
	FindActiveRoomTypes(ctx context.Context) ([]domain.RoomType, error)

	// FindRoomTypeByID retrieves a single room type.
	FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error)
}

// RoomRepositoryFacade is the room collaborator surface; this engine never
// writes rooms.
type RoomRepositoryFacade interface {
	RoomReader
}
