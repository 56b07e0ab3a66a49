package repositories

import (
	"context"
	"time"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
)

// ReservationReader defines read operations for reservations.
type ReservationReader interface {
	// FindReservationsByGuest retrieves reservations for a guest with check-in
	// inside [from, to], newest first.
	FindReservationsByGuest(ctx context.Context, guestID string, from, to time.Time) ([]domain.Reservation, error)
}

// ReservationWriter defines write operations for reservations.
type ReservationWriter interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// DeleteReservations removes reservations by ID and returns how many rows
	// were deleted.
	DeleteReservations(ctx context.Context, reservationIDs []string) (int64, error)
}

// ReservationRepositoryFacade combines the reservation repository interfaces.
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
