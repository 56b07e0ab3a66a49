package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/hostalqori/hotel_management_app/internal/models"
)

type PgxReservationRepository struct {
	db dbtx
}

// Ensure PgxReservationRepository implements portsrepo.ReservationRepositoryFacade
var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

func toModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID: d.ReservationID,
		GuestID:       d.GuestID,
		RoomID:        d.RoomID,
		StaffID:       d.StaffID,
		CheckIn:       d.Stay.CheckIn,
		CheckOut:      d.Stay.CheckOut,
		Status:        string(d.Status),
		Origin:        nullString(d.Origin),
		IsActive:      d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID: m.ReservationID,
		GuestID:       m.GuestID,
		RoomID:        m.RoomID,
		StaffID:       m.StaffID,
		Stay: domain.StayPeriod{
			CheckIn:  m.CheckIn,
			CheckOut: m.CheckOut,
		},
		Status:   domain.ReservationStatus(m.Status),
		Origin:   m.Origin.String,
		IsActive: m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	m := toModelReservation(reservation)
	query := `
        INSERT INTO reservations (
            reservation_id, guest_id, room_id, staff_id,
            check_in, check_out, status, origin, is_active,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		m.ReservationID,
		m.GuestID,
		m.RoomID,
		m.StaffID,
		m.CheckIn,
		m.CheckOut,
		m.Status,
		m.Origin,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (r *PgxReservationRepository) FindReservationsByGuest(ctx context.Context, guestID string, from, to time.Time) ([]domain.Reservation, error) {
	query := `
        SELECT reservation_id, guest_id, room_id, staff_id,
               check_in, check_out, status, origin, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM reservations
        WHERE guest_id = $1 AND check_in BETWEEN $2 AND $3
        ORDER BY check_in DESC;
    `
	rows, err := r.db.Query(ctx, query, guestID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for guest: %w", err)
	}
	defer rows.Close()

	result := []domain.Reservation{}
	for rows.Next() {
		var m models.Reservation
		err := rows.Scan(
			&m.ReservationID,
			&m.GuestID,
			&m.RoomID,
			&m.StaffID,
			&m.CheckIn,
			&m.CheckOut,
			&m.Status,
			&m.Origin,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		result = append(result, toDomainReservation(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxReservationRepository) DeleteReservations(ctx context.Context, reservationIDs []string) (int64, error) {
	if len(reservationIDs) == 0 {
		return 0, nil
	}
	query := `DELETE FROM reservations WHERE reservation_id = ANY($1);`
	tag, err := r.db.Exec(ctx, query, reservationIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reservations: %w", err)
	}
	return tag.RowsAffected(), nil
}
