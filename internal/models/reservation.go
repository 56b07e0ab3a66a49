package models

import (
	"database/sql"
	"time"
)

// Reservation is the reservations table row.
type Reservation struct {
	ReservationID string         `db:"reservation_id"`
	GuestID       string         `db:"guest_id"`
	RoomID        string         `db:"room_id"`
	StaffID       string         `db:"staff_id"`
	CheckIn       time.Time      `db:"check_in"`
	CheckOut      time.Time      `db:"check_out"`
	Status        string         `db:"status"`
	Origin        sql.NullString `db:"origin"`
	IsActive      bool           `db:"is_active"`
	AuditFields
}
