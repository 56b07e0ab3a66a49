package domain

import "time"

// ReservationStatus tracks the lifecycle of a stay.
type ReservationStatus string

const (
	StatusReserved   ReservationStatus = "RESERVED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCancelled  ReservationStatus = "CANCELLED"
)

// OriginImported tags reservations created by the legacy spreadsheet import so the
// reconcile path can scope deletions to them and leave manual records untouched.
const OriginImported = "imported"

// StayPeriod is one check-in/check-out interval. Invariant: CheckOut is strictly
// after CheckIn.
type StayPeriod struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// Nights returns the whole number of nights in the period, never below one.
func (p StayPeriod) Nights() int {
	n := int(p.CheckOut.Sub(p.CheckIn).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

// Reservation ties a guest to a room for a stay period.
type Reservation struct {
	ReservationID string            `json:"reservationID"` // Primary Key (UUID)
	GuestID       string            `json:"guestID"`       // FK -> guests.guest_id
	RoomID        string            `json:"roomID"`        // FK -> rooms.room_id
	StaffID       string            `json:"staffID"`       // FK -> staff_users.user_id (receptionist)
	Stay          StayPeriod        `json:"stay"`
	Status        ReservationStatus `json:"status"`
	Origin        string            `json:"origin,omitempty"`
	IsActive      bool              `json:"isActive"`
	AuditFields
}
