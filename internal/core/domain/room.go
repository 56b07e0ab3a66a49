package domain

import "github.com/shopspring/decimal"

// RoomType groups rooms that share a label and nightly price.
type RoomType struct {
	RoomTypeID   string          `json:"roomTypeID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	NightlyPrice decimal.Decimal `json:"nightlyPrice"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// Room is a physical room available for reservations.
type Room struct {
	RoomID     string `json:"roomID"` // Primary Key (UUID)
	Number     string `json:"number"` // Door number, unique among active rooms
	RoomTypeID string `json:"roomTypeID"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
