package models

import "github.com/shopspring/decimal"

// RoomType is the room_types table row.
type RoomType struct {
	RoomTypeID   string          `db:"room_type_id"`
	Name         string          `db:"name"`
	NightlyPrice decimal.Decimal `db:"nightly_price"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}

// Room is the rooms table row.
type Room struct {
	RoomID     string `db:"room_id"`
	Number     string `db:"number"`
	RoomTypeID string `db:"room_type_id"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
