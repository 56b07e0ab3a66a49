package models

import "github.com/shopspring/decimal"

// Product is the products table row.
type Product struct {
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	UnitCost  decimal.Decimal `db:"unit_cost"`
	IsActive  bool            `db:"is_active"`
	AuditFields
}

// HotelService is the hotel_services table row.
type HotelService struct {
	ServiceID string          `db:"service_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	IsActive  bool            `db:"is_active"`
	AuditFields
}
