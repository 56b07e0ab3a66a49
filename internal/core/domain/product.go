package domain

import "github.com/shopspring/decimal"

// Product is a commercial item sold at the front desk (minibar, sundries).
type Product struct {
	ProductID string          `json:"productID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}

// HotelService is a chargeable service (breakfast, laundry). The import engine
// looks up the designated breakfast service by name when distributing payment
// remainders.
type HotelService struct {
	ServiceID string          `json:"serviceID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}
