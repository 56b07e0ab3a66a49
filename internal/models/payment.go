package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the payments table row.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	Code          string          `db:"code"` // UNIQUE
	ReservationID string          `db:"reservation_id"`
	Amount        decimal.Decimal `db:"amount"`
	AmountPaid    decimal.Decimal `db:"amount_paid"`
	Method        string          `db:"method"`
	Receipt       string          `db:"receipt_type"`
	Status        string          `db:"status"`
	PaidAt        time.Time       `db:"paid_at"`
	AuditFields
}

// PaymentLineItem is the payment_line_items table row.
type PaymentLineItem struct {
	LineItemID  string          `db:"line_item_id"`
	PaymentID   string          `db:"payment_id"`
	Kind        string          `db:"kind"`
	Description string          `db:"description"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	RefID       sql.NullString  `db:"ref_id"`
	OccurredAt  time.Time       `db:"occurred_at"`
}
