package repositories

import (
	"context"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
)

// PaymentReader defines read operations for payments.
type PaymentReader interface {
	// MaxPaymentSequence returns the highest sequence number already issued for
	// a year's payment codes, zero when none exist.
	MaxPaymentSequence(ctx context.Context, year int) (int, error)

	// PaymentCodeExists reports whether a payment code is already taken.
	PaymentCodeExists(ctx context.Context, code string) (bool, error)
}

// PaymentWriter defines write operations for payments and their line items.
type PaymentWriter interface {
	// SavePayment persists a payment together with its line items.
	SavePayment(ctx context.Context, payment domain.Payment, items []domain.PaymentLineItem) error

	// DeletePaymentsByReservations removes payments and their line items for the
	// given reservations, returning (payments, lineItems) deleted.
	DeletePaymentsByReservations(ctx context.Context, reservationIDs []string) (int64, int64, error)
}

// PaymentRepositoryFacade combines the payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
