package repositories

import (
	"context"
	"time"
)

// Provider bundles every repository facade the import engine touches. A
// Provider handed to a transaction function is bound to that transaction, so
// all work inside shares one atomic commit/rollback.
type Provider interface {
	Guests() GuestRepositoryFacade
	Rooms() RoomRepositoryFacade
	Products() ProductRepositoryFacade
	Staff() StaffRepositoryFacade
	Reservations() ReservationRepositoryFacade
	Payments() PaymentRepositoryFacade
	Audit() AuditRepositoryFacade
}

// TransactionManager runs work inside a single database transaction with a
// bounded timeout. Spreadsheet imports are large and retried, so timeouts are
// generous (minutes); an error or timeout rolls back everything fn did.
type TransactionManager interface {
	Provider

	// WithinTransaction begins a transaction, derives a deadline context, and
	// commits if fn returns nil or rolls back otherwise.
	WithinTransaction(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, repos Provider) error) error
}
