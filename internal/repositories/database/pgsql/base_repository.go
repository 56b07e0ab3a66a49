package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// dbtx is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so every
// repository can run either directly against the pool or inside a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RepositoryProvider bundles all pgx repositories over one connection source
// and implements the transaction manager port.
type RepositoryProvider struct {
	pool *pgxpool.Pool
	db   dbtx

	guests       *PgxGuestRepository
	rooms        *PgxRoomRepository
	products     *PgxProductRepository
	staff        *PgxStaffRepository
	reservations *PgxReservationRepository
	payments     *PgxPaymentRepository
	audit        *PgxAuditRepository
}

// NewRepositoryProvider creates the pool-backed repository set.
func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return newProvider(pool, pool)
}

func newProvider(pool *pgxpool.Pool, db dbtx) *RepositoryProvider {
	return &RepositoryProvider{
		pool:         pool,
		db:           db,
		guests:       &PgxGuestRepository{db: db},
		rooms:        &PgxRoomRepository{db: db},
		products:     &PgxProductRepository{db: db},
		staff:        &PgxStaffRepository{db: db},
		reservations: &PgxReservationRepository{db: db},
		payments:     &PgxPaymentRepository{db: db},
		audit:        &PgxAuditRepository{db: db},
	}
}

// Ensure RepositoryProvider implements the transaction manager port.
var _ portsrepo.TransactionManager = (*RepositoryProvider)(nil)

func (p *RepositoryProvider) Guests() portsrepo.GuestRepositoryFacade        { return p.guests }
func (p *RepositoryProvider) Rooms() portsrepo.RoomRepositoryFacade          { return p.rooms }
func (p *RepositoryProvider) Products() portsrepo.ProductRepositoryFacade    { return p.products }
func (p *RepositoryProvider) Staff() portsrepo.StaffRepositoryFacade         { return p.staff }
func (p *RepositoryProvider) Reservations() portsrepo.ReservationRepositoryFacade {
	return p.reservations
}
func (p *RepositoryProvider) Payments() portsrepo.PaymentRepositoryFacade { return p.payments }
func (p *RepositoryProvider) Audit() portsrepo.AuditRepositoryFacade      { return p.audit }

// WithinTransaction begins a transaction with a deadline, hands fn a provider
// bound to it, and commits or rolls back accordingly. Timeouts here are
// generous: one spreadsheet row can touch seven tables.
func (p *RepositoryProvider) WithinTransaction(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, repos portsrepo.Provider) error) error {
	if p.pool == nil {
		return fmt.Errorf("provider is already transaction-bound, nested transactions are not supported")
	}
	txCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		txCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := p.pool.Begin(txCtx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(txCtx, newProvider(nil, tx)); err != nil {
		_ = tx.Rollback(txCtx)
		return err
	}

	if err := tx.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
