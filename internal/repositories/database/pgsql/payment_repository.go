package pgsql

import (
	"context"
	"fmt"

	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/hostalqori/hotel_management_app/internal/models"
)

type PgxPaymentRepository struct {
	db dbtx
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func toModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		Code:          d.Code,
		ReservationID: d.ReservationID,
		Amount:        d.Amount,
		AmountPaid:    d.AmountPaid,
		Method:        string(d.Method),
		Receipt:       string(d.Receipt),
		Status:        string(d.Status),
		PaidAt:        d.PaidAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toModelLineItem(d domain.PaymentLineItem) models.PaymentLineItem {
	return models.PaymentLineItem{
		LineItemID:  d.LineItemID,
		PaymentID:   d.PaymentID,
		Kind:        string(d.Kind),
		Description: d.Description,
		UnitPrice:   d.UnitPrice,
		Quantity:    d.Quantity,
		Subtotal:    d.Subtotal,
		RefID:       nullString(d.RefID),
		OccurredAt:  d.OccurredAt,
	}
}

// MaxPaymentSequence scans the numeric suffix of codes issued in a year.
// Codes follow the "R<year>-<sequence>" shape, so "R2014-0042" yields 42.
func (r *PgxPaymentRepository) MaxPaymentSequence(ctx context.Context, year int) (int, error) {
	query := `
        SELECT COALESCE(MAX(CAST(SPLIT_PART(code, '-', 2) AS INTEGER)), 0)
        FROM payments
        WHERE code LIKE $1;
    `
	prefix := fmt.Sprintf("R%d-%%", year)
	var max int
	if err := r.db.QueryRow(ctx, query, prefix).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to read max payment sequence for %d: %w", year, err)
	}
	return max, nil
}

func (r *PgxPaymentRepository) PaymentCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payments WHERE code = $1);`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payment code %s: %w", code, err)
	}
	return exists, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, items []domain.PaymentLineItem) error {
	m := toModelPayment(payment)
	query := `
        INSERT INTO payments (
            payment_id, code, reservation_id, amount, amount_paid,
            method, receipt_type, status, paid_at,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		m.PaymentID,
		m.Code,
		m.ReservationID,
		m.Amount,
		m.AmountPaid,
		m.Method,
		m.Receipt,
		m.Status,
		m.PaidAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("payment code %s already taken: %w", payment.Code, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	itemQuery := `
        INSERT INTO payment_line_items (
            line_item_id, payment_id, kind, description,
            unit_price, quantity, subtotal, ref_id, occurred_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	for _, item := range items {
		im := toModelLineItem(item)
		_, err := r.db.Exec(ctx, itemQuery,
			im.LineItemID,
			im.PaymentID,
			im.Kind,
			im.Description,
			im.UnitPrice,
			im.Quantity,
			im.Subtotal,
			im.RefID,
			im.OccurredAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment line item: %w", err)
		}
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePaymentsByReservations(ctx context.Context, reservationIDs []string) (int64, int64, error) {
	if len(reservationIDs) == 0 {
		return 0, 0, nil
	}
	itemTag, err := r.db.Exec(ctx, `
        DELETE FROM payment_line_items
        WHERE payment_id IN (SELECT payment_id FROM payments WHERE reservation_id = ANY($1));
    `, reservationIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete payment line items: %w", err)
	}
	payTag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE reservation_id = ANY($1);`, reservationIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete payments: %w", err)
	}
	return payTag.RowsAffected(), itemTag.RowsAffected(), nil
}
