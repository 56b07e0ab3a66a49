package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/hostalqori/hotel_management_app/internal/models"
	"github.com/hostalqori/hotel_management_app/internal/utils/normalize"
	"github.com/jackc/pgx/v5"
)

type PgxGuestRepository struct {
	db dbtx
}

// Ensure PgxGuestRepository implements portsrepo.GuestRepositoryFacade
var _ portsrepo.GuestRepositoryFacade = (*PgxGuestRepository)(nil)

func toModelGuest(d domain.GuestProfile) models.Guest {
	return models.Guest{
		GuestID:        d.GuestID,
		DocumentType:   string(d.DocumentType),
		DocumentNumber: d.DocumentNumber,
		FullName:       d.FullName,
		FoldedName:     normalize.FoldName(d.FullName),
		Address:        nullString(d.Address),
		Phone:          nullString(d.Phone),
		MaritalStatus:  nullString(string(d.MaritalStatus)),
		Country:        nullString(d.Country),
		Department:     nullString(d.Department),
		IsBlacklisted:  d.IsBlacklisted,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainGuest(m models.Guest) domain.GuestProfile {
	return domain.GuestProfile{
		GuestID:        m.GuestID,
		DocumentType:   domain.DocumentType(m.DocumentType),
		DocumentNumber: m.DocumentNumber,
		FullName:       m.FullName,
		Address:        m.Address.String,
		Phone:          m.Phone.String,
		MaritalStatus:  domain.MaritalStatus(m.MaritalStatus.String),
		Country:        m.Country.String,
		Department:     m.Department.String,
		IsBlacklisted:  m.IsBlacklisted,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const guestColumns = `guest_id, document_type, document_number, full_name, address, phone,
	marital_status, country, department, is_blacklisted,
	created_at, created_by, last_updated_at, last_updated_by`

func scanGuest(row pgx.Row) (models.Guest, error) {
	var m models.Guest
	err := row.Scan(
		&m.GuestID,
		&m.DocumentType,
		&m.DocumentNumber,
		&m.FullName,
		&m.Address,
		&m.Phone,
		&m.MaritalStatus,
		&m.Country,
		&m.Department,
		&m.IsBlacklisted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxGuestRepository) SaveGuest(ctx context.Context, guest domain.GuestProfile) error {
	m := toModelGuest(guest)
	query := `
        INSERT INTO guests (guest_id, document_type, document_number, full_name, folded_name,
            address, phone, marital_status, country, department, is_blacklisted,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.db.Exec(ctx, query,
		m.GuestID,
		m.DocumentType,
		m.DocumentNumber,
		m.FullName,
		m.FoldedName,
		m.Address,
		m.Phone,
		m.MaritalStatus,
		m.Country,
		m.Department,
		m.IsBlacklisted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("guest document %s: %w", guest.DocumentNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save guest: %w", err)
	}
	return nil
}

func (r *PgxGuestRepository) FindGuestByDocument(ctx context.Context, documentNumber string) (*domain.GuestProfile, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE document_number = $1;`
	m, err := scanGuest(r.db.QueryRow(ctx, query, documentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find guest by document %s: %w", documentNumber, err)
	}
	d := toDomainGuest(m)
	return &d, nil
}

func (r *PgxGuestRepository) FindGuestCandidates(ctx context.Context, docFragment string, nameFragment string) ([]domain.GuestProfile, error) {
	query := `
        SELECT ` + guestColumns + `
        FROM guests
        WHERE ($1 <> '' AND document_number LIKE '%' || $1 || '%')
           OR ($2 <> '' AND folded_name LIKE '%' || $2 || '%')
        ORDER BY created_at
        LIMIT 200;
    `
	rows, err := r.db.Query(ctx, query, docFragment, nameFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to query guest candidates: %w", err)
	}
	defer rows.Close()

	guests := []domain.GuestProfile{}
	for rows.Next() {
		m, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest row: %w", err)
		}
		guests = append(guests, toDomainGuest(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating guest rows: %w", rows.Err())
	}
	return guests, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
