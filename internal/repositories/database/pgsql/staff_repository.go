package pgsql

import (
	"context"
	"fmt"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/hostalqori/hotel_management_app/internal/models"
)

type PgxStaffRepository struct {
	db dbtx
}

// Ensure PgxStaffRepository implements portsrepo.StaffRepositoryFacade
var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

func toDomainStaffUser(m models.StaffUser) domain.StaffUser {
	return domain.StaffUser{
		UserID:   m.UserID,
		Name:     m.Name,
		Role:     domain.StaffRole(m.Role),
		IsActive: m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxStaffRepository) FindActiveStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error) {
	query := `
        SELECT user_id, name, role, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM staff_users
        WHERE is_active = TRUE AND role = $1
        ORDER BY name;
    `
	rows, err := r.db.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to query staff by role %s: %w", role, err)
	}
	defer rows.Close()

	result := []domain.StaffUser{}
	for rows.Next() {
		var m models.StaffUser
		err := rows.Scan(
			&m.UserID,
			&m.Name,
			&m.Role,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		result = append(result, toDomainStaffUser(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", rows.Err())
	}
	return result, nil
}
