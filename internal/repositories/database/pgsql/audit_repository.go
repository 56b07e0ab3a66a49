package pgsql

import (
	"context"
	"fmt"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
)

type PgxAuditRepository struct {
	db dbtx
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	query := `
        INSERT INTO audit_log (
            entry_id, entity_id, entity_type, action, performed_by_id, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID,
		entry.EntityID,
		entry.EntityType,
		string(entry.Action),
		entry.PerformedByID,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

func (r *PgxAuditRepository) DeleteAuditEntries(ctx context.Context, entityIDs []string, entityType string) (int64, error) {
	if len(entityIDs) == 0 {
		return 0, nil
	}
	query := `DELETE FROM audit_log WHERE entity_type = $1 AND entity_id = ANY($2);`
	tag, err := r.db.Exec(ctx, query, entityType, entityIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete audit entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
