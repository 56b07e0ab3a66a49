package repositories

import (
	"context"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
)

// AuditWriter defines write operations on the append-only audit log. The import
// engine treats audit persistence as fire-and-forget: failures surface only as
// record-level errors.
type AuditWriter interface {
	// SaveAuditEntry appends one audit record.
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error

	// DeleteAuditEntries removes the creation audit entries for the given
	// entities, returning how many were removed.
	DeleteAuditEntries(ctx context.Context, entityIDs []string, entityType string) (int64, error)
}

// AuditRepositoryFacade is the audit collaborator surface.
type AuditRepositoryFacade interface {
	AuditWriter
}
