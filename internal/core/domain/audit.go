package domain

import "time"

// AuditAction is the recorded operation on an entity.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditEntry is one append-only audit-log record. The import engine writes one
// CREATE entry per imported reservation and one DELETE entry per reconciled
// removal; it treats the audit collaborator as fire-and-forget.
type AuditEntry struct {
	EntryID       string      `json:"entryID"` // Primary Key (UUID)
	EntityID      string      `json:"entityID"`
	EntityType    string      `json:"entityType"`
	Action        AuditAction `json:"action"`
	PerformedByID string      `json:"performedByID"`
	CreatedAt     time.Time   `json:"createdAt"`
}
