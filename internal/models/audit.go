package models

import "time"

// AuditEntry is the audit_log table row. Append-only.
type AuditEntry struct {
	EntryID       string    `db:"entry_id"`
	EntityID      string    `db:"entity_id"`
	EntityType    string    `db:"entity_type"`
	Action        string    `db:"action"`
	PerformedByID string    `db:"performed_by_id"`
	CreatedAt     time.Time `db:"created_at"`
}
