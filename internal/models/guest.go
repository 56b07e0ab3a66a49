package models

import "database/sql"

// Guest is the guests table row.
type Guest struct {
	GuestID        string         `db:"guest_id"`
	DocumentType   string         `db:"document_type"`
	DocumentNumber string         `db:"document_number"` // UNIQUE
	FullName       string         `db:"full_name"`
	FoldedName     string         `db:"folded_name"` // lower-case, accent-stripped, for fuzzy lookups
	Address        sql.NullString `db:"address"`
	Phone          sql.NullString `db:"phone"`
	MaritalStatus  sql.NullString `db:"marital_status"`
	Country        sql.NullString `db:"country"`
	Department     sql.NullString `db:"department"`
	IsBlacklisted  bool           `db:"is_blacklisted"`
	AuditFields
}
