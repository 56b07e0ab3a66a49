package models

// StaffUser is the staff_users table row.
type StaffUser struct {
	UserID   string `db:"user_id"`
	Name     string `db:"name"`
	Role     string `db:"role"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
