package domain

// StaffRole is the job role of a staff account.
type StaffRole string

const (
	RoleAdmin        StaffRole = "ADMIN"
	RoleReceptionist StaffRole = "RECEPTIONIST"
	RoleHousekeeping StaffRole = "HOUSEKEEPING"
)

// StaffUser is an employee account. The import engine only reads these to pick a
// receptionist for imported reservations.
type StaffUser struct {
	UserID   string    `json:"userID"` // Primary Key (UUID)
	Name     string    `json:"name"`
	Role     StaffRole `json:"role"`
	IsActive bool      `json:"isActive"`
	AuditFields
}
