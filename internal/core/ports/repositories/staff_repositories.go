package repositories

import (
	"context"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
)

// StaffReader defines read operations on staff accounts.
type StaffReader interface {
	// FindActiveStaffByRole retrieves active staff accounts holding a role.
	FindActiveStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error)
}

// StaffRepositoryFacade is the staff collaborator surface.
type StaffRepositoryFacade interface {
	StaffReader
}
