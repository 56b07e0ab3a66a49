package repositories

import (
	"context"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
)

// GuestReader defines read operations for guest profiles.
type GuestReader interface {
	// FindGuestByDocument retrieves a guest by exact normalized document number.
	FindGuestByDocument(ctx context.Context, documentNumber string) (*domain.GuestProfile, error)

	// FindGuestCandidates retrieves guests whose document number contains
	// docFragment or whose folded name contains nameFragment, for fuzzy
	// identity resolution. Either fragment may be empty.
	FindGuestCandidates(ctx context.Context, docFragment string, nameFragment string) ([]domain.GuestProfile, error)
}

// GuestWriter defines write operations for guest profiles.
type GuestWriter interface {
	// SaveGuest persists a new guest profile.
	SaveGuest(ctx context.Context, guest domain.GuestProfile) error
}

// GuestRepositoryFacade combines all guest repository interfaces. Note there is
// deliberately no delete operation: guest master records survive reconciliation.
type GuestRepositoryFacade interface {
	GuestReader
	GuestWriter
}
