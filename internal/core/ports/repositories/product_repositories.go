package repositories

import (
	"context"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
)

// ProductReader defines read operations on the product and service catalogs.
type ProductReader interface {
	// FindActiveProductsByCost retrieves active products ordered by ascending
	// unit cost, the order the remainder-distribution algorithm consumes them in.
	FindActiveProductsByCost(ctx context.Context) ([]domain.Product, error)

	// FindServiceByName retrieves an active hotel service by case-insensitive
	// name match (used to locate the designated breakfast service).
	FindServiceByName(ctx context.Context, name string) (*domain.HotelService, error)
}

// ProductRepositoryFacade is the product/service collaborator surface.
type ProductRepositoryFacade interface {
	ProductReader
}
