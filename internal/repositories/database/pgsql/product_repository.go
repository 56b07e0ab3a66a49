package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/hostalqori/hotel_management_app/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxProductRepository struct {
	db dbtx
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID: m.ProductID,
		Name:      m.Name,
		UnitCost:  m.UnitCost,
		IsActive:  m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxProductRepository) FindActiveProductsByCost(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT product_id, name, unit_cost, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM products
        WHERE is_active = TRUE
        ORDER BY unit_cost ASC, name;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active products: %w", err)
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		var m models.Product
		err := rows.Scan(
			&m.ProductID,
			&m.Name,
			&m.UnitCost,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		result = append(result, toDomainProduct(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxProductRepository) FindServiceByName(ctx context.Context, name string) (*domain.HotelService, error) {
	query := `
        SELECT service_id, name, price, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM hotel_services
        WHERE is_active = TRUE AND LOWER(name) = LOWER($1);
    `
	var m models.HotelService
	err := r.db.QueryRow(ctx, query, name).Scan(
		&m.ServiceID,
		&m.Name,
		&m.Price,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service %q: %w", name, err)
	}
	return &domain.HotelService{
		ServiceID: m.ServiceID,
		Name:      m.Name,
		Price:     m.Price,
		IsActive:  m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}
