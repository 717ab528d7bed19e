package ports

import (
	"context"

	"github.com/mercadito/catalog-service/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID looks a product up regardless of availability.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindAvailable returns available products sorted by name ascending,
	// skipping offset records and returning at most limit.
	FindAvailable(ctx context.Context, offset, limit int64) ([]*domain.Product, error)
	// SearchByName matches term as a case-insensitive substring of the
	// product name. No availability filter, no limit.
	SearchByName(ctx context.Context, term string) ([]*domain.Product, error)
	// Replace overwrites the full mutable field set of the stored record.
	Replace(ctx context.Context, p *domain.Product) (*domain.Product, error)
}
