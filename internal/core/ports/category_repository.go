package ports

import (
	"context"

	"github.com/mercadito/catalog-service/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
// Name uniqueness is enforced by a unique index; Insert and UpdateName
// translate the storage duplicate-key error to domain.ErrDuplicateCategory
// so the write stays a single conditional operation.
type CategoryRepository interface {
	Insert(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	// FindByIDs returns the subset of ids that resolve, keyed by id.
	// Missing ids are simply absent, never an error.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Category, error)
	// FindAll returns every category sorted by name ascending.
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Count(ctx context.Context) (int64, error)
	UpdateName(ctx context.Context, id, name string) (*domain.Category, error)
	// Delete physically removes the category and returns the removed record.
	Delete(ctx context.Context, id string) (*domain.Category, error)
}
