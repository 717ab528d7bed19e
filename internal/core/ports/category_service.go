package ports

import (
	"context"

	"github.com/mercadito/catalog-service/internal/core/domain"
)

// CreatorRef is the display subset of the account that created a resource.
type CreatorRef struct {
	DisplayName string `json:"nombre"`
	Email       string `json:"email"`
}

// CategoryRef is the display subset of a product's category.
type CategoryRef struct {
	Name string `json:"nombre"`
}

// CategoryView is a category shaped for output, with its creator resolved.
type CategoryView struct {
	ID        string      `json:"id"`
	Name      string      `json:"nombre"`
	CreatedBy *CreatorRef `json:"usuario,omitempty"`
}

// CategoryListResult carries the full (unpaged) category listing.
type CategoryListResult struct {
	Items []CategoryView
	Total int64
}

// CategoryRemoved confirms a physical removal.
type CategoryRemoved struct {
	Name string
}

// CategoryService defines the use-case operations on categories.
type CategoryService interface {
	List(ctx context.Context) (*CategoryListResult, error)
	Get(ctx context.Context, id string) (*CategoryView, error)
	Create(ctx context.Context, name string, p domain.Principal) (*CategoryView, error)
	Update(ctx context.Context, id, name string, p domain.Principal) (*CategoryView, error)
	// Remove physically deletes the category. Admin only; products keeping
	// a reference to the removed id are left dangling on purpose.
	Remove(ctx context.Context, id string, p domain.Principal) (*CategoryRemoved, error)
}
