package ports

import (
	"context"

	"github.com/mercadito/catalog-service/internal/core/domain"
)

// CreateProductInput carries the caller-supplied fields for a new product.
type CreateProductInput struct {
	Name        string
	UnitPrice   float64
	Description string
	CategoryID  string
}

// UpdateProductInput replaces the whole mutable field set. There are no
// optional fields here: a field the caller omitted arrives zero-valued and
// overwrites the stored one. Category updates merge; product updates do not.
type UpdateProductInput struct {
	Name        string
	UnitPrice   float64
	Description string
	CategoryID  string
	Available   bool
}

// ProductView is a product shaped for output with both references resolved.
// Either reference may be nil when the target record no longer resolves.
type ProductView struct {
	ID          string       `json:"id"`
	Name        string       `json:"nombre"`
	UnitPrice   float64      `json:"precioUni"`
	Description string       `json:"descripcion,omitempty"`
	Available   bool         `json:"disponible"`
	Category    *CategoryRef `json:"categoria,omitempty"`
	CreatedBy   *CreatorRef  `json:"usuario,omitempty"`
}

// ProductService defines the use-case operations on products.
type ProductService interface {
	// List returns available products only, sorted by name, in fixed pages
	// of five starting at offset.
	List(ctx context.Context, offset int64) ([]ProductView, error)
	// Get bypasses the availability filter: direct lookups see retired
	// products.
	Get(ctx context.Context, id string) (*ProductView, error)
	// Search matches term case-insensitively against product names.
	// Availability is not filtered; callers post-filter if they need to.
	Search(ctx context.Context, term string) ([]ProductView, error)
	Create(ctx context.Context, in CreateProductInput, p domain.Principal) (*ProductView, error)
	Update(ctx context.Context, id string, in UpdateProductInput, p domain.Principal) (*ProductView, error)
	// Retire forces Available to false no matter what the caller sent.
	// Admin only. Retiring an already retired product is not an error.
	Retire(ctx context.Context, id string, p domain.Principal) (*ProductView, error)
}
