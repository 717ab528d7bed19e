package handler

import "github.com/mercadito/catalog-service/internal/core/ports"

type createProductRequest struct {
	Name        string  `json:"nombre"      validate:"required"`
	UnitPrice   float64 `json:"precioUni"   validate:"gte=0"`
	Description string  `json:"descripcion"`
	CategoryID  string  `json:"categoria"   validate:"required"`
}

// updateProductRequest carries the full mutable field set. The update is an
// overwrite, not a merge: whatever the caller omits arrives zero-valued and
// replaces the stored field.
type updateProductRequest struct {
	Name        string  `json:"nombre"      validate:"required"`
	UnitPrice   float64 `json:"precioUni"   validate:"gte=0"`
	Description string  `json:"descripcion"`
	CategoryID  string  `json:"categoria"`
	Available   bool    `json:"disponible"`
}

type productListResponse struct {
	OK       bool                `json:"ok"`
	Products []ports.ProductView `json:"productos"`
}

type productResponse struct {
	OK      bool              `json:"ok"`
	Product ports.ProductView `json:"producto"`
}

type productRetiredResponse struct {
	OK      bool              `json:"ok"`
	Product ports.ProductView `json:"producto"`
	Message string            `json:"message"`
}
