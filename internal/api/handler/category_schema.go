package handler

import "github.com/mercadito/catalog-service/internal/core/ports"

// Wire shapes keep the original collection vocabulary (categorias, nombre)
// so existing clients keep working. Every success envelope carries ok=true.

type categoryRequest struct {
	Name string `json:"nombre" validate:"required"`
}

type categoryListResponse struct {
	OK         bool                `json:"ok"`
	Categories []ports.CategoryView `json:"categorias"`
	Total      int64               `json:"total"`
}

type categoryResponse struct {
	OK       bool               `json:"ok"`
	Category ports.CategoryView `json:"categoria"`
}

type categoryRemovedResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
