package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-service/internal/api/metrics"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /categoria.
//
// @Summary      List all categories
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  categoryListResponse
// @Router       /categoria [get]
func (h *CategoryHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryListResponse{
		OK:         true,
		Categories: result.Items,
		Total:      result.Total,
	})
}

// Get handles GET /categoria/:id.
//
// @Summary      Get a category by id
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  map[string]any
// @Router       /categoria/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryResponse{OK: true, Category: *view})
}

// Create handles POST /categoria.
//
// @Summary      Create a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category fields"
// @Success      200   {object}  categoryResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /categoria [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	view, err := h.service.Create(c.Request().Context(), req.Name, principal)
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("category").Inc()

	return c.JSON(http.StatusOK, categoryResponse{OK: true, Category: *view})
}

// Update handles PUT /categoria/:id.
//
// @Summary      Rename a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Category id"
// @Param        body  body      categoryRequest  true  "New name"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /categoria/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryResponse{OK: true, Category: *view})
}

// Remove handles DELETE /categoria/:id. Admin only; this is a physical
// delete, unlike product and account retirement.
//
// @Summary      Remove a category
// @Tags         categorias
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  categoryRemovedResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /categoria/{id} [delete]
func (h *CategoryHandler) Remove(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	removed, err := h.service.Remove(c.Request().Context(), c.Param("id"), principal)
	if err != nil {
		return err
	}

	metrics.ResourcesRetiredTotal.WithLabelValues("category").Inc()

	return c.JSON(http.StatusOK, categoryRemovedResponse{
		OK:      true,
		Message: fmt.Sprintf("categoria [%s] borrada", removed.Name),
	})
}
