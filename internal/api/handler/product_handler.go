package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-service/internal/api/metrics"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /producto?desde=N. Pages are a fixed five records;
// a missing, malformed or negative desde coerces to 0.
//
// @Summary      List available products
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        desde  query     int  false  "Offset into the listing"
// @Success      200    {object}  productListResponse
// @Router       /producto [get]
func (h *ProductHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context(), offsetParam(c, "desde"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productListResponse{OK: true, Products: views})
}

// Get handles GET /producto/:id. Direct lookups bypass the availability
// filter, so retired products stay retrievable by id.
//
// @Summary      Get a product by id
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]any
// @Router       /producto/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{OK: true, Product: *view})
}

// Search handles GET /producto/buscar/:termino.
//
// @Summary      Search products by name
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        termino  path      string  true  "Case-insensitive substring of the name"
// @Success      200      {object}  productListResponse
// @Router       /producto/buscar/{termino} [get]
func (h *ProductHandler) Search(c echo.Context) error {
	views, err := h.service.Search(c.Request().Context(), c.Param("termino"))
	if err != nil {
		return err
	}

	metrics.ProductSearchesTotal.Inc()

	return c.JSON(http.StatusOK, productListResponse{OK: true, Products: views})
}

// Create handles POST /producto.
//
// @Summary      Create a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product fields"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]any
// @Router       /producto [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
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

	view, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}, principal)
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("product").Inc()

	return c.JSON(http.StatusCreated, productResponse{OK: true, Product: *view})
}

// Update handles PUT /producto/:id. Overwrite semantics: all five mutable
// fields are replaced with the request values.
//
// @Summary      Update a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Full mutable field set"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  map[string]any
// @Router       /producto/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
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

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Available:   req.Available,
	}, principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{OK: true, Product: *view})
}

// Retire handles DELETE /producto/:id. Admin only; sets disponible=false
// instead of deleting the record.
//
// @Summary      Retire a product
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productRetiredResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /producto/{id} [delete]
func (h *ProductHandler) Retire(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	view, err := h.service.Retire(c.Request().Context(), c.Param("id"), principal)
	if err != nil {
		return err
	}

	metrics.ResourcesRetiredTotal.WithLabelValues("product").Inc()

	return c.JSON(http.StatusOK, productRetiredResponse{
		OK:      true,
		Product: *view,
		Message: "producto borrado",
	})
}

// offsetParam reads a non-negative integer query parameter, coercing
// anything missing, malformed or negative to 0.
func offsetParam(c echo.Context, name string) int64 {
	n, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
