package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-service/internal/api/metrics"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List handles GET /usuario?desde=N&limite=M. Active accounts only; the
// password hash never appears in the projection.
//
// @Summary      List active accounts
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        desde   query     int  false  "Offset into the listing"
// @Param        limite  query     int  false  "Page size (default 5)"
// @Success      200     {object}  accountListResponse
// @Router       /usuario [get]
func (h *AccountHandler) List(c echo.Context) error {
	offset := offsetParam(c, "desde")

	limit, err := strconv.ParseInt(c.QueryParam("limite"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 5
	}

	result, err := h.service.List(c.Request().Context(), offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, accountListResponse{
		OK:       true,
		Accounts: result.Items,
		Count:    result.Count,
	})
}

// Create handles POST /usuario. Admin only.
//
// @Summary      Create an account
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "Account fields"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /usuario [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
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

	view, err := h.service.Create(c.Request().Context(), ports.CreateAccountInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		AvatarRef:   req.AvatarRef,
	}, principal)
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("account").Inc()

	return c.JSON(http.StatusOK, accountResponse{OK: true, Account: *view})
}

// Update handles PUT /usuario/:id. Admin only; merge semantics over the
// allow-listed fields.
//
// @Summary      Update an account
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  accountResponse
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /usuario/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateAccountRequest
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

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AccountUpdate{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		AvatarRef:   req.AvatarRef,
		Role:        req.Role,
		Active:      req.Active,
	}, principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, accountResponse{OK: true, Account: *view})
}

// Retire handles DELETE /usuario/:id. Admin only; soft-delete, the record
// stays for audit.
//
// @Summary      Deactivate an account
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  accountResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /usuario/{id} [delete]
func (h *AccountHandler) Retire(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	view, err := h.service.Retire(c.Request().Context(), c.Param("id"), principal)
	if err != nil {
		return err
	}

	metrics.ResourcesRetiredTotal.WithLabelValues("account").Inc()

	return c.JSON(http.StatusOK, accountResponse{OK: true, Account: *view})
}
