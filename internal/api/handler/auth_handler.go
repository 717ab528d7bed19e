package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-service/internal/api/metrics"
	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

// AuthHandler issues bearer tokens. Token verification on inbound requests
// is the Auth middleware's job, not this handler's.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	OK      bool              `json:"ok"`
	Token   string            `json:"token"`
	Account ports.AccountView `json:"usuario"`
}

// Login handles POST /login.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, account, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginFailuresTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginFailuresTotal.WithLabelValues("throttled").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{OK: true, Token: token, Account: *account})
}
