package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-service/internal/core/domain"
)

// principalFrom extracts the authenticated principal injected by the Auth
// middleware. Both claims must be present: a token without an account id or
// role is structurally valid but operationally unusable, so it is rejected
// with 401 before any service call.
func principalFrom(c echo.Context) (domain.Principal, error) {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	if uid == "" || role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Principal{AccountID: uid, Role: role}, nil
}
